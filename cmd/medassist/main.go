package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/config"
	"github.com/medassist/medassist/internal/domain/activitylog"
	"github.com/medassist/medassist/internal/domain/medfile"
	"github.com/medassist/medassist/internal/domain/message"
	"github.com/medassist/medassist/internal/domain/notification"
	"github.com/medassist/medassist/internal/domain/patient"
	"github.com/medassist/medassist/internal/domain/profile"
	"github.com/medassist/medassist/internal/domain/prompt"
	"github.com/medassist/medassist/internal/domain/session"
	"github.com/medassist/medassist/internal/platform/db"
	"github.com/medassist/medassist/internal/sandbox"
	"github.com/medassist/medassist/internal/store"
	"github.com/medassist/medassist/internal/structval"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medassist",
		Short: "Clinical documentation assistant data client",
	}

	rootCmd.AddCommand(sandboxCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(patientsCmd())
	rootCmd.AddCommand(sessionsCmd())
	rootCmd.AddCommand(messagesCmd())
	rootCmd.AddCommand(promptsCmd())
	rootCmd.AddCommand(notificationsCmd())
	rootCmd.AddCommand(activityCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(filesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return logger
}

// env is the assembled runtime every data command shares: config, logger,
// the store client for the configured mode, and a signed-in session source.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	client store.Client
	source *auth.Source
	close  func()
}

func newEnv(ctx context.Context) (*env, error) {
	logger := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, log: logger, source: auth.NewSource(), close: func() {}}

	switch cfg.StoreMode {
	case config.ModeREST:
		c := store.NewRESTClient(cfg.StoreURL, cfg.StoreAPIKey)
		c.SetToken(cfg.Token)
		e.client = c
	case config.ModePostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, err
		}
		e.close = pool.Close
		e.client = store.NewPGClient(pool)
	case config.ModeLocal:
		c, err := store.NewLocalClient(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		e.client = c
	}

	e.signIn()
	return e, nil
}

// signIn resolves TOKEN to a session. A JWT is verified against AUTH_SECRET;
// any other non-empty value is taken as the user id directly. Local mode
// with no token falls back to the sandbox demo account.
func (e *env) signIn() {
	switch {
	case e.cfg.Token != "":
		if sess, err := auth.SessionFromToken(e.cfg.Token, []byte(e.cfg.AuthSecret)); err == nil {
			e.source.SignIn(*sess)
		} else {
			e.source.SignIn(auth.Session{UserID: e.cfg.Token})
		}
	case e.cfg.StoreMode == config.ModeLocal:
		e.source.SignIn(auth.Session{UserID: sandbox.DemoUserID})
	}
}

func sandboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Run the local stand-in for the hosted backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetBool("seed")

			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			st, err := store.NewLocalClient(cfg.DataDir)
			if err != nil {
				return err
			}
			if seed {
				if err := sandbox.Seed(cmd.Context(), st); err != nil {
					return err
				}
				logger.Info().Str("user", sandbox.DemoUserID).Msg("seeded demo data")
			}

			srv := sandbox.NewServer(st, []byte(cfg.AuthSecret), logger)
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start(":" + cfg.SandboxPort) }()
			logger.Info().Str("port", cfg.SandboxPort).Msg("sandbox listening")

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().Bool("seed", false, "Load demo patients, sessions, and prompts before serving")
	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a signed bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, _ := cmd.Flags().GetString("user")
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.AuthSecret == "" {
				return fmt.Errorf("AUTH_SECRET is required to mint tokens")
			}

			tok, err := auth.MintToken(auth.Session{UserID: user, Email: email}, []byte(cfg.AuthSecret), ttl)
			if err != nil {
				return err
			}
			fmt.Println(tok)
			return nil
		},
	}
	cmd.Flags().String("user", sandbox.DemoUserID, "Subject user id")
	cmd.Flags().String("email", "", "Email claim")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	return cmd
}

func patientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Manage the patient list",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List patients, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			condition, _ := cmd.Flags().GetString("condition")

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := patient.NewRepo(e.client, e.source, e.log)
			all := r.FetchAll(cmd.Context())
			shown := patient.Filter(all, search, condition)

			fmt.Printf("%-36s %-24s %-4s %-8s %s\n", "ID", "NAME", "AGE", "GENDER", "CONDITION")
			for _, p := range shown {
				cond := ""
				if p.Condition != nil {
					cond = *p.Condition
				}
				fmt.Printf("%-36s %-24s %-4d %-8s %s\n", p.ID, p.Name, p.Age, p.Gender, cond)
			}
			fmt.Printf("%d of %d patient(s)\n", len(shown), len(all))
			return nil
		},
	}
	listCmd.Flags().String("search", "", "Case-insensitive match on name or condition")
	listCmd.Flags().String("condition", patient.FilterAll, "Exact condition, or 'all'")
	cmd.AddCommand(listCmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			age, _ := cmd.Flags().GetInt("age")
			gender, _ := cmd.Flags().GetString("gender")
			condition, _ := cmd.Flags().GetString("condition")
			tags, _ := cmd.Flags().GetStringSlice("tags")
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := patient.NewRepo(e.client, e.source, e.log)
			n := patient.New{Name: name, Age: age, Gender: gender, Tags: tags}
			if condition != "" {
				n.Condition = &condition
			}
			p, err := r.Create(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Printf("created patient %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	addCmd.Flags().String("name", "", "Patient name")
	addCmd.Flags().Int("age", 0, "Age in years")
	addCmd.Flags().String("gender", "", "Gender")
	addCmd.Flags().String("condition", "", "Primary condition")
	addCmd.Flags().StringSlice("tags", nil, "Tags")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := patient.NewRepo(e.client, e.source, e.log)
			if err := r.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted patient %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage consultation sessions",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions for a patient, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			if patientID == "" {
				return fmt.Errorf("--patient is required")
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := session.NewRepo(e.client, e.source, e.log)
			for _, s := range r.FetchAll(cmd.Context(), patientID) {
				dur := ""
				if s.Duration != nil {
					dur = fmt.Sprintf("%dm", *s.Duration)
				}
				fmt.Printf("%-36s %-10s %-6s %s\n", s.ID, s.Status, dur, s.Title)
			}
			return nil
		},
	}
	listCmd.Flags().String("patient", "", "Patient id")
	cmd.AddCommand(listCmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			title, _ := cmd.Flags().GetString("title")
			sessionType, _ := cmd.Flags().GetString("type")
			if patientID == "" || title == "" {
				return fmt.Errorf("--patient and --title are required")
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := session.NewRepo(e.client, e.source, e.log)
			n := session.New{PatientID: patientID, Title: title}
			if sessionType != "" {
				n.SessionType = &sessionType
			}
			s, err := r.Create(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Printf("started session %s\n", s.ID)
			return nil
		},
	}
	addCmd.Flags().String("patient", "", "Patient id")
	addCmd.Flags().String("title", "", "Session title")
	addCmd.Flags().String("type", "", "Session type")
	cmd.AddCommand(addCmd)

	completeCmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a session completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, _ := cmd.Flags().GetInt("duration")

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := session.NewRepo(e.client, e.source, e.log)
			var dur *int
			if cmd.Flags().Changed("duration") {
				dur = &duration
			}
			s, err := r.Complete(cmd.Context(), args[0], dur)
			if err != nil {
				return err
			}
			fmt.Printf("session %s is %s\n", s.ID, s.Status)
			return nil
		},
	}
	completeCmd.Flags().Int("duration", 0, "Duration in minutes")
	cmd.AddCommand(completeCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := session.NewRepo(e.client, e.source, e.log)
			if err := r.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted session %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func messagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Read and append session transcripts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print a session transcript in chronological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, _ := cmd.Flags().GetString("session")
			if sessionID == "" {
				return fmt.Errorf("--session is required")
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := message.NewRepo(e.client, e.source, e.log)
			for _, m := range r.FetchAll(cmd.Context(), sessionID) {
				fmt.Printf("[%s] %s: %s\n", m.Timestamp.Format("15:04:05"), m.Sender, m.Message)
			}
			return nil
		},
	}
	listCmd.Flags().String("session", "", "Session id")
	cmd.AddCommand(listCmd)

	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Append a message to a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, _ := cmd.Flags().GetString("session")
			sender, _ := cmd.Flags().GetString("sender")
			text, _ := cmd.Flags().GetString("text")
			if sessionID == "" || text == "" {
				return fmt.Errorf("--session and --text are required")
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := message.NewRepo(e.client, e.source, e.log)
			m, err := r.Create(cmd.Context(), message.New{SessionID: sessionID, Sender: sender, Message: text})
			if err != nil {
				return err
			}
			fmt.Printf("sent %s\n", m.ID)
			return nil
		},
	}
	sendCmd.Flags().String("session", "", "Session id")
	sendCmd.Flags().String("sender", message.SenderUser, "Message sender")
	sendCmd.Flags().String("text", "", "Message body")
	cmd.AddCommand(sendCmd)

	return cmd
}

func promptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Manage prompt templates",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active prompt templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			category, _ := cmd.Flags().GetString("category")

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := prompt.NewRepo(e.client, e.source, e.log)
			all := r.FetchAll(cmd.Context())
			for _, p := range prompt.Filter(all, search, category) {
				fmt.Printf("%-36s %-16s %s\n", p.ID, p.Category, p.Name)
			}
			fmt.Printf("categories: %s\n", strings.Join(prompt.Categories(all), ", "))
			return nil
		},
	}
	listCmd.Flags().String("search", "", "Case-insensitive match on name or description")
	listCmd.Flags().String("category", prompt.FilterAll, "Exact category, or 'all'")
	cmd.AddCommand(listCmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a prompt template",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			text, _ := cmd.Flags().GetString("text")
			category, _ := cmd.Flags().GetString("category")
			if name == "" || text == "" {
				return fmt.Errorf("--name and --text are required")
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := prompt.NewRepo(e.client, e.source, e.log)
			p, err := r.Create(cmd.Context(), prompt.New{Name: name, PromptText: text, Category: category})
			if err != nil {
				return err
			}
			fmt.Printf("created prompt %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	addCmd.Flags().String("name", "", "Template name")
	addCmd.Flags().String("text", "", "Prompt text")
	addCmd.Flags().String("category", "", "Category")
	cmd.AddCommand(addCmd)

	return cmd
}

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Read notifications",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent notifications, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			unreadOnly, _ := cmd.Flags().GetBool("unread")

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := notification.NewRepo(e.client, e.source, e.log)
			all := r.FetchAll(cmd.Context())
			for _, n := range all {
				if unreadOnly && n.IsRead {
					continue
				}
				mark := " "
				if !n.IsRead {
					mark = "*"
				}
				fmt.Printf("%s %-36s %-8s %s\n", mark, n.ID, n.Type, n.Title)
			}
			fmt.Printf("%d unread\n", r.UnreadCount())
			return nil
		},
	}
	listCmd.Flags().Bool("unread", false, "Only unread notifications")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := notification.NewRepo(e.client, e.source, e.log)
			r.FetchAll(cmd.Context())
			if err := r.MarkAsRead(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("marked %s read\n", args[0])
			return nil
		},
	})

	return cmd
}

func activityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Read and record the activity log",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recent activity, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := activitylog.NewRepo(e.client, e.source, e.log)
			for _, entry := range r.FetchAll(cmd.Context()) {
				fmt.Printf("%s %-20s %s\n", entry.CreatedAt.Format(time.RFC3339), entry.ActivityType, entry.Description)
			}
			return nil
		},
	})

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record an activity entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			activityType, _ := cmd.Flags().GetString("type")
			description, _ := cmd.Flags().GetString("description")
			if activityType == "" || description == "" {
				return fmt.Errorf("--type and --description are required")
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := activitylog.NewRepo(e.client, e.source, e.log)
			entry, err := r.Log(cmd.Context(), activityType, description, structval.Null())
			if err != nil {
				return err
			}
			fmt.Printf("logged %s\n", entry.ID)
			return nil
		},
	}
	logCmd.Flags().String("type", "", "Activity type")
	logCmd.Flags().String("description", "", "What happened")
	cmd.AddCommand(logCmd)

	return cmd
}

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit the signed-in user's profile",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := profile.NewRepo(e.client, e.source, e.log)
			p := r.Fetch(cmd.Context())
			if p == nil {
				fmt.Println("no profile yet")
				return nil
			}
			fmt.Printf("name:         %s %s\n", p.FirstName, p.LastName)
			fmt.Printf("email:        %s\n", p.Email)
			if p.Specialty != nil {
				fmt.Printf("specialty:    %s\n", *p.Specialty)
			}
			if p.Organization != nil {
				fmt.Printf("organization: %s\n", *p.Organization)
			}
			return nil
		},
	})

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			var u profile.Update
			strFlag := func(name string, dst **string) {
				if cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetString(name)
					*dst = &v
				}
			}
			strFlag("first-name", &u.FirstName)
			strFlag("last-name", &u.LastName)
			strFlag("email", &u.Email)
			strFlag("phone", &u.Phone)
			strFlag("specialty", &u.Specialty)
			strFlag("organization", &u.Organization)

			r := profile.NewRepo(e.client, e.source, e.log)
			r.Fetch(cmd.Context())
			p, err := r.Save(cmd.Context(), u)
			if err != nil {
				return err
			}
			fmt.Printf("saved profile for %s %s\n", p.FirstName, p.LastName)
			return nil
		},
	}
	setCmd.Flags().String("first-name", "", "First name")
	setCmd.Flags().String("last-name", "", "Last name")
	setCmd.Flags().String("email", "", "Email")
	setCmd.Flags().String("phone", "", "Phone")
	setCmd.Flags().String("specialty", "", "Specialty")
	setCmd.Flags().String("organization", "", "Organization")
	cmd.AddCommand(setCmd)

	return cmd
}

func filesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Manage a patient's medical files",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List files for a patient, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			if patientID == "" {
				return fmt.Errorf("--patient is required")
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := medfile.NewRepo(e.client, e.source, e.log)
			for _, f := range r.FetchAll(cmd.Context(), patientID) {
				fmt.Printf("%-36s %-12s %s\n", f.ID, f.FileType, f.Filename)
			}
			return nil
		},
	}
	listCmd.Flags().String("patient", "", "Patient id")
	cmd.AddCommand(listCmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a file for a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			filename, _ := cmd.Flags().GetString("filename")
			fileType, _ := cmd.Flags().GetString("type")
			url, _ := cmd.Flags().GetString("url")
			if patientID == "" || filename == "" {
				return fmt.Errorf("--patient and --filename are required")
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			r := medfile.NewRepo(e.client, e.source, e.log)
			n := medfile.New{PatientID: patientID, Filename: filename, FileType: fileType}
			if url != "" {
				n.FileURL = &url
			}
			f, err := r.Create(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Printf("registered %s (%s)\n", f.Filename, f.ID)
			return nil
		},
	}
	addCmd.Flags().String("patient", "", "Patient id")
	addCmd.Flags().String("filename", "", "File name")
	addCmd.Flags().String("type", "document", "File type")
	addCmd.Flags().String("url", "", "Storage URL")
	cmd.AddCommand(addCmd)

	return cmd
}
