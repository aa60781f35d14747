// Package sandbox runs a self-hosted stand-in for the hosted backend: the
// same PostgREST-style surface the REST store client speaks, served from the
// local store. It exists for developer on-boarding, demos, and integration
// tests that should not depend on a hosted project.
package sandbox

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/platform/middleware"
	"github.com/medassist/medassist/internal/store"
)

// RESTPrefix is where collections are mounted, matching the hosted backend.
const RESTPrefix = "/rest/v1"

type Server struct {
	store  store.Client
	secret []byte
	log    zerolog.Logger
	echo   *echo.Echo
}

// NewServer wires the echo app around a backing store. secret verifies
// bearer tokens; when a token does not parse as a JWT it is taken verbatim
// as the user id, which keeps demos and tests free of token plumbing.
func NewServer(st store.Client, secret []byte, logger zerolog.Logger) *Server {
	s := &Server{store: st, secret: secret, log: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	g := e.Group(RESTPrefix, s.authenticate)
	g.GET("/:collection", s.selectRows)
	g.POST("/:collection", s.insertRow)
	g.PATCH("/:collection", s.updateRows)
	g.DELETE("/:collection", s.deleteRows)

	s.echo = e
	return s
}

// Handler exposes the server for httptest.
func (s *Server) Handler() http.Handler { return s.echo }

// Start serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error { return s.echo.Start(addr) }

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error { return s.echo.Shutdown(ctx) }

// authenticate resolves the bearer token to a user id. Every row the server
// touches is scoped to that user, standing in for the hosted backend's
// row-level authorization.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}
		userID := token
		if sess, err := auth.SessionFromToken(token, s.secret); err == nil {
			userID = sess.UserID
		}
		c.Set("user_id", userID)
		return next(c)
	}
}

func userID(c echo.Context) string {
	uid, _ := c.Get("user_id").(string)
	return uid
}

func collectionParam(c echo.Context) (string, error) {
	name := c.Param("collection")
	if !store.KnownCollection(name) {
		return "", echo.NewHTTPError(http.StatusNotFound, "unknown collection")
	}
	return name, nil
}

// parseQuery converts PostgREST-style query params (`col=eq.val`,
// `order=col.desc`, `limit=N`) into a store query. The user_id filter is
// always forced from the authenticated caller.
func parseQuery(c echo.Context) store.Query {
	q := store.Query{Filters: []store.Filter{store.Eq("user_id", userID(c))}}
	for key, vals := range c.QueryParams() {
		if len(vals) == 0 {
			continue
		}
		val := vals[0]
		switch key {
		case "select":
			// Only full rows are served.
		case "order":
			col, dir, found := strings.Cut(val, ".")
			q.Order = store.Order{Column: col, Descending: found && dir == "desc"}
		case "limit":
			if n, err := strconv.Atoi(val); err == nil {
				q.Limit = n
			}
		default:
			if rest, ok := strings.CutPrefix(val, "eq."); ok && key != "user_id" {
				q.Filters = append(q.Filters, store.Eq(key, coerce(rest)))
			}
		}
	}
	return q
}

// coerce maps filter literals onto the types rows store them as.
func coerce(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func (s *Server) selectRows(c echo.Context) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}
	rows, err := s.store.Select(c.Request().Context(), collection, parseQuery(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if rows == nil {
		rows = []store.Row{}
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) insertRow(c echo.Context) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}
	var payload []store.Row
	if err := json.Unmarshal(body, &payload); err != nil {
		// Single-object bodies are accepted too.
		var row store.Row
		if objErr := json.Unmarshal(body, &row); objErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		payload = []store.Row{row}
	}
	if len(payload) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty insert")
	}

	row := payload[0].Clone()
	row["user_id"] = userID(c)
	stored, err := s.store.Insert(c.Request().Context(), collection, row)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, []store.Row{stored})
}

// targetID extracts the id=eq.<id> constraint writes must carry, and
// verifies the row belongs to the caller.
func (s *Server) targetID(c echo.Context, collection string) (string, error) {
	val := c.QueryParam("id")
	id, ok := strings.CutPrefix(val, "eq.")
	if !ok || id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "id filter required")
	}

	rows, err := s.store.Select(c.Request().Context(), collection, store.Query{
		Filters: []store.Filter{store.Eq("id", id), store.Eq("user_id", userID(c))},
		Limit:   1,
	})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(rows) == 0 {
		return "", echo.NewHTTPError(http.StatusNotFound, "row not found")
	}
	return id, nil
}

func (s *Server) updateRows(c echo.Context) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}
	id, err := s.targetID(c, collection)
	if err != nil {
		return err
	}

	var fields store.Row
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	delete(fields, "id")
	delete(fields, "user_id")

	stored, err := s.store.Update(c.Request().Context(), collection, id, fields)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, []store.Row{stored})
}

func (s *Server) deleteRows(c echo.Context) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}
	id, err := s.targetID(c, collection)
	if err != nil {
		return err
	}
	if err := s.store.Delete(c.Request().Context(), collection, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
