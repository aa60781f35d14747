package sandbox

import (
	"context"
	"fmt"

	"github.com/medassist/medassist/internal/store"
)

// DemoUserID is the account all seeded rows belong to. Signing in with this
// id (or a token minted for it) makes the demo data visible.
const DemoUserID = "demo-clinician"

// Seed loads a small synthetic caseload into the store: a handful of
// patients, a consultation with its transcript, prompt templates and a few
// notifications. Rows go through the store client so ids and timestamps are
// stamped the same way real writes are.
func Seed(ctx context.Context, st store.Client) error {
	patients := []store.Row{
		{"user_id": DemoUserID, "name": "Ali Rehman", "age": 54, "gender": "male", "condition": "Hypertension", "tags": []string{"chronic", "follow-up"}},
		{"user_id": DemoUserID, "name": "Sarah Khan", "age": 31, "gender": "female", "condition": "Type 2 Diabetes", "tags": []string{"new"}},
		{"user_id": DemoUserID, "name": "Omar Farooq", "age": 67, "gender": "male", "condition": "COPD", "tags": []string{"chronic"}},
		{"user_id": DemoUserID, "name": "Fatima Noor", "age": 42, "gender": "female", "tags": []string{}},
	}
	var firstPatient string
	for i, p := range patients {
		stored, err := st.Insert(ctx, store.Patients, p)
		if err != nil {
			return fmt.Errorf("seed patients: %w", err)
		}
		if i == 0 {
			firstPatient = stored.Str("id")
		}
	}

	session, err := st.Insert(ctx, store.Sessions, store.Row{
		"user_id":      DemoUserID,
		"patient_id":   firstPatient,
		"title":        "Blood pressure follow-up",
		"status":       "completed",
		"session_type": "consultation",
		"duration":     18,
		"notes":        "BP trending down on current dose.",
		"summary":      "Continue amlodipine 5mg, review in 3 months.",
	})
	if err != nil {
		return fmt.Errorf("seed sessions: %w", err)
	}

	transcript := []store.Row{
		{"sender": "user", "message": "Summarize today's readings for Ali Rehman."},
		{"sender": "assistant", "message": "Average BP this visit was 132/84, down from 145/92 at the last consultation."},
	}
	for _, m := range transcript {
		m["user_id"] = DemoUserID
		m["session_id"] = session.Str("id")
		if _, err := st.Insert(ctx, store.SessionMessages, m); err != nil {
			return fmt.Errorf("seed messages: %w", err)
		}
	}

	prompts := []store.Row{
		{"user_id": DemoUserID, "name": "SOAP note", "category": "documentation", "is_active": true, "prompt_text": "Draft a SOAP note from the consultation transcript."},
		{"user_id": DemoUserID, "name": "Discharge summary", "category": "documentation", "is_active": true, "prompt_text": "Write a discharge summary for the patient."},
		{"user_id": DemoUserID, "name": "Drug interactions", "category": "safety", "is_active": true, "prompt_text": "List interactions for the current medication list."},
		{"user_id": DemoUserID, "name": "Legacy intake form", "category": "documentation", "is_active": false, "prompt_text": "Fill the 2019 intake form."},
	}
	for _, p := range prompts {
		if _, err := st.Insert(ctx, store.Prompts, p); err != nil {
			return fmt.Errorf("seed prompts: %w", err)
		}
	}

	notifications := []store.Row{
		{"user_id": DemoUserID, "title": "Welcome", "message": "Your workspace is ready.", "type": "success", "is_read": false},
		{"user_id": DemoUserID, "title": "Session summary ready", "message": "The follow-up consultation summary has been generated.", "type": "info", "is_read": false},
	}
	for _, n := range notifications {
		if _, err := st.Insert(ctx, store.Notifications, n); err != nil {
			return fmt.Errorf("seed notifications: %w", err)
		}
	}

	return nil
}
