package patient

import (
	"time"

	"github.com/medassist/medassist/internal/store"
)

// Patient is one clinician-owned patient record.
type Patient struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Condition *string   `json:"condition,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func fromRow(r store.Row) (Patient, error) {
	return Patient{
		ID:        r.Str("id"),
		UserID:    r.Str("user_id"),
		Name:      r.Str("name"),
		Age:       r.Int("age"),
		Gender:    r.Str("gender"),
		Condition: r.StrPtr("condition"),
		Tags:      r.StrList("tags"),
		Avatar:    r.StrPtr("avatar"),
		CreatedAt: r.Time("created_at"),
		UpdatedAt: r.Time("updated_at"),
	}, nil
}

// New holds the caller-supplied fields for a create. id, user_id, and
// timestamps are never client-supplied.
type New struct {
	Name      string
	Age       int
	Gender    string
	Condition *string
	Tags      []string
	Avatar    *string
}

func (n New) row() store.Row {
	r := store.Row{
		"name":   n.Name,
		"age":    n.Age,
		"gender": n.Gender,
	}
	if n.Condition != nil {
		r["condition"] = *n.Condition
	}
	if n.Tags != nil {
		r["tags"] = n.Tags
	}
	if n.Avatar != nil {
		r["avatar"] = *n.Avatar
	}
	return r
}

// Update carries a partial-field mutation; nil fields are not sent.
type Update struct {
	Name      *string
	Age       *int
	Gender    *string
	Condition *string
	Tags      []string
	Avatar    *string
}

func (u Update) row() store.Row {
	r := store.Row{}
	if u.Name != nil {
		r["name"] = *u.Name
	}
	if u.Age != nil {
		r["age"] = *u.Age
	}
	if u.Gender != nil {
		r["gender"] = *u.Gender
	}
	if u.Condition != nil {
		r["condition"] = *u.Condition
	}
	if u.Tags != nil {
		r["tags"] = u.Tags
	}
	if u.Avatar != nil {
		r["avatar"] = *u.Avatar
	}
	return r
}
