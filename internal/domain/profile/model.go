package profile

import (
	"time"

	"github.com/medassist/medassist/internal/store"
	"github.com/medassist/medassist/internal/structval"
)

// Profile is the clinician's account profile, one row per user.
type Profile struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone,omitempty"`
	Specialty    *string         `json:"specialty,omitempty"`
	Organization *string         `json:"organization,omitempty"`
	AvatarURL    *string         `json:"avatar_url,omitempty"`
	Preferences  structval.Value `json:"preferences"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func fromRow(r store.Row) (Profile, error) {
	prefs, err := structval.FromAny(r["preferences"])
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		ID:           r.Str("id"),
		UserID:       r.Str("user_id"),
		FirstName:    r.Str("first_name"),
		LastName:     r.Str("last_name"),
		Email:        r.Str("email"),
		Phone:        r.StrPtr("phone"),
		Specialty:    r.StrPtr("specialty"),
		Organization: r.StrPtr("organization"),
		AvatarURL:    r.StrPtr("avatar_url"),
		Preferences:  prefs,
		CreatedAt:    r.Time("created_at"),
		UpdatedAt:    r.Time("updated_at"),
	}, nil
}

// Update carries a partial-field profile mutation; nil fields are not sent.
type Update struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Specialty    *string
	Organization *string
	AvatarURL    *string
	Preferences  *structval.Value
}

func (u Update) row() store.Row {
	r := store.Row{}
	if u.FirstName != nil {
		r["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		r["last_name"] = *u.LastName
	}
	if u.Email != nil {
		r["email"] = *u.Email
	}
	if u.Phone != nil {
		r["phone"] = *u.Phone
	}
	if u.Specialty != nil {
		r["specialty"] = *u.Specialty
	}
	if u.Organization != nil {
		r["organization"] = *u.Organization
	}
	if u.AvatarURL != nil {
		r["avatar_url"] = *u.AvatarURL
	}
	if u.Preferences != nil {
		r["preferences"] = u.Preferences.ToAny()
	}
	return r
}
