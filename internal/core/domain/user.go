package domain

import "time"

// User is the persisted account record. PasswordHash is never serialized;
// outward-facing responses carry a PublicUser instead.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the sanitized view of a User: every field except the
// password hash, which is structurally impossible to include.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitized strips the password hash from a User.
func (u User) Sanitized() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// SanitizeAll maps a slice of Users to their sanitized views.
func SanitizeAll(users []*User) []PublicUser {
	out := make([]PublicUser, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out
}
