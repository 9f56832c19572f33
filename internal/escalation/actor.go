package escalation

import (
	"resolveit/backend/internal/config"
	"resolveit/backend/internal/models"
)

// Actor identifies who triggered an escalation: a human user or the
// unattended sweep. Formatting of display name and contact address is
// derived per variant instead of null-checking a user reference.
type Actor struct {
	user *models.User
}

// SystemActor is the unattended variant used by the auto-escalation sweep.
func SystemActor() Actor {
	return Actor{}
}

// UserActor wraps the officer or admin performing a manual escalation.
func UserActor(u *models.User) Actor {
	return Actor{user: u}
}

// IsSystem reports whether this is the unattended variant.
func (a Actor) IsSystem() bool {
	return a.user == nil
}

// DisplayName is the name embedded in comments, emails and notifications.
func (a Actor) DisplayName() string {
	if a.user == nil {
		return config.SystemEscalatorName
	}
	return a.user.FullName
}

// Email is the contact address shown to the complaint owner.
func (a Actor) Email() string {
	if a.user == nil {
		return config.SystemEscalatorEmail
	}
	return a.user.Email
}

// UserID returns the acting user's id, or nil for the system variant.
// System-generated escalation comments carry no author.
func (a Actor) UserID() *string {
	if a.user == nil {
		return nil
	}
	id := a.user.ID
	return &id
}
