package users

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDTO is the account profile shown on the profile tab.
type ProfileDTO struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Address           string     `json:"address"`
	Phone             string     `json:"phone"`
	PasswordChangedAt *time.Time `json:"password_changed_at,omitempty"`
	PasswordHash      string     `json:"-"`
}

// UpdateProfileInput replaces the editable profile fields.
type UpdateProfileInput struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=32"`
}

// ChangePasswordInput carries the security tab form.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
