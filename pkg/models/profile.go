package models

import "time"

// Account represents the store profile being managed. There is no
// authentication server; the single account is seeded at startup and
// edited through the profile endpoints.
type Account struct {
	Email        string      `json:"email" validate:"required,email"`
	PasswordHash string      `json:"-"` // never expose in JSON
	FirstName    string      `json:"first_name" validate:"required,min=2,max=50"`
	LastName     string      `json:"last_name" validate:"required,min=2,max=50"`
	Phone        string      `json:"phone" validate:"min=10,max=20"`
	Addresses    []Address   `json:"addresses"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Address represents a shipping or billing address
type Address struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	Province   string `json:"province" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	IsDefault  bool   `json:"is_default"`
}

// Preferences represents account preferences and settings
type Preferences struct {
	Newsletter         bool   `json:"newsletter"`
	EmailNotifications bool   `json:"email_notifications"`
	Language           string `json:"language"`
	Currency           string `json:"currency"`
}

// GetFullName returns the account holder's full name
func (a *Account) GetFullName() string {
	return a.FirstName + " " + a.LastName
}

// GetDefaultAddress returns the first address marked as default, or
// the first address if none is default.
func (a *Account) GetDefaultAddress() *Address {
	for i := range a.Addresses {
		if a.Addresses[i].IsDefault {
			return &a.Addresses[i]
		}
	}
	if len(a.Addresses) > 0 {
		return &a.Addresses[0]
	}
	return nil
}

// SetTimestamps sets created_at on first call and always updates updated_at
func (a *Account) SetTimestamps() {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}

type UpdateProfileRequest struct {
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Phone       string       `json:"phone"`
	Preferences *Preferences `json:"preferences"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
