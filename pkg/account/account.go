// Package account owns the single store account edited through the
// profile endpoints. There is no auth server; the account is seeded
// at startup.
package account

import (
	"errors"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"storefront/pkg/global"
	"storefront/pkg/models"
)

var (
	ErrAddressNotFound      = errors.New("account: address not found")
	ErrCannotDeleteLastAddr = errors.New("account: cannot delete last address")
)

// Container guards the account record for concurrent handler access.
type Container struct {
	mu      sync.Mutex
	account models.Account
}

func New(seed models.Account) *Container {
	seed.SetTimestamps()
	return &Container{account: seed}
}

// Seed builds the default account. The initial password comes from
// PROFILE_PASSWORD so a fresh checkout of the repo boots without any
// setup step.
func Seed() *Container {
	password := global.GetEnvOrDefault("PROFILE_PASSWORD", "changeme123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	return New(models.Account{
		Email:        global.GetEnvOrDefault("PROFILE_EMAIL", "owner@example.com"),
		PasswordHash: string(hash),
		FirstName:    "Store",
		LastName:     "Owner",
		Phone:        "555-010-0000",
		Addresses: []models.Address{{
			Street:     "100 Commerce St",
			City:       "Toronto",
			Province:   "ON",
			PostalCode: "M5V 1A1",
			Country:    "Canada",
			IsDefault:  true,
		}},
		Preferences: models.Preferences{
			Newsletter:         true,
			EmailNotifications: true,
			Language:           "en",
			Currency:           "CAD",
		},
	})
}

// Get returns a copy of the account.
func (c *Container) Get() models.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked()
}

// Update applies the non-empty fields of the request.
func (c *Container) Update(req models.UpdateProfileRequest) models.Account {
	c.mu.Lock()
	defer c.mu.Unlock()

	if req.Email != "" {
		c.account.Email = req.Email
	}
	if req.FirstName != "" {
		c.account.FirstName = req.FirstName
	}
	if req.LastName != "" {
		c.account.LastName = req.LastName
	}
	if req.Phone != "" {
		c.account.Phone = req.Phone
	}
	if req.Preferences != nil {
		c.account.Preferences = *req.Preferences
	}
	c.account.SetTimestamps()
	return c.copyLocked()
}

// AddAddress appends an address; the first address becomes default.
func (c *Container) AddAddress(address models.Address) models.Account {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.account.Addresses) == 0 {
		address.IsDefault = true
	} else if address.IsDefault {
		for i := range c.account.Addresses {
			c.account.Addresses[i].IsDefault = false
		}
	}
	c.account.Addresses = append(c.account.Addresses, address)
	c.account.SetTimestamps()
	return c.copyLocked()
}

// UpdateAddress replaces the address at index.
func (c *Container) UpdateAddress(index int, address models.Address) (models.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.account.Addresses) {
		return models.Account{}, ErrAddressNotFound
	}
	if address.IsDefault {
		for i := range c.account.Addresses {
			c.account.Addresses[i].IsDefault = false
		}
	}
	c.account.Addresses[index] = address
	c.account.SetTimestamps()
	return c.copyLocked(), nil
}

// DeleteAddress removes the address at index. The account must keep
// at least one address; deleting the default promotes the first
// remaining one.
func (c *Container) DeleteAddress(index int) (models.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.account.Addresses) {
		return models.Account{}, ErrAddressNotFound
	}
	if len(c.account.Addresses) == 1 {
		return models.Account{}, ErrCannotDeleteLastAddr
	}
	wasDefault := c.account.Addresses[index].IsDefault
	c.account.Addresses = append(c.account.Addresses[:index], c.account.Addresses[index+1:]...)
	if wasDefault {
		c.account.Addresses[0].IsDefault = true
	}
	c.account.SetTimestamps()
	return c.copyLocked(), nil
}

// PasswordHash returns the current bcrypt hash for verification.
func (c *Container) PasswordHash() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.account.PasswordHash
}

// SetPasswordHash replaces the stored hash.
func (c *Container) SetPasswordHash(hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.account.PasswordHash = hash
	c.account.SetTimestamps()
}

func (c *Container) copyLocked() models.Account {
	cp := c.account
	cp.Addresses = make([]models.Address, len(c.account.Addresses))
	copy(cp.Addresses, c.account.Addresses)
	return cp
}
