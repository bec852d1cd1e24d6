package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/models"
)

func testAccount() *Container {
	return New(models.Account{
		Email:     "owner@example.com",
		FirstName: "Store",
		LastName:  "Owner",
		Addresses: []models.Address{{Street: "1 Main St", City: "Toronto", IsDefault: true}},
	})
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	c := testAccount()

	updated := c.Update(models.UpdateProfileRequest{FirstName: "Ada"})
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Owner", updated.LastName)
	assert.Equal(t, "owner@example.com", updated.Email)
}

func TestAddAddressDefaultBookkeeping(t *testing.T) {
	c := testAccount()

	updated := c.AddAddress(models.Address{Street: "2 King St", City: "Waterloo"})
	require.Len(t, updated.Addresses, 2)
	assert.True(t, updated.Addresses[0].IsDefault)
	assert.False(t, updated.Addresses[1].IsDefault)

	// A new default demotes the old one.
	updated = c.AddAddress(models.Address{Street: "3 Queen St", City: "Ottawa", IsDefault: true})
	assert.False(t, updated.Addresses[0].IsDefault)
	assert.True(t, updated.Addresses[2].IsDefault)
	assert.Equal(t, "3 Queen St", updated.GetDefaultAddress().Street)
}

func TestDeleteAddress(t *testing.T) {
	c := testAccount()
	c.AddAddress(models.Address{Street: "2 King St", City: "Waterloo"})

	t.Run("deleting the default promotes the first remaining", func(t *testing.T) {
		updated, err := c.DeleteAddress(0)
		require.NoError(t, err)
		require.Len(t, updated.Addresses, 1)
		assert.True(t, updated.Addresses[0].IsDefault)
	})

	t.Run("last address cannot be deleted", func(t *testing.T) {
		_, err := c.DeleteAddress(0)
		assert.ErrorIs(t, err, ErrCannotDeleteLastAddr)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := c.DeleteAddress(5)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}

func TestGetReturnsCopy(t *testing.T) {
	c := testAccount()
	snapshot := c.Get()
	snapshot.Addresses[0].Street = "mutated"

	assert.Equal(t, "1 Main St", c.Get().Addresses[0].Street)
}
