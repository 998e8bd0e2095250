package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates valid customer", func(t *testing.T) {
		customer, err := NewCustomer("Ada Lovelace", "ada@example.com", "555-0100", "1 Analytical Way")

		require.NoError(t, err)
		assert.NotNil(t, customer)
		assert.Equal(t, "Ada Lovelace", customer.Name)
		assert.Equal(t, "ada@example.com", customer.Email)
		assert.Equal(t, "555-0100", customer.Phone)
		assert.NotEqual(t, "", customer.ID.String())
		assert.False(t, customer.CreatedAt.IsZero())
	})

	t.Run("lowercases and trims email", func(t *testing.T) {
		customer, err := NewCustomer("Ada Lovelace", "  Ada@Example.COM ", "", "")

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", customer.Email)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		customer, err := NewCustomer("   ", "ada@example.com", "", "")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "Customer name cannot be empty")
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		customer, err := NewCustomer("Ada Lovelace", "not-an-email", "", "")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "not a valid address")
	})
}

func TestCustomer_Update(t *testing.T) {
	t.Run("replaces mutable fields", func(t *testing.T) {
		customer, err := NewCustomer("Ada Lovelace", "ada@example.com", "555-0100", "1 Analytical Way")
		require.NoError(t, err)
		originalID := customer.ID

		err = customer.Update("Ada King", "Ada.King@Example.com", "555-0101", "2 Difference Lane")

		require.NoError(t, err)
		assert.Equal(t, originalID, customer.ID)
		assert.Equal(t, "Ada King", customer.Name)
		assert.Equal(t, "ada.king@example.com", customer.Email)
		assert.Equal(t, "555-0101", customer.Phone)
		assert.Equal(t, "2 Difference Lane", customer.Address)
	})

	t.Run("rejects invalid email and keeps old values", func(t *testing.T) {
		customer, err := NewCustomer("Ada Lovelace", "ada@example.com", "", "")
		require.NoError(t, err)

		err = customer.Update("Ada King", "broken", "", "")

		assert.Error(t, err)
		assert.Equal(t, "Ada Lovelace", customer.Name)
		assert.Equal(t, "ada@example.com", customer.Email)
	})
}
