package role_test

import (
	"testing"

	"shop/internal/app/role"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, role.Buyer.IsValid())
	assert.True(t, role.Seller.IsValid())
	assert.True(t, role.Admin.IsValid())

	assert.False(t, role.Role(-1).IsValid())
	assert.False(t, role.Role(3).IsValid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "buyer", role.Buyer.String())
	assert.Equal(t, "seller", role.Seller.String())
	assert.Equal(t, "admin", role.Admin.String())
	assert.Equal(t, "unknown", role.Role(42).String())
}
