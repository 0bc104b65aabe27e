package member_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("Seoul", "Gangnam-daero 1", "06000")
	require.NoError(t, err)
	return a
}

func TestNewMember(t *testing.T) {
	id := kernel.NewUUID()
	address := validAddress(t)

	t.Run("should create member with valid parameters", func(t *testing.T) {
		m, err := member.NewMember(id, "  Kim  ", address)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(id))
		assert.Equal(t, "Kim", m.Name())
		assert.True(t, m.Address().IsEqual(address))
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		m, err := member.NewMember(id, "   ", address)

		require.ErrorIs(t, err, member.ErrNameIsRequired)
		assert.Nil(t, m)
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		m, err := member.NewMember(kernel.UUID{}, "", kernel.Address{})

		require.Error(t, err)
		assert.Nil(t, m)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, member.ErrNameIsRequired)
		require.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
	})
}

func TestMember_Validate(t *testing.T) {
	var nilMember *member.Member
	assert.Equal(t, member.ErrMemberIsNotConstructed, nilMember.Validate())

	var zero member.Member
	assert.Equal(t, member.ErrMemberIsNotConstructed, zero.Validate())
}

func TestMember_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	m1, _ := member.NewMember(id, "Kim", validAddress(t))
	m2, _ := member.NewMember(id, "Lee", validAddress(t))
	m3, _ := member.NewMember(kernel.NewUUID(), "Kim", validAddress(t))

	assert.True(t, m1.IsEqual(m2))
	assert.False(t, m1.IsEqual(m3))
	assert.False(t, m1.IsEqual(nil))
}
