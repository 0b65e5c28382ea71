package service

import (
	"context"
	"testing"

	"travelblog-backend/internal/infrastructure/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := NewUserService(store.UserRepository())

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "secret"))

	created, err := store.UserRepository().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret")))

	// A second boot leaves the existing account alone, even with a different
	// configured password.
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "changed"))

	again, err := store.UserRepository().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, created.Password, again.Password)
}
