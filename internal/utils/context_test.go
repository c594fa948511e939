package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserFromContext_Found(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")
	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)
}
