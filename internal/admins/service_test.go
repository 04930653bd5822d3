package admins

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.SetPassword(ctx, "Coach@Club.Example", "hunter22")
	require.NoError(t, err)

	a, err := svc.Authenticate(ctx, "coach@club.example", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "coach@club.example", a.Email, "email is normalized")

	_, err = svc.Authenticate(ctx, "coach@club.example", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown account yields the same error as a wrong password
	_, err = svc.Authenticate(ctx, "nobody@club.example", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetPassword_Rotates(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.SetPassword(ctx, "coach@club.example", "first")
	require.NoError(t, err)
	_, err = svc.SetPassword(ctx, "coach@club.example", "second")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "coach@club.example", "first")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "coach@club.example", "second")
	require.NoError(t, err)
}
