package core

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrEmailMismatch        = errors.New("email does not match the authenticated user")
)

// Identity is the authenticated-user context produced by an IdentityVerifier.
type Identity struct {
	Email string
	Name  string
	Photo string
}

// DisplayName returns the user's name, falling back to the email's local part.
func (id Identity) DisplayName() string {
	if name := CleanString(id.Name); name != "" {
		return name
	}
	if i := strings.Index(id.Email, "@"); i > 0 {
		return id.Email[:i]
	}
	return id.Email
}

// IdentityVerifier validates a bearer credential against the identity
// provider and returns the caller's Identity.
// Any verification failure (expired, bad signature, wrong audience) is
// reported as ErrAuthenticationFailed.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// SelfMatch fails with ErrEmailMismatch when a caller-supplied email and the
// authenticated email are both present and differ. A caller may only query
// or act on their own records.
func SelfMatch(supplied, authenticated string) error {
	supplied = CleanString(supplied, true /* lower */)
	authenticated = CleanString(authenticated, true /* lower */)
	if supplied != "" && authenticated != "" && supplied != authenticated {
		return ErrEmailMismatch
	}
	return nil
}
