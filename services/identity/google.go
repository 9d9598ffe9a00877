package identitysvc

import (
	"context"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/pkg/errors"

	"github.com/educircle/backend/core"
)

// googleService validates ID tokens against the provider's published
// certificates for the configured client ID.
type googleService struct {
	verifier *googleAuthIDTokenVerifier.Verifier
	audience []string
}

var _ core.IdentityVerifier = (*googleService)(nil)

func NewGoogleService(conf *core.Config) (core.IdentityVerifier, error) {
	clientID, err := conf.Identity.ClientID()
	if err != nil {
		return nil, errors.Wrap(err, "reading identity credentials")
	}
	return &googleService{
		verifier: &googleAuthIDTokenVerifier.Verifier{},
		audience: []string{clientID},
	}, nil
}

func (svc *googleService) Verify(_ context.Context, token string) (core.Identity, error) {
	if err := svc.verifier.VerifyIDToken(token, svc.audience); err != nil {
		return core.Identity{}, core.ErrAuthenticationFailed
	}

	claims, err := googleAuthIDTokenVerifier.Decode(token)
	if err != nil {
		return core.Identity{}, core.ErrAuthenticationFailed
	}
	return core.Identity{
		Email: claims.Email,
		Name:  claims.Name,
		Photo: claims.Picture,
	}, nil
}
