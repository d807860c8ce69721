package challenge

import (
	"context"
	"errors"

	"shapes/internal/domain"
)

// ErrNoToken is returned by a Static widget without a token.
var ErrNoToken = errors.New("challenge: no token configured")

// Static resolves every challenge with Token.
type Static struct {
	Token string
}

var _ domain.ChallengeWidget = Static{}

func (s Static) Execute(ctx context.Context, siteKey, action string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Token == "" {
		return "", ErrNoToken
	}
	return s.Token, nil
}
