package credential

import (
	"context"

	"shapes/internal/domain"
)

// step obtains a single credential.
type step func(ctx context.Context) (domain.Credential, error)

// fallback attempts first; on failure it attempts second exactly once and
// propagates second's result. The first error is discarded.
func fallback(first, second step) step {
	return func(ctx context.Context) (domain.Credential, error) {
		cred, err := first(ctx)
		if err == nil {
			return cred, nil
		}
		return second(ctx)
	}
}
