package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), "shapes", "")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
