package main

import (
	"context"
	"os"
	"strconv"

	"github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/service/settings"
	"github.com/google/uuid"
)

const defaultTokenLifetimeSeconds = 3600

// createWorkspaceToken mints a short-lived workspace token for the
// companion tooling. The SDK picks up the service principal
// credentials from the environment.
func createWorkspaceToken(ctx context.Context) (string, error) {
	w, err := databricks.NewWorkspaceClient()
	if err != nil {
		return "", err
	}

	lifetime := int64(defaultTokenLifetimeSeconds)
	if raw := os.Getenv("CLAUDE_CODE_TOKEN_EXPIRY_SECONDS"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			lifetime = parsed
		}
	}

	res, err := w.Tokens.Create(ctx, settings.CreateTokenRequest{
		Comment:         "devbox-launcher-" + uuid.NewString(),
		LifetimeSeconds: lifetime,
	})
	if err != nil {
		return "", err
	}
	return res.TokenValue, nil
}
