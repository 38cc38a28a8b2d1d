package testutil

import (
	"context"

	"github.com/flexprice/taxengine/internal/types"
	"github.com/google/uuid"
)

func SetupContext() context.Context {
	return types.SetRequestID(context.Background(), uuid.NewString())
}
