package bootstrap_test

import (
	"context"
	"testing"

	"go-leave/internal/bootstrap"
	"go-leave/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-123")
	audit.Log(ctx, bootstrap.AuditLog{
		Action:  bootstrap.ActionServerShutdown,
		Message: "leave API stopping, draining in-flight requests",
		Meta:    map[string]any{"signal": "terminated"},
	})

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, bootstrap.ActionServerShutdown, fields["action"])
	assert.Equal(t, "req-123", fields["request_id"])

	t.Run("meta and request id are omitted when absent", func(t *testing.T) {
		audit.Log(context.Background(), bootstrap.AuditLog{
			Action:  bootstrap.ActionServerStart,
			Message: "leave API accepting requests",
		})
		fields := logs.All()[1].ContextMap()
		assert.NotContains(t, fields, "request_id")
		assert.NotContains(t, fields, "meta")
	})
}
