package bootstrap

import "context"

// Audit actions recorded by the leave service lifecycle.
const (
	ActionServerStart    = "LEAVE_API_START"
	ActionServerShutdown = "LEAVE_API_SHUTDOWN"
	ActionWorkerStart    = "LEAVE_WORKER_START"
	ActionWorkerShutdown = "LEAVE_WORKER_SHUTDOWN"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
