package leaverequest

import (
	"context"
	"fmt"
	"time"

	"go-leave/internal/shared/counter"

	"go.uber.org/zap"
)

const requestNumberCounterType = "leave_request"

// Numbering issues year-scoped request numbers like LV-2026-007. When the
// counter infrastructure fails it falls back to a timestamp-derived suffix
// so request creation is never blocked by numbering trouble; the fallback
// form is non-sequential but unique with overwhelming probability.
type Numbering struct {
	counter counter.Repository
	logger  *zap.Logger
	now     func() time.Time
}

func NewNumbering(counterRepo counter.Repository, logger ...*zap.Logger) *Numbering {
	l := zap.L().Named("leaverequest.numbering")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.numbering")
	}
	return &Numbering{counter: counterRepo, logger: l, now: time.Now}
}

func (n *Numbering) Next(ctx context.Context, year int) string {
	seq, err := n.counter.GetNextValue(ctx, requestNumberCounterType, year)
	if err != nil {
		n.logger.Warn("request number counter failed, using timestamp fallback",
			zap.Int("year", year),
			zap.Error(err),
		)
		return fmt.Sprintf("LV-%d-T%d", year, n.now().UnixMilli())
	}
	return fmt.Sprintf("LV-%d-%03d", year, seq)
}
