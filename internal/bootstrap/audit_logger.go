package bootstrap

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"

	"go.uber.org/zap"
)

// ZapAuditLogger writes audit entries through the "audit" child of the process logger.
type ZapAuditLogger struct {
	logger *zap.Logger
}

func NewZapAuditLogger(logger *zap.Logger) *ZapAuditLogger {
	return &ZapAuditLogger{logger: logger.Named("audit")}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := make([]zap.Field, 0, len(entry.Meta)+3)
	fields = append(fields,
		zap.String("action", entry.Action),
		zap.Time("at", time.Now().UTC()),
	)
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	for _, k := range slices.Sorted(maps.Keys(entry.Meta)) {
		fields = append(fields, zap.Any("meta."+k, entry.Meta[k]))
	}

	l.logger.Info(entry.Message, fields...)
}
