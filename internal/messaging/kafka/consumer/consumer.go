package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/HorizonColonel/orient-launch-pad/internal/events"
	"github.com/HorizonColonel/orient-launch-pad/internal/progress"
	progresserrors "github.com/HorizonColonel/orient-launch-pad/internal/progress/errors"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/retry"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ProgressService is the part of the progress engine driven by module lifecycle events.
type ProgressService interface {
	AssignModuleToCompany(ctx context.Context, companyID, moduleID, assignedBy string) (progress.AssignmentResult, error)
	InvalidateCompany(ctx context.Context, companyID string) error
}

// ConsumeModuleLifecycle rolls modules created with assign_to_all out to the whole
// company and retires progress snapshots of deleted modules. A message that fails
// for a transient reason is retried in place with backoff, so no later offset is
// committed past it. If ctx ends first the message stays uncommitted.
func ConsumeModuleLifecycle(
	ctx context.Context,
	reader MessageReader,
	progressService ProgressService,
	backoff retry.Policy,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.module_lifecycle")
	log.Info("module lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("module lifecycle consumer stopped")
				return
			}
			log.Error("fetch module lifecycle message failed", zap.Error(err))
			continue
		}

		msgCtx := withRequestID(ctx, msg)
		for attempt := 1; !handleModuleLifecycle(msgCtx, msg, progressService, log); attempt++ {
			log.Warn("retry module lifecycle message",
				zap.Int64("offset", msg.Offset),
				zap.Int("attempt", attempt),
			)
			if err := retry.Wait(ctx, backoff, attempt); err != nil {
				log.Info("module lifecycle consumer stopped, message left uncommitted", zap.Int64("offset", msg.Offset))
				return
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit module lifecycle message failed", zap.Error(err))
		}
	}
}

// handleModuleLifecycle reports whether msg is done with and can be committed.
func handleModuleLifecycle(ctx context.Context, msg kafkago.Message, progressService ProgressService, log *zap.Logger) bool {
	var head struct {
		EventType string `json:"event_type"`
	}
	if err := json.Unmarshal(msg.Value, &head); err != nil {
		log.Error("decode module lifecycle event failed", zap.Error(err))
		return true
	}

	switch head.EventType {
	case events.ModuleCreated:
		var event events.ModuleCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode module_created event failed", zap.Error(err))
			return true
		}
		if !event.AssignToAll {
			return true
		}

		result, err := progressService.AssignModuleToCompany(ctx, event.CompanyID, event.ModuleID, event.CreatedBy)
		if err != nil {
			if isGone(err) {
				log.Warn("module or company gone before rollout, skipping",
					zap.String("module_id", event.ModuleID),
					zap.String("company_id", event.CompanyID),
					zap.Error(err),
				)
				return true
			}
			log.Error("assign module to company failed",
				zap.String("module_id", event.ModuleID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			return false
		}

		log.Info("module assigned from module_created event",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("module_id", event.ModuleID),
			zap.String("company_id", event.CompanyID),
			zap.Int("created", result.Created),
			zap.Int("already_assigned", result.AlreadyAssigned),
		)
		return true

	case events.ModuleDeleted:
		var event events.ModuleDeletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode module_deleted event failed", zap.Error(err))
			return true
		}
		if err := progressService.InvalidateCompany(ctx, event.CompanyID); err != nil {
			log.Warn("invalidate progress snapshots failed", zap.String("company_id", event.CompanyID), zap.Error(err))
			return false
		}
		return true

	default:
		log.Debug("ignore module lifecycle event", zap.String("event_type", head.EventType))
		return true
	}
}

func isGone(err error) bool {
	return errors.Is(err, progresserrors.ErrModuleNotFound) ||
		errors.Is(err, progresserrors.ErrInvalidModuleID) ||
		errors.Is(err, tenant.ErrNoCompany)
}

func withRequestID(ctx context.Context, msg kafkago.Message) context.Context {
	for _, h := range msg.Headers {
		if h.Key == "request_id" && len(h.Value) > 0 {
			return contextutil.WithRequestID(ctx, string(h.Value))
		}
	}
	return ctx
}
