package consumer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/events"
	"github.com/HorizonColonel/orient-launch-pad/internal/progress"
	progresserrors "github.com/HorizonColonel/orient-launch-pad/internal/progress/errors"
	progressMock "github.com/HorizonColonel/orient-launch-pad/internal/progress/mock"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/retry"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeReader struct {
	mu        sync.Mutex
	pending   []kafkago.Message
	committed []kafkago.Message
	drained   chan struct{}
}

func newFakeReader(msgs ...kafkago.Message) *fakeReader {
	return &fakeReader{pending: msgs, drained: make(chan struct{})}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.pending) > 0 {
		msg := r.pending[0]
		r.pending = r.pending[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()

	select {
	case <-r.drained:
	default:
		close(r.drained)
	}
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

var testBackoff = retry.Policy{BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

func offsets(msgs []kafkago.Message) []int64 {
	out := make([]int64, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Offset)
	}
	return out
}

func run(t *testing.T, reader *fakeReader, svc ProgressService) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ConsumeModuleLifecycle(ctx, reader, svc, testBackoff, zap.NewNop())
		close(done)
	}()

	select {
	case <-reader.drained:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not drain messages")
	}
	cancel()
	<-done
}

func message(offset int64, value string) kafkago.Message {
	return kafkago.Message{
		Topic:   events.ModuleLifecycleTopic,
		Offset:  offset,
		Value:   []byte(value),
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-1")}},
	}
}

func TestConsumeModuleLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := progressMock.NewMockService(ctrl)

	reader := newFakeReader(
		message(1, `{"event_type":"module_created","module_id":"m-1","company_id":"c-1","assign_to_all":true,"created_by":"u-1"}`),
		message(2, `{"event_type":"module_created","module_id":"m-2","company_id":"c-1","assign_to_all":false}`),
		message(3, `{"event_type":"module_created","module_id":"m-3","company_id":"c-1","assign_to_all":true}`),
		message(4, `{"event_type":"module_created","module_id":"m-4","company_id":"c-1","assign_to_all":true}`),
		message(5, `{"event_type":"module_deleted","module_id":"m-1","company_id":"c-1"}`),
		message(6, `not json`),
	)

	svc.EXPECT().AssignModuleToCompany(gomock.Any(), "c-1", "m-1", "u-1").DoAndReturn(
		func(ctx context.Context, _, _, _ string) (progress.AssignmentResult, error) {
			assert.Equal(t, "req-1", contextutil.GetRequestID(ctx))
			return progress.AssignmentResult{Requested: 2, Created: 2}, nil
		})
	svc.EXPECT().AssignModuleToCompany(gomock.Any(), "c-1", "m-3", "").Return(progress.AssignmentResult{}, progresserrors.ErrModuleNotFound)
	gomock.InOrder(
		svc.EXPECT().AssignModuleToCompany(gomock.Any(), "c-1", "m-4", "").DoAndReturn(
			func(context.Context, string, string, string) (progress.AssignmentResult, error) {
				reader.mu.Lock()
				defer reader.mu.Unlock()
				assert.Equal(t, []int64{1, 2, 3}, offsets(reader.committed))
				return progress.AssignmentResult{}, errors.New("connection reset")
			}),
		svc.EXPECT().AssignModuleToCompany(gomock.Any(), "c-1", "m-4", "").DoAndReturn(
			func(context.Context, string, string, string) (progress.AssignmentResult, error) {
				reader.mu.Lock()
				defer reader.mu.Unlock()
				assert.Equal(t, []int64{1, 2, 3}, offsets(reader.committed))
				return progress.AssignmentResult{Requested: 3, Created: 3}, nil
			}),
	)
	svc.EXPECT().InvalidateCompany(gomock.Any(), "c-1").Return(nil)

	run(t, reader, svc)

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, offsets(reader.committed))
}

func TestConsumeModuleLifecycle_StopWhileRetrying(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := progressMock.NewMockService(ctrl)

	reader := newFakeReader(
		message(10, `{"event_type":"module_created","module_id":"m-4","company_id":"c-1","assign_to_all":true}`),
		message(11, `{"event_type":"module_deleted","module_id":"m-1","company_id":"c-1"}`),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var attempts int
	svc.EXPECT().AssignModuleToCompany(gomock.Any(), "c-1", "m-4", "").DoAndReturn(
		func(context.Context, string, string, string) (progress.AssignmentResult, error) {
			attempts++
			if attempts == 3 {
				cancel()
			}
			return progress.AssignmentResult{}, errors.New("connection reset")
		}).Times(3)

	done := make(chan struct{})
	go func() {
		ConsumeModuleLifecycle(ctx, reader, svc, testBackoff, zap.NewNop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}

	assert.Equal(t, 3, attempts)
	assert.Empty(t, reader.committed)
	assert.Len(t, reader.pending, 1)
}
