package impl

import (
	"context"
	"log/slog"
	"time"

	"commerce/config"
	deliverycontext "commerce/internal/delivery/context"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/domain/service"
	"commerce/internal/errors"

	"github.com/cenkalti/backoff/v4"
)

// txRetrier re-runs a unit of work after transient transaction failures.
type txRetrier struct {
	maxRetries      uint64
	initialInterval time.Duration
	maxInterval     time.Duration
	metrics         service.CommerceMetrics
	logger          *slog.Logger
}

func newTxRetrier(cfg *config.Config, metrics service.CommerceMetrics, logger *slog.Logger) *txRetrier {
	r := &txRetrier{
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     time.Second,
		metrics:         metrics,
		logger:          logger,
	}
	if cfg != nil && cfg.Transaction != nil {
		if cfg.Transaction.MaxRetries >= 0 {
			r.maxRetries = uint64(cfg.Transaction.MaxRetries)
		}
		if cfg.Transaction.InitialInterval > 0 {
			r.initialInterval = cfg.Transaction.InitialInterval
		}
		if cfg.Transaction.MaxInterval > 0 {
			r.maxInterval = cfg.Transaction.MaxInterval
		}
	}

	return r
}

// isTransactionFailure is the default retry predicate.
func isTransactionFailure(err error) bool {
	return errors.Is(err, domainerrors.ErrTransactionFailed)
}

// Do runs fn until it succeeds, returns an error retryable rejects, or the retry
// budget is spent. The last error is returned unchanged.
func (r *txRetrier) Do(ctx context.Context, operation string, retryable func(error) bool, fn func() error) error {
	if retryable == nil {
		retryable = isTransactionFailure
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initialInterval
	policy.MaxInterval = r.maxInterval
	policy.MaxElapsedTime = 0

	op := func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return backoff.Permanent(err)
		}

		return err
	}

	notify := func(err error, wait time.Duration) {
		if r.metrics != nil {
			r.metrics.TransactionRetried(operation)
		}
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Retrying transaction",
			slog.String("operation", operation),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}

	return backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(policy, r.maxRetries), ctx), notify)
}
