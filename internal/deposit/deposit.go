// Package deposit records user deposits and moderates them.
package deposit

import (
	"casino/internal/config"
	"casino/internal/mlm"
	"casino/pkg/domain"
	"casino/pkg/logger"
	"casino/pkg/metrics"
	"casino/pkg/serrors"
	"casino/pkg/storage"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const defaultListLimit = 100

var tracer = otel.Tracer("casino/internal/deposit") //nolint: gochecknoglobals

type Options struct {
	// MaxAttempts bounds the retries of the payout job enqueued on confirmation.
	MaxAttempts int
	ListLimit   uint
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Worker.MaxAttempts,
		ListLimit:   defaultListLimit,
	}
}

type deposit struct {
	options Options
	storage storage.Storage
}

func New(storage storage.Storage, options Options) Service {
	if options.ListLimit == 0 {
		options.ListLimit = defaultListLimit
	}

	return &deposit{
		options: options,
		storage: storage,
	}
}

func (d *deposit) Create(ctx context.Context, userID domain.UserID, input CreateInput) (*domain.Deposit, error) {
	if input.Amount <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "amount must be positive")
	}
	if input.Amount > domain.MaxDepositAmount {
		return nil, serrors.With(serrors.ErrBadRequest, "amount must be at most %d", domain.MaxDepositAmount)
	}

	stored, err := d.storage.StoreDeposit(ctx, domain.Deposit{
		UserID:   userID,
		Amount:   input.Amount,
		Currency: strings.ToUpper(strings.TrimSpace(input.Currency)),
		TxHash:   strings.TrimSpace(input.TxHash),
		Status:   domain.DepositStatusPending,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "transaction hash already submitted")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store deposit: %w", err)
	}

	logger.Info(ctx, "deposit submitted",
		zap.Stringer("depositID", stored.ID),
		zap.Stringer("userID", userID),
		zap.Int64("amount", int64(stored.Amount)))

	return stored, nil
}

func (d *deposit) List(ctx context.Context, userID domain.UserID) ([]domain.Deposit, error) {
	list, err := d.storage.UserDeposits(ctx, userID, d.options.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("could not list deposits: %w", err)
	}

	return list, nil
}

func (d *deposit) Get(ctx context.Context,
	requesterID domain.UserID,
	depositID domain.DepositID) (*domain.Deposit, error) {
	dep, err := d.storage.DepositByID(ctx, depositID)
	if err != nil {
		return nil, fmt.Errorf("could not get deposit: %w", err)
	}
	if dep == nil {
		return nil, serrors.With(serrors.ErrNotFound, "deposit not found")
	}
	if dep.UserID == requesterID {
		return dep, nil
	}

	requester, err := d.storage.UserByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("could not get requester: %w", err)
	}
	// other users' deposits are reported as missing
	if !requester.IsAdmin() {
		return nil, serrors.With(serrors.ErrNotFound, "deposit not found")
	}

	return dep, nil
}

// transition moves a PENDING deposit to status and runs then inside the same
// transaction.
func (d *deposit) transition(ctx context.Context,
	depositID domain.DepositID,
	status domain.DepositStatus,
	then func(tx storage.AllStorage, dep *domain.Deposit) error) (*domain.Deposit, error) {
	var updated *domain.Deposit
	err := d.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		dep, err := tx.TransitionDeposit(ctx, depositID, domain.DepositStatusPending, status)
		if err != nil {
			return fmt.Errorf("could not update deposit: %w", err)
		}
		if dep == nil {
			current, err := tx.DepositByID(ctx, depositID)
			if err != nil {
				return fmt.Errorf("could not get deposit: %w", err)
			}
			if current == nil {
				return serrors.With(serrors.ErrNotFound, "deposit not found")
			}

			return serrors.With(serrors.ErrConflict, "deposit is already %s", current.Status)
		}

		if then != nil {
			if err := then(tx, dep); err != nil {
				return err
			}
		}
		updated = dep

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not move deposit to %s: %w", status, err)
	}

	metrics.DepositsProcessed.WithLabelValues(string(status)).Inc()
	logger.Info(ctx, "deposit processed",
		zap.Stringer("depositID", depositID),
		zap.String("status", string(status)))

	return updated, nil
}

func (d *deposit) Confirm(ctx context.Context, depositID domain.DepositID) (*domain.Deposit, error) {
	ctx, span := tracer.Start(ctx, "deposit.Confirm",
		trace.WithAttributes(attribute.String("deposit.id", depositID.String())))
	defer span.End()

	dep, err := d.transition(ctx, depositID, domain.DepositStatusConfirmed,
		func(tx storage.AllStorage, dep *domain.Deposit) error {
			err := tx.AddBalance(ctx, dep.UserID, dep.Amount)
			if errors.Is(err, storage.ErrOutOfRange) {
				return serrors.Wrap(serrors.ErrConflict, err, "balance limit exceeded")
			}
			if err != nil {
				return fmt.Errorf("could not credit depositor: %w", err)
			}
			if _, err := tx.AddJob(ctx, mlm.NewJobArgs(dep.ID, d.options.MaxAttempts), nil); err != nil {
				return fmt.Errorf("could not add payout job: %w", err)
			}

			return nil
		})
	if err != nil {
		span.RecordError(err)

		return nil, err
	}

	return dep, nil
}

func (d *deposit) Reject(ctx context.Context, depositID domain.DepositID) (*domain.Deposit, error) {
	return d.transition(ctx, depositID, domain.DepositStatusRejected, nil)
}
