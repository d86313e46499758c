// Package mlm computes and pays multi-level referral commissions on confirmed
// deposits.
package mlm

import (
	"casino/internal/config"
	"casino/pkg/domain"
	"casino/pkg/logger"
	"casino/pkg/metrics"
	"casino/pkg/serrors"
	"casino/pkg/storage"
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const defaultListLimit = 100

var tracer = otel.Tracer("casino/internal/mlm") //nolint: gochecknoglobals

type Options struct {
	// LevelRates holds one rate per upline level; index 0 is the depositor's
	// direct referrer.
	LevelRates []domain.BasisPoints
	// MaxAttempts bounds the retries of a distribution job.
	MaxAttempts int
	// ListLimit caps how many payouts are returned by Payouts.
	ListLimit uint
}

func NewOptions(cfg *config.Config) Options {
	rates := make([]domain.BasisPoints, len(cfg.MLM.LevelRates))
	for i, r := range cfg.MLM.LevelRates {
		rates[i] = domain.BasisPoints(r)
	}

	return Options{
		LevelRates:  rates,
		MaxAttempts: cfg.Worker.MaxAttempts,
		ListLimit:   defaultListLimit,
	}
}

type mlm struct {
	options Options
	storage storage.Storage
}

func New(storage storage.Storage, options Options) Service {
	if options.ListLimit == 0 {
		options.ListLimit = defaultListLimit
	}

	return &mlm{
		options: options,
		storage: storage,
	}
}

func (m *mlm) Plan() []domain.CommissionLevel {
	plan := make([]domain.CommissionLevel, len(m.options.LevelRates))
	for i, rate := range m.options.LevelRates {
		plan[i] = domain.CommissionLevel{Level: i + 1, RateBps: rate}
	}

	return plan
}

func (m *mlm) Distribute(ctx context.Context, depositID domain.DepositID) ([]domain.Payout, error) {
	ctx, span := tracer.Start(ctx, "mlm.Distribute",
		trace.WithAttributes(attribute.String("deposit.id", depositID.String())))
	defer span.End()
	ctx = logger.WithTrace(logger.WithFields(ctx, zap.Stringer("depositID", depositID)))

	var (
		payouts []domain.Payout
		created bool
	)
	err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deposit, err := tx.DepositByID(ctx, depositID)
		if err != nil {
			return fmt.Errorf("could not get deposit: %w", err)
		}
		if deposit == nil {
			return serrors.With(serrors.ErrNotFound, "deposit not found")
		}
		if deposit.Status != domain.DepositStatusConfirmed {
			return serrors.With(serrors.ErrConflict, "deposit is %s, not CONFIRMED", deposit.Status)
		}

		existing, err := tx.PayoutsByDeposit(ctx, depositID)
		if err != nil {
			return fmt.Errorf("could not get existing payouts: %w", err)
		}
		if len(existing) > 0 {
			payouts = existing

			return nil
		}

		planned, err := m.planPayouts(ctx, tx, deposit)
		if err != nil {
			return err
		}
		if len(planned) == 0 {
			return nil
		}

		stored, err := tx.StorePayouts(ctx, planned...)
		if err != nil {
			return fmt.Errorf("could not store payouts: %w", err)
		}
		for _, p := range stored {
			err := tx.AddBalance(ctx, p.BeneficiaryID, p.Amount)
			if errors.Is(err, storage.ErrOutOfRange) {
				return serrors.Wrap(serrors.ErrConflict, err, "level %d beneficiary balance limit exceeded", p.Level)
			}
			if err != nil {
				return fmt.Errorf("could not credit level %d payout: %w", p.Level, err)
			}
		}

		payouts = stored
		created = true

		return nil
	})
	if errors.Is(err, storage.ErrDuplicate) {
		// a concurrent run committed first
		existing, lookupErr := m.storage.PayoutsByDeposit(ctx, depositID)
		if lookupErr != nil {
			return nil, fmt.Errorf("could not get existing payouts: %w", lookupErr)
		}

		return existing, nil
	}
	if err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not distribute payouts: %w", err)
	}

	if created {
		for _, p := range payouts {
			metrics.PayoutsDistributed.WithLabelValues(strconv.Itoa(p.Level)).Inc()
			metrics.PayoutAmount.Add(float64(p.Amount))
		}
		logger.Info(ctx, "payouts distributed", zap.Int("count", len(payouts)))
	}

	return payouts, nil
}

// planPayouts walks the depositor's upline one referrer at a time, up to one
// step per configured level.
func (m *mlm) planPayouts(ctx context.Context, tx storage.AllStorage, deposit *domain.Deposit) ([]domain.Payout, error) {
	current, err := tx.UserByID(ctx, deposit.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get depositor: %w", err)
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "depositor not found")
	}

	seen := map[domain.UserID]bool{current.ID: true}
	var planned []domain.Payout
	for i, rate := range m.options.LevelRates {
		if current.ReferrerID == nil || seen[*current.ReferrerID] {
			break
		}

		sponsor, err := tx.UserByID(ctx, *current.ReferrerID)
		if err != nil {
			return nil, fmt.Errorf("could not get level %d referrer: %w", i+1, err)
		}
		if sponsor == nil {
			break
		}
		seen[sponsor.ID] = true

		if amount := deposit.Amount.Share(rate); amount > 0 {
			planned = append(planned, domain.Payout{
				DepositID:     deposit.ID,
				BeneficiaryID: sponsor.ID,
				SourceUserID:  deposit.UserID,
				Level:         i + 1,
				RateBps:       rate,
				Amount:        amount,
				Currency:      deposit.Currency,
			})
		}

		current = sponsor
	}

	return planned, nil
}

func (m *mlm) Enqueue(ctx context.Context, depositID domain.DepositID) (bool, error) {
	deposit, err := m.storage.DepositByID(ctx, depositID)
	if err != nil {
		return false, fmt.Errorf("could not get deposit: %w", err)
	}
	if deposit == nil {
		return false, serrors.With(serrors.ErrNotFound, "deposit not found")
	}
	if deposit.Status != domain.DepositStatusConfirmed {
		return false, serrors.With(serrors.ErrConflict, "deposit is %s, not CONFIRMED", deposit.Status)
	}

	added, err := m.storage.AddJob(ctx, NewJobArgs(depositID, m.options.MaxAttempts), nil)
	if err != nil {
		return false, fmt.Errorf("could not add distribution job: %w", err)
	}

	return added, nil
}

func (m *mlm) Payouts(ctx context.Context, userID domain.UserID) ([]domain.Payout, error) {
	payouts, err := m.storage.UserPayouts(ctx, userID, m.options.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get user payouts: %w", err)
	}

	return payouts, nil
}

func (m *mlm) Earnings(ctx context.Context, userID domain.UserID) (domain.Earnings, error) {
	earnings, err := m.storage.UserEarnings(ctx, userID)
	if err != nil {
		return domain.Earnings{}, fmt.Errorf("could not get user earnings: %w", err)
	}

	return earnings, nil
}
