package postgres

import (
	"casino/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const payoutsTable = "payouts"

func (p *PgSQL) StorePayouts(ctx context.Context, payouts ...domain.Payout) ([]domain.Payout, error) {
	if len(payouts) == 0 {
		return nil, nil
	}

	rows := make([]PgPayout, len(payouts))
	for i := range payouts {
		rows[i].FromDomain(payouts[i])
	}

	var stored []PgPayout
	if err := p.Builder.Insert(payoutsTable).
		Rows(rows).
		Returning(&PgPayout{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, writeErr(err, "insert payouts")
	}

	return pgPayoutsToDomain(stored), nil
}

func (p *PgSQL) PayoutsByDeposit(ctx context.Context, depositID domain.DepositID) ([]domain.Payout, error) {
	var rows []PgPayout
	if err := p.Builder.From(payoutsTable).
		Where(goqu.I("deposit_id").Eq(uuid.UUID(depositID))).
		Order(goqu.I("level").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch deposit payouts: %w", err)
	}

	return pgPayoutsToDomain(rows), nil
}

func (p *PgSQL) UserPayouts(ctx context.Context, beneficiaryID domain.UserID, limit uint) ([]domain.Payout, error) {
	var rows []PgPayout
	if err := p.Builder.From(payoutsTable).
		Where(goqu.I("beneficiary_id").Eq(uuid.UUID(beneficiaryID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user payouts: %w", err)
	}

	return pgPayoutsToDomain(rows), nil
}

func (p *PgSQL) UserEarnings(ctx context.Context, beneficiaryID domain.UserID) (domain.Earnings, error) {
	var row struct {
		Total int64 `db:"total"`
		Count int64 `db:"count"`
	}
	if _, err := p.Builder.From(payoutsTable).
		Select(
			goqu.COALESCE(goqu.SUM("amount"), 0).As("total"),
			goqu.COUNT("*").As("count"),
		).
		Where(goqu.I("beneficiary_id").Eq(uuid.UUID(beneficiaryID))).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return domain.Earnings{}, fmt.Errorf("could not sum user payouts: %w", err)
	}

	return domain.Earnings{
		Total: domain.Amount(row.Total),
		Count: row.Count,
	}, nil
}
