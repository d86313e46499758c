package postgres

import (
	"casino/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const depositsTable = "deposits"

func (p *PgSQL) StoreDeposit(ctx context.Context, deposit domain.Deposit) (*domain.Deposit, error) {
	var row PgDeposit
	row.FromDomain(deposit)

	var stored PgDeposit
	if _, err := p.Builder.Insert(depositsTable).
		Rows(row).
		Returning(&PgDeposit{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, writeErr(err, "insert deposit")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) DepositByID(ctx context.Context, id domain.DepositID) (*domain.Deposit, error) {
	var row PgDeposit
	found, err := p.Builder.From(depositsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch deposit: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserDeposits(ctx context.Context, userID domain.UserID, limit uint) ([]domain.Deposit, error) {
	var rows []PgDeposit
	if err := p.Builder.From(depositsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user deposits: %w", err)
	}

	return pgDepositsToDomain(rows), nil
}

// TransitionDeposit is a compare-and-set on the status column; concurrent
// moderators cannot both win.
func (p *PgSQL) TransitionDeposit(ctx context.Context,
	id domain.DepositID,
	from domain.DepositStatus,
	to domain.DepositStatus) (*domain.Deposit, error) {
	var row PgDeposit
	found, err := p.Builder.Update(depositsTable).
		Set(goqu.Record{
			"status":     string(to),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(from)),
		).
		Returning(&PgDeposit{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update deposit status: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
