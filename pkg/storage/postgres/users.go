package postgres

import (
	"casino/pkg/domain"
	"casino/pkg/storage"
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const usersTable = "users"

// referralLinkLock is the advisory lock key shared by every referral link.
const referralLinkLock int64 = 0x72656665727261

func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, writeErr(err, "insert user")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) userBy(ctx context.Context, where exp.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("email").Eq(email))
}

func (p *PgSQL) UserByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("referral_code").Eq(code))
}

func (p *PgSQL) ListUsers(ctx context.Context, limit uint) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return pgUsersToDomain(rows), nil
}

// UsersByReferrers returns direct referrals of all given users in sign-up order.
func (p *PgSQL) UsersByReferrers(ctx context.Context, referrerIDs ...domain.UserID) ([]domain.User, error) {
	if len(referrerIDs) == 0 {
		return nil, nil
	}

	ids := make([]interface{}, 0, len(referrerIDs))
	for _, id := range referrerIDs {
		ids = append(ids, uuid.UUID(id))
	}

	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(goqu.I("referrer_id").In(ids...)).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch referrals: %w", err)
	}

	return pgUsersToDomain(rows), nil
}

func (p *PgSQL) CountReferrals(ctx context.Context, id domain.UserID) (int, error) {
	count, err := p.Builder.From(usersTable).
		Where(goqu.I("referrer_id").Eq(uuid.UUID(id))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count referrals: %w", err)
	}

	return int(count), nil
}

func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Username != nil {
		rec["username"] = *updates.Username
	}
	if updates.WalletAddress != nil {
		rec["wallet_address"] = *updates.WalletAddress
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, writeErr(err, "update user")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// LockReferrals takes a transaction-scoped advisory lock, so upline walks and
// referrer writes of concurrent links never interleave.
func (p *PgSQL) LockReferrals(ctx context.Context) error {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return fmt.Errorf("could not lock referrals: %w", storage.ErrNotInTx)
	}

	if _, err := p.DB.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, referralLinkLock); err != nil {
		return fmt.Errorf("could not lock referrals: %w", err)
	}

	return nil
}

// SetReferrer only touches users without a referrer, so a referral can never be reassigned.
func (p *PgSQL) SetReferrer(ctx context.Context, id domain.UserID, referrerID domain.UserID) (bool, error) {
	res, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"referrer_id": uuid.UUID(referrerID),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("referrer_id").IsNull(),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not set referrer: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n == 1, nil
}

func (p *PgSQL) AddBalance(ctx context.Context, id domain.UserID, amount domain.Amount) error {
	res, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"balance":    goqu.L("balance + ?", int64(amount)),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return writeErr(err, "update balance")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("could not update balance: user %s does not exist", id)
	}

	return nil
}
