package postgres

import (
	"casino/pkg/domain"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID            uuid.UUID     `db:"id"             goqu:"skipinsert"`
	Username      string        `db:"username"`
	Email         string        `db:"email"`
	PasswordHash  string        `db:"password_hash"`
	ReferralCode  string        `db:"referral_code"`
	ReferrerID    uuid.NullUUID `db:"referrer_id"`
	Role          string        `db:"role"`
	WalletAddress string        `db:"wallet_address"`
	Balance       int64         `db:"balance"        goqu:"skipinsert"`
	CreatedAt     time.Time     `db:"created_at"     goqu:"skipinsert"`
	UpdatedAt     sql.NullTime  `db:"updated_at"     goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	u := &domain.User{
		ID:            domain.UserID(p.ID),
		Username:      p.Username,
		Email:         p.Email,
		PasswordHash:  p.PasswordHash,
		ReferralCode:  p.ReferralCode,
		Role:          domain.Role(p.Role),
		WalletAddress: p.WalletAddress,
		Balance:       domain.Amount(p.Balance),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
	if p.ReferrerID.Valid {
		ref := domain.UserID(p.ReferrerID.UUID)
		u.ReferrerID = &ref
	}

	return u
}

func (p *PgUser) FromDomain(u domain.User) {
	role := u.Role
	if role == "" {
		role = domain.RoleUser
	}

	*p = PgUser{
		ID:            uuid.UUID(u.ID),
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		ReferralCode:  u.ReferralCode,
		Role:          string(role),
		WalletAddress: u.WalletAddress,
		Balance:       int64(u.Balance),
		CreatedAt:     u.CreatedAt,
	}
	if u.ReferrerID != nil {
		p.ReferrerID = uuid.NullUUID{UUID: uuid.UUID(*u.ReferrerID), Valid: true}
	}
}

func pgUsersToDomain(rows []PgUser) []domain.User {
	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgDeposit struct {
	ID        uuid.UUID    `db:"id"         goqu:"skipinsert"`
	UserID    uuid.UUID    `db:"user_id"`
	Amount    int64        `db:"amount"`
	Currency  string       `db:"currency"`
	TxHash    string       `db:"tx_hash"`
	Status    string       `db:"status"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDeposit) ToDomain() *domain.Deposit {
	return &domain.Deposit{
		ID:        domain.DepositID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Amount:    domain.Amount(p.Amount),
		Currency:  p.Currency,
		TxHash:    p.TxHash,
		Status:    domain.DepositStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgDeposit) FromDomain(d domain.Deposit) {
	*p = PgDeposit{
		ID:       uuid.UUID(d.ID),
		UserID:   uuid.UUID(d.UserID),
		Amount:   int64(d.Amount),
		Currency: d.Currency,
		TxHash:   d.TxHash,
		Status:   string(d.Status),
	}
}

func pgDepositsToDomain(rows []PgDeposit) []domain.Deposit {
	out := make([]domain.Deposit, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgPayout struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	DepositID     uuid.UUID `db:"deposit_id"`
	BeneficiaryID uuid.UUID `db:"beneficiary_id"`
	SourceUserID  uuid.UUID `db:"source_user_id"`
	Level         int       `db:"level"`
	RateBps       int64     `db:"rate_bps"`
	Amount        int64     `db:"amount"`
	Currency      string    `db:"currency"`
	CreatedAt     time.Time `db:"created_at"     goqu:"skipinsert"`
}

func (p *PgPayout) ToDomain() *domain.Payout {
	return &domain.Payout{
		ID:            domain.PayoutID(p.ID),
		DepositID:     domain.DepositID(p.DepositID),
		BeneficiaryID: domain.UserID(p.BeneficiaryID),
		SourceUserID:  domain.UserID(p.SourceUserID),
		Level:         p.Level,
		RateBps:       domain.BasisPoints(p.RateBps),
		Amount:        domain.Amount(p.Amount),
		Currency:      p.Currency,
		CreatedAt:     p.CreatedAt,
	}
}

func (p *PgPayout) FromDomain(d domain.Payout) {
	*p = PgPayout{
		DepositID:     uuid.UUID(d.DepositID),
		BeneficiaryID: uuid.UUID(d.BeneficiaryID),
		SourceUserID:  uuid.UUID(d.SourceUserID),
		Level:         d.Level,
		RateBps:       int64(d.RateBps),
		Amount:        int64(d.Amount),
		Currency:      d.Currency,
	}
}

func pgPayoutsToDomain(rows []PgPayout) []domain.Payout {
	out := make([]domain.Payout, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
