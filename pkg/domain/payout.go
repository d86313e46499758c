package domain

import (
	"time"

	"github.com/google/uuid"
)

type PayoutID uuid.UUID

func (id PayoutID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PayoutID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Payout is a referral commission paid to BeneficiaryID because SourceUserID,
// who sits Level steps below in the referral tree, had a deposit confirmed.
type Payout struct {
	ID            PayoutID    `json:"id"`
	DepositID     DepositID   `json:"depositId"`
	BeneficiaryID UserID      `json:"beneficiaryId"`
	SourceUserID  UserID      `json:"sourceUserId"`
	Level         int         `json:"level"`
	RateBps       BasisPoints `json:"rateBps"`
	Amount        Amount      `json:"amount"`
	Currency      string      `json:"currency"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Earnings summarises the payouts received by a user.
type Earnings struct {
	Total Amount `json:"total"`
	Count int64  `json:"count"`
}
