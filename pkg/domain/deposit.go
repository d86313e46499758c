package domain

import (
	"time"

	"github.com/google/uuid"
)

// DepositID uniquely identifies a deposit.
type DepositID uuid.UUID

func (id DepositID) String() string { return uuid.UUID(id).String() }

func (id DepositID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *DepositID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func ParseDepositID(s string) (DepositID, error) {
	id, err := uuid.Parse(s)

	return DepositID(id), err //nolint: wrapcheck
}

// DepositStatus is the moderation state of a deposit. PENDING is the only
// state that can change; CONFIRMED and REJECTED are final.
type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "PENDING"
	DepositStatusConfirmed DepositStatus = "CONFIRMED"
	DepositStatusRejected  DepositStatus = "REJECTED"
)

// Deposit is a user's claim that TxHash transferred Amount to the platform.
type Deposit struct {
	ID        DepositID     `json:"id"`
	UserID    UserID        `json:"userId"`
	Amount    Amount        `json:"amount"`
	Currency  string        `json:"currency"`
	TxHash    string        `json:"txHash"`
	Status    DepositStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
