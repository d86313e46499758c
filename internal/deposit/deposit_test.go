package deposit_test

import (
	"casino/internal/deposit"
	"casino/internal/mlm"
	"casino/pkg/domain"
	"casino/pkg/serrors"
	"casino/pkg/storage"
	mockstorage "casino/pkg/storage/mock"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, deposit.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, deposit.New(st, deposit.Options{MaxAttempts: 4})
}

func expectWithTx(ctrl *gomock.Controller, m *mockstorage.MockStorage, fn func(tx *mockstorage.MockAllStorage)) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func TestDeposit_Create(t *testing.T) {
	_, st, s := newTestService(t)

	userID := domain.UserID(uuid.New())
	st.EXPECT().StoreDeposit(gomock.Any(), domain.Deposit{
		UserID:   userID,
		Amount:   500,
		Currency: "USDT",
		TxHash:   "0xabc",
		Status:   domain.DepositStatusPending,
	}).DoAndReturn(func(_ context.Context, d domain.Deposit) (*domain.Deposit, error) {
		d.ID = domain.DepositID(uuid.New())

		return &d, nil
	})

	d, err := s.Create(context.Background(), userID, deposit.CreateInput{Amount: 500, Currency: "usdt", TxHash: " 0xabc "})
	require.NoError(t, err)
	require.Equal(t, domain.DepositStatusPending, d.Status)
}

func TestDeposit_Create_Errors(t *testing.T) {
	t.Run("non positive amount", func(t *testing.T) {
		_, _, s := newTestService(t)

		_, err := s.Create(context.Background(), domain.UserID{}, deposit.CreateInput{Amount: 0, Currency: "USDT", TxHash: "x"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("amount above the deposit cap", func(t *testing.T) {
		_, _, s := newTestService(t)

		_, err := s.Create(context.Background(), domain.UserID{},
			deposit.CreateInput{Amount: domain.MaxDepositAmount + 1, Currency: "USDT", TxHash: "x"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("duplicate hash", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().StoreDeposit(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("insert deposit: %w", storage.ErrDuplicate))

		_, err := s.Create(context.Background(), domain.UserID{}, deposit.CreateInput{Amount: 1, Currency: "USDT", TxHash: "x"})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestDeposit_Get(t *testing.T) {
	owner := domain.UserID(uuid.New())
	other := domain.UserID(uuid.New())
	dep := &domain.Deposit{ID: domain.DepositID(uuid.New()), UserID: owner}

	t.Run("owner", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().DepositByID(gomock.Any(), dep.ID).Return(dep, nil)

		got, err := s.Get(context.Background(), owner, dep.ID)
		require.NoError(t, err)
		require.Equal(t, dep, got)
	})

	t.Run("other user", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().DepositByID(gomock.Any(), dep.ID).Return(dep, nil)
		st.EXPECT().UserByID(gomock.Any(), other).Return(&domain.User{ID: other, Role: domain.RoleUser}, nil)

		_, err := s.Get(context.Background(), other, dep.ID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("admin", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().DepositByID(gomock.Any(), dep.ID).Return(dep, nil)
		st.EXPECT().UserByID(gomock.Any(), other).Return(&domain.User{ID: other, Role: domain.RoleAdmin}, nil)

		got, err := s.Get(context.Background(), other, dep.ID)
		require.NoError(t, err)
		require.Equal(t, dep, got)
	})

	t.Run("missing", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().DepositByID(gomock.Any(), dep.ID).Return(nil, nil)

		_, err := s.Get(context.Background(), owner, dep.ID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestDeposit_Confirm(t *testing.T) {
	ctrl, st, s := newTestService(t)

	dep := &domain.Deposit{
		ID:     domain.DepositID(uuid.New()),
		UserID: domain.UserID(uuid.New()),
		Amount: 1000,
		Status: domain.DepositStatusConfirmed,
	}
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().TransitionDeposit(gomock.Any(), dep.ID, domain.DepositStatusPending, domain.DepositStatusConfirmed).
				Return(dep, nil),
			tx.EXPECT().AddBalance(gomock.Any(), dep.UserID, domain.Amount(1000)).Return(nil),
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
				func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
					jobArgs, ok := args.(mlm.JobArgs)
					require.True(t, ok)
					require.Equal(t, dep.ID, jobArgs.DepositID)
					require.Equal(t, 4, jobArgs.InsertOpts().MaxAttempts)

					return true, nil
				}),
		)
	})

	got, err := s.Confirm(context.Background(), dep.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DepositStatusConfirmed, got.Status)
}

func TestDeposit_Confirm_NotPending(t *testing.T) {
	ctrl, st, s := newTestService(t)

	id := domain.DepositID(uuid.New())
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TransitionDeposit(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, nil)
		tx.EXPECT().DepositByID(gomock.Any(), id).
			Return(&domain.Deposit{ID: id, Status: domain.DepositStatusRejected}, nil)
	})

	_, err := s.Confirm(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "deposit is already REJECTED", serrors.PublicMessage(err))
}

func TestDeposit_Confirm_JobFailureRollsBack(t *testing.T) {
	ctrl, st, s := newTestService(t)

	dep := &domain.Deposit{ID: domain.DepositID(uuid.New()), UserID: domain.UserID(uuid.New()), Amount: 5}
	boom := errors.New("queue down")
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TransitionDeposit(gomock.Any(), dep.ID, gomock.Any(), gomock.Any()).Return(dep, nil)
		tx.EXPECT().AddBalance(gomock.Any(), dep.UserID, dep.Amount).Return(nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, boom)
	})

	_, err := s.Confirm(context.Background(), dep.ID)
	require.ErrorIs(t, err, boom)
}

func TestDeposit_Confirm_BalanceOverflow(t *testing.T) {
	ctrl, st, s := newTestService(t)

	dep := &domain.Deposit{ID: domain.DepositID(uuid.New()), UserID: domain.UserID(uuid.New()), Amount: 5}
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TransitionDeposit(gomock.Any(), dep.ID, gomock.Any(), gomock.Any()).Return(dep, nil)
		tx.EXPECT().AddBalance(gomock.Any(), dep.UserID, dep.Amount).
			Return(fmt.Errorf("could not update balance: %w", storage.ErrOutOfRange))
	})

	_, err := s.Confirm(context.Background(), dep.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "balance limit exceeded", serrors.PublicMessage(err))
}

func TestDeposit_Reject(t *testing.T) {
	t.Run("pending", func(t *testing.T) {
		ctrl, st, s := newTestService(t)
		id := domain.DepositID(uuid.New())
		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().TransitionDeposit(gomock.Any(), id, domain.DepositStatusPending, domain.DepositStatusRejected).
				Return(&domain.Deposit{ID: id, Status: domain.DepositStatusRejected}, nil)
		})

		got, err := s.Reject(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, domain.DepositStatusRejected, got.Status)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl, st, s := newTestService(t)
		id := domain.DepositID(uuid.New())
		expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().TransitionDeposit(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, nil)
			tx.EXPECT().DepositByID(gomock.Any(), id).Return(nil, nil)
		})

		_, err := s.Reject(context.Background(), id)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}
