package users_test

import (
	"casino/internal/users"
	"casino/pkg/domain"
	"casino/pkg/serrors"
	"casino/pkg/storage"
	mockstorage "casino/pkg/storage/mock"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*mockstorage.MockStorage, users.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, users.New(st, users.Options{ListLimit: 500})
}

func ptr[T any](v T) *T { return &v }

func TestUsers_List(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().ListUsers(gomock.Any(), uint(500)).Return([]domain.User{{Username: "alice"}}, nil)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestUsers_List_Error(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := s.List(context.Background())
	require.Error(t, err)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestUsers_Get(t *testing.T) {
	st, s := newTestService(t)

	id := domain.UserID(uuid.New())
	st.EXPECT().UserByID(gomock.Any(), id).Return(nil, nil)

	_, err := s.Get(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestUsers_Update(t *testing.T) {
	id := domain.UserID(uuid.New())

	t.Run("trims and stores", func(t *testing.T) {
		st, s := newTestService(t)
		st.EXPECT().UpdateUser(gomock.Any(), id, storage.UserUpdates{
			Username:      ptr("new_name"),
			WalletAddress: ptr("0xabc"),
		}).Return(&domain.User{ID: id, Username: "new_name"}, nil)

		u, err := s.Update(context.Background(), id, users.Updates{
			Username:      ptr("  new_name "),
			WalletAddress: ptr(" 0xabc "),
		})
		require.NoError(t, err)
		require.Equal(t, "new_name", u.Username)
	})

	t.Run("invalid username", func(t *testing.T) {
		_, s := newTestService(t)

		_, err := s.Update(context.Background(), id, users.Updates{Username: ptr("no spaces allowed")})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("username taken", func(t *testing.T) {
		st, s := newTestService(t)
		st.EXPECT().UpdateUser(gomock.Any(), id, gomock.Any()).
			Return(nil, fmt.Errorf("update user: %w", storage.ErrDuplicate))

		_, err := s.Update(context.Background(), id, users.Updates{Username: ptr("bob")})
		require.ErrorIs(t, err, serrors.ErrConflict)
		require.Equal(t, "username already taken", serrors.PublicMessage(err))
	})

	t.Run("nothing to update", func(t *testing.T) {
		st, s := newTestService(t)
		st.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id}, nil)

		u, err := s.Update(context.Background(), id, users.Updates{})
		require.NoError(t, err)
		require.Equal(t, id, u.ID)
	})
}

func TestValidUsername(t *testing.T) {
	require.True(t, users.ValidUsername("alice_99"))
	require.False(t, users.ValidUsername("al"))
	require.False(t, users.ValidUsername("alice!"))
	require.False(t, users.ValidUsername("a123456789012345678901234567890123"))
}
