package domain_test

import (
	"casino/pkg/domain"
	"encoding/json"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAmountShare(t *testing.T) {
	tests := []struct {
		amount domain.Amount
		rate   domain.BasisPoints
		want   domain.Amount
	}{
		{10_000, 1000, 1000},
		{999, 500, 49},
		{1, 100, 0},
		{12345, domain.MaxBasisPoints, 12345},
		{500, 0, 0},
		{10_000_000_000_000_000, 1000, 1_000_000_000_000_000},
		{math.MaxInt64, domain.MaxBasisPoints, math.MaxInt64},
		{math.MaxInt64, 1000, 922_337_203_685_477_580},
		{math.MaxInt64, 1, 922_337_203_685_477},
		// rates outside [0, 10000] are clamped
		{100, 20_000, 100},
		{100, -5, 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.amount.Share(tt.rate), "%d * %d bps", tt.amount, tt.rate)
	}
}

func TestTreeNodeSize(t *testing.T) {
	root := domain.TreeNode{
		Children: []domain.TreeNode{
			{Level: 1, Children: []domain.TreeNode{{Level: 2}, {Level: 2}}},
			{Level: 1},
		},
	}
	require.Equal(t, 4, root.Size())
	require.Equal(t, 0, (&domain.TreeNode{}).Size())
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	id := domain.UserID(uuid.New())
	u := domain.User{ID: id, Username: "alice", PasswordHash: "secret-hash", Role: domain.RoleUser}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	require.NotContains(t, string(b), "secret-hash")
	require.Contains(t, string(b), `"id":"`+id.String()+`"`)
	require.NotContains(t, string(b), "referrerId")
}

func TestParseUserID(t *testing.T) {
	id := uuid.New()
	parsed, err := domain.ParseUserID(id.String())
	require.NoError(t, err)
	require.Equal(t, domain.UserID(id), parsed)

	_, err = domain.ParseUserID("not-a-uuid")
	require.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	require.True(t, (&domain.User{Role: domain.RoleAdmin}).IsAdmin())
	require.False(t, (&domain.User{Role: domain.RoleUser}).IsAdmin())
	require.False(t, (*domain.User)(nil).IsAdmin())
}
