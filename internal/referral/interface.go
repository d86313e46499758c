package referral

import (
	"casino/pkg/domain"
	"context"
)

//go:generate mockgen -package mockreferral -source=interface.go -destination=mock/mockreferral.go *
type Service interface {
	// Code returns the user's own referral code.
	Code(ctx context.Context, userID domain.UserID) (string, error)
	// Direct returns the users referred by userID, oldest first.
	Direct(ctx context.Context, userID domain.UserID) ([]domain.PublicProfile, error)
	// Tree returns the downline of rootID. depth is clamped to the configured
	// bounds; zero means the maximum.
	Tree(ctx context.Context, rootID domain.UserID, depth int) (*domain.TreeNode, error)
	// Link attaches the owner of code as userID's referrer.
	Link(ctx context.Context, userID domain.UserID, code string) (*domain.User, error)
	Stats(ctx context.Context, userID domain.UserID) (*domain.ReferralStats, error)
}
