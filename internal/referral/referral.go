// Package referral manages the referral forest: codes, links between users
// and downline trees.
package referral

import (
	"casino/internal/config"
	"casino/pkg/domain"
	"casino/pkg/serrors"
	"casino/pkg/storage"
	"context"
	"fmt"
	"strings"
)

type Options struct {
	// MaxTreeDepth caps how many levels Tree returns.
	MaxTreeDepth int
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxTreeDepth: cfg.Referral.MaxTreeDepth,
	}
}

type referral struct {
	options Options
	storage storage.Storage
}

func New(storage storage.Storage, options Options) Service {
	if options.MaxTreeDepth < 1 {
		options.MaxTreeDepth = 1
	}

	return &referral{
		options: options,
		storage: storage,
	}
}

func (r *referral) user(ctx context.Context, st storage.UserStorage, id domain.UserID) (*domain.User, error) {
	u, err := st.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return u, nil
}

func (r *referral) Code(ctx context.Context, userID domain.UserID) (string, error) {
	u, err := r.user(ctx, r.storage, userID)
	if err != nil {
		return "", err
	}

	return u.ReferralCode, nil
}

func (r *referral) Direct(ctx context.Context, userID domain.UserID) ([]domain.PublicProfile, error) {
	children, err := r.storage.UsersByReferrers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get direct referrals: %w", err)
	}

	profiles := make([]domain.PublicProfile, len(children))
	for i := range children {
		profiles[i] = children[i].Public()
	}

	return profiles, nil
}

type node struct {
	profile  domain.PublicProfile
	level    int
	children []*node
}

func (n *node) toDomain() domain.TreeNode {
	out := domain.TreeNode{
		PublicProfile: n.profile,
		Level:         n.level,
		Children:      make([]domain.TreeNode, len(n.children)),
	}
	for i, c := range n.children {
		out.Children[i] = c.toDomain()
	}

	return out
}

// Tree loads the downline breadth first with one query per level.
func (r *referral) Tree(ctx context.Context, rootID domain.UserID, depth int) (*domain.TreeNode, error) {
	if depth <= 0 || depth > r.options.MaxTreeDepth {
		depth = r.options.MaxTreeDepth
	}

	root, err := r.user(ctx, r.storage, rootID)
	if err != nil {
		return nil, err
	}

	rootNode := &node{profile: root.Public()}
	visited := map[domain.UserID]bool{root.ID: true}
	frontier := map[domain.UserID]*node{root.ID: rootNode}
	for level := 1; level <= depth && len(frontier) > 0; level++ {
		ids := make([]domain.UserID, 0, len(frontier))
		for id := range frontier {
			ids = append(ids, id)
		}

		children, err := r.storage.UsersByReferrers(ctx, ids...)
		if err != nil {
			return nil, fmt.Errorf("could not get level %d referrals: %w", level, err)
		}

		next := make(map[domain.UserID]*node, len(children))
		for i := range children {
			child := &children[i]
			if child.ReferrerID == nil || visited[child.ID] {
				continue
			}
			parent, ok := frontier[*child.ReferrerID]
			if !ok {
				continue
			}
			visited[child.ID] = true

			n := &node{profile: child.Public(), level: level}
			parent.children = append(parent.children, n)
			next[child.ID] = n
		}
		frontier = next
	}

	tree := rootNode.toDomain()

	return &tree, nil
}

// downlineSize counts every user below userID, without a depth limit.
func (r *referral) downlineSize(ctx context.Context, userID domain.UserID) (int, error) {
	visited := map[domain.UserID]bool{userID: true}
	frontier := []domain.UserID{userID}
	total := 0
	for len(frontier) > 0 {
		children, err := r.storage.UsersByReferrers(ctx, frontier...)
		if err != nil {
			return 0, fmt.Errorf("could not get referrals: %w", err)
		}

		frontier = frontier[:0]
		for _, c := range children {
			if visited[c.ID] {
				continue
			}
			visited[c.ID] = true
			frontier = append(frontier, c.ID)
			total++
		}
	}

	return total, nil
}

func (r *referral) Link(ctx context.Context, userID domain.UserID, code string) (*domain.User, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var linked *domain.User
	err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		// two users linking to each other would both pass the upline walk
		// under READ COMMITTED
		if err := tx.LockReferrals(ctx); err != nil {
			return fmt.Errorf("could not lock referrals: %w", err)
		}

		user, err := r.user(ctx, tx, userID)
		if err != nil {
			return err
		}
		if user.ReferrerID != nil {
			return serrors.With(serrors.ErrConflict, "referrer already set")
		}

		referrer, err := tx.UserByReferralCode(ctx, code)
		if err != nil {
			return fmt.Errorf("could not look up referral code: %w", err)
		}
		if referrer == nil {
			return serrors.With(serrors.ErrNotFound, "referral code not found")
		}
		if referrer.ID == user.ID {
			return serrors.With(serrors.ErrBadRequest, "cannot use your own referral code")
		}

		// linking to a member of the user's own downline would close a cycle
		seen := map[domain.UserID]bool{referrer.ID: true}
		for cur := referrer; cur.ReferrerID != nil; {
			if *cur.ReferrerID == user.ID {
				return serrors.With(serrors.ErrBadRequest, "referral would create a cycle")
			}
			if seen[*cur.ReferrerID] {
				break
			}
			seen[*cur.ReferrerID] = true

			if cur, err = r.user(ctx, tx, *cur.ReferrerID); err != nil {
				return err
			}
		}

		ok, err := tx.SetReferrer(ctx, user.ID, referrer.ID)
		if err != nil {
			return fmt.Errorf("could not set referrer: %w", err)
		}
		if !ok {
			return serrors.With(serrors.ErrConflict, "referrer already set")
		}

		user.ReferrerID = &referrer.ID
		linked = user

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not link referral: %w", err)
	}

	return linked, nil
}

func (r *referral) Stats(ctx context.Context, userID domain.UserID) (*domain.ReferralStats, error) {
	if _, err := r.user(ctx, r.storage, userID); err != nil {
		return nil, err
	}

	direct, err := r.storage.CountReferrals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not count referrals: %w", err)
	}

	downline, err := r.downlineSize(ctx, userID)
	if err != nil {
		return nil, err
	}

	earnings, err := r.storage.UserEarnings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get earnings: %w", err)
	}

	return &domain.ReferralStats{
		DirectReferrals: direct,
		TotalDownline:   downline,
		TotalEarnings:   earnings.Total,
	}, nil
}
