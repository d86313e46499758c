package domain

// TreeNode is one user in a referral tree together with the users it
// referred. Level is 0 for the root.
type TreeNode struct {
	PublicProfile

	Level    int        `json:"level"`
	Children []TreeNode `json:"children"`
}

// Size returns the number of nodes below n.
func (n *TreeNode) Size() int {
	total := 0
	for i := range n.Children {
		total += 1 + n.Children[i].Size()
	}

	return total
}

// ReferralStats summarises a user's downline and what it earned them.
type ReferralStats struct {
	DirectReferrals int    `json:"directReferrals"`
	TotalDownline   int    `json:"totalDownline"`
	TotalEarnings   Amount `json:"totalEarnings"`
}

// CommissionLevel is the share of a deposit paid to the Level-th referrer
// above the depositor.
type CommissionLevel struct {
	Level   int         `json:"level"`
	RateBps BasisPoints `json:"rateBps"`
}
