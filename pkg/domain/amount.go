package domain

// Amount is a monetary value in minor units of its currency.
type Amount int64

// BasisPoints is a rate in hundredths of a percent; 10000 is 100%.
type BasisPoints int64

// MaxBasisPoints is the rate representing the whole amount.
const MaxBasisPoints BasisPoints = 10_000

// MaxDepositAmount bounds a single deposit. Keep in sync with the lte tag of
// deposit.CreateInput.
const MaxDepositAmount Amount = 1_000_000_000_000_000_000

// Share returns a*rate/10000 rounded toward zero. rate is clamped to
// [0, MaxBasisPoints], so the share never exceeds a and cannot overflow.
func (a Amount) Share(rate BasisPoints) Amount {
	rate = min(max(rate, 0), MaxBasisPoints)

	// a = q*10000 + r keeps both products within int64
	q, r := int64(a)/int64(MaxBasisPoints), int64(a)%int64(MaxBasisPoints)

	return Amount(q*int64(rate) + r*int64(rate)/int64(MaxBasisPoints))
}
