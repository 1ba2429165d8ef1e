package revshare

// Entry is one participant's weight in a pro-rata split.
type Entry struct {
	Address string // Ledger address of the participant
	Share   uint64 // Weight, typically the participant's staked amount
}

// Distribution is a single payout produced by a split.
type Distribution struct {
	Address string
	Amount  uint64
}

// Total sums the amounts of a distribution list. It reports false on overflow.
func Total(distributions []Distribution) (uint64, bool) {
	var sum uint64
	for _, d := range distributions {
		next := sum + d.Amount
		if next < sum {
			return 0, false
		}
		sum = next
	}
	return sum, true
}
