package clubstaking

// sweepMaturedBonds drops every bond whose cooldown has elapsed and returns
// how many were dropped. Their value is settled outside the ledger.
func (e *engine) sweepMaturedBonds() (int, error) {
	updated := make(map[string][]BondRecord)
	var order []string
	dropped := 0

	err := e.t.scanBonds(func(club string, list []BondRecord) error {
		kept := list[:0]
		for _, b := range list {
			if b.Matured(e.now) {
				dropped++
				continue
			}
			kept = append(kept, b)
		}
		if len(kept) != len(list) {
			order = append(order, club)
			updated[club] = kept
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Writes happen after the scan; bbolt cursors must not see their own bucket change.
	for _, club := range order {
		if err := e.t.putBonds(club, updated[club]); err != nil {
			return 0, err
		}
	}
	return dropped, nil
}
