package clubstaking

import (
	"time"

	"github.com/furysport/furycontracts-sub000/network"
	"github.com/furysport/furycontracts-sub000/storage"
)

// engine runs ledger operations against one storage transaction at a fixed
// instant. Nothing it writes is visible until the transaction commits.
type engine struct {
	params Params
	t      *tables
	now    time.Time
}

func newEngine(params Params, tx storage.Tx, now time.Time) *engine {
	return &engine{params: params, t: &tables{tx: tx}, now: now}
}

func (e *engine) requireOwnership(club string) (*ClubOwnership, error) {
	if club == "" {
		return nil, ErrEmptyClubName
	}
	o, err := e.t.ownership(club)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrInvalidClub
	}
	return o, nil
}

func (e *engine) transfer(recipient string, amount uint64, memo string) network.Instruction {
	return network.Instruction{Kind: network.KindTransfer, Recipient: recipient, Amount: amount, Memo: memo}
}
