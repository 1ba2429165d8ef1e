package network

import (
	"context"
	"fmt"
)

// PriceOracle quotes the liquidity pool used to convert token amounts into
// fee-denomination amounts.
type PriceOracle interface {
	// PoolReserves returns the current reserves of the token/quote pool.
	PoolReserves(ctx context.Context) (*Reserves, error)
}

// TokenLedger is the external fungible-token ledger that actually moves balances.
type TokenLedger interface {
	// Execute submits instructions against the token contract in order and
	// returns one receipt per accepted instruction.
	Execute(ctx context.Context, contract string, instructions []Instruction) ([]string, error)
}

// Reserves holds the two sides of the oracle's liquidity pool.
type Reserves struct {
	Quote uint64 `json:"quote"` // native fee-denomination side
	Token uint64 `json:"token"` // staking token side
}

// InstructionKind names a token ledger operation.
type InstructionKind string

const (
	// KindTransfer moves funds held by the ledger contract to Recipient.
	KindTransfer InstructionKind = "transfer"
	// KindTransferFrom moves funds from From to Recipient under an allowance.
	KindTransferFrom InstructionKind = "transfer_from"
	// KindBurn destroys Amount from the ledger contract's balance.
	KindBurn InstructionKind = "burn"
	// KindForwardFees forwards fee-denomination funds attached to a call to Recipient.
	KindForwardFees InstructionKind = "forward_fees"
)

// Instruction is one balance movement requested from the token ledger.
type Instruction struct {
	Kind      InstructionKind `json:"kind"`
	From      string          `json:"from,omitempty"`
	Recipient string          `json:"recipient,omitempty"`
	Amount    uint64          `json:"amount"`
	Memo      string          `json:"memo,omitempty"`
}

// Validate checks the fields each kind requires.
func (i Instruction) Validate() error {
	if i.Amount == 0 {
		return fmt.Errorf("%w: %s with zero amount", ErrInvalidInstruction, i.Kind)
	}
	switch i.Kind {
	case KindTransfer, KindForwardFees:
		if i.Recipient == "" {
			return fmt.Errorf("%w: %s without recipient", ErrInvalidInstruction, i.Kind)
		}
	case KindTransferFrom:
		if i.From == "" || i.Recipient == "" {
			return fmt.Errorf("%w: transfer_from needs from and recipient", ErrInvalidInstruction)
		}
	case KindBurn:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInstruction, i.Kind)
	}
	return nil
}
