package network

import (
	"context"
	"fmt"
)

// RPCTokenLedger submits token instructions to a ledger node over JSON-RPC.
// Each instruction is sent as one "execute" call; the first failure stops
// the batch and reports how many instructions were accepted.
type RPCTokenLedger struct {
	rpc *RPCClient
}

// Compile-time interface check.
var _ TokenLedger = (*RPCTokenLedger)(nil)

// NewRPCTokenLedger creates a token ledger client backed by the given RPC client.
func NewRPCTokenLedger(rpc *RPCClient) *RPCTokenLedger {
	return &RPCTokenLedger{rpc: rpc}
}

// Execute implements TokenLedger.
func (l *RPCTokenLedger) Execute(ctx context.Context, contract string, instructions []Instruction) ([]string, error) {
	for _, ins := range instructions {
		if err := ins.Validate(); err != nil {
			return nil, err
		}
	}

	receipts := make([]string, 0, len(instructions))
	for i, ins := range instructions {
		var receipt string
		if err := l.rpc.Call(ctx, "execute", []interface{}{contract, ins}, &receipt); err != nil {
			return receipts, fmt.Errorf("%w: instruction %d (%s): %w", ErrInstructionRejected, i, ins.Kind, err)
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}
