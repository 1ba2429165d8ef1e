package network

import (
	"context"
	"sync"
)

// MockPriceOracle is a test double for PriceOracle.
type MockPriceOracle struct {
	PoolReservesFn func(ctx context.Context) (*Reserves, error)
}

func (m *MockPriceOracle) PoolReserves(ctx context.Context) (*Reserves, error) {
	return m.PoolReservesFn(ctx)
}

// MockTokenLedger is a test double for TokenLedger. When ExecuteFn is nil the
// instructions are recorded and accepted.
type MockTokenLedger struct {
	ExecuteFn func(ctx context.Context, contract string, instructions []Instruction) ([]string, error)

	mu       sync.Mutex
	executed []Instruction
}

func (m *MockTokenLedger) Execute(ctx context.Context, contract string, instructions []Instruction) ([]string, error) {
	if m.ExecuteFn != nil {
		return m.ExecuteFn(ctx, contract, instructions)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	receipts := make([]string, len(instructions))
	for i := range instructions {
		receipts[i] = string(instructions[i].Kind)
	}
	m.executed = append(m.executed, instructions...)
	return receipts, nil
}

// Executed returns every instruction recorded so far.
func (m *MockTokenLedger) Executed() []Instruction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Instruction(nil), m.executed...)
}
