package network

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCTokenLedger_Execute(t *testing.T) {
	var got []Instruction
	server := rpcServer(t, func(req rpcRequest) rpcResponse {
		assert.Equal(t, "execute", req.Method)
		require.Len(t, req.Params, 2)
		assert.Equal(t, "fury-token", req.Params[0])

		raw, err := json.Marshal(req.Params[1])
		require.NoError(t, err)
		var ins Instruction
		require.NoError(t, json.Unmarshal(raw, &ins))
		got = append(got, ins)
		return rpcResponse{Result: json.RawMessage(fmt.Sprintf(`"receipt-%d"`, len(got)))}
	})

	ledger := NewRPCTokenLedger(NewRPCClient(RPCConfig{URL: server.URL}))
	instructions := []Instruction{
		{Kind: KindBurn, Amount: 10},
		{Kind: KindTransfer, Recipient: "staker", Amount: 90, Memo: "staking_withdraw"},
	}
	receipts, err := ledger.Execute(context.Background(), "fury-token", instructions)
	require.NoError(t, err)
	assert.Equal(t, []string{"receipt-1", "receipt-2"}, receipts)
	assert.Equal(t, instructions, got)
}

func TestRPCTokenLedger_StopsOnRejection(t *testing.T) {
	calls := 0
	server := rpcServer(t, func(req rpcRequest) rpcResponse {
		calls++
		if calls == 2 {
			return rpcResponse{Error: &rpcError{Code: 1, Message: "balance too low"}}
		}
		return rpcResponse{Result: json.RawMessage(`"ok"`)}
	})

	ledger := NewRPCTokenLedger(NewRPCClient(RPCConfig{URL: server.URL}))
	receipts, err := ledger.Execute(context.Background(), "fury-token", []Instruction{
		{Kind: KindTransfer, Recipient: "a", Amount: 1},
		{Kind: KindTransfer, Recipient: "b", Amount: 1},
		{Kind: KindTransfer, Recipient: "c", Amount: 1},
	})
	assert.ErrorIs(t, err, ErrInstructionRejected)
	assert.Equal(t, []string{"ok"}, receipts)
	assert.Equal(t, 2, calls)
}

func TestRPCTokenLedger_ValidatesBeforeSending(t *testing.T) {
	ledger := NewRPCTokenLedger(NewRPCClient(RPCConfig{URL: "http://localhost:1"}))
	_, err := ledger.Execute(context.Background(), "fury-token", []Instruction{{Kind: KindTransfer, Amount: 1}})
	assert.ErrorIs(t, err, ErrInvalidInstruction)
}

func TestInstructionValidate(t *testing.T) {
	tests := []struct {
		name string
		ins  Instruction
		ok   bool
	}{
		{"transfer", Instruction{Kind: KindTransfer, Recipient: "a", Amount: 1}, true},
		{"burn", Instruction{Kind: KindBurn, Amount: 1}, true},
		{"transfer_from", Instruction{Kind: KindTransferFrom, From: "a", Recipient: "b", Amount: 1}, true},
		{"forward fees", Instruction{Kind: KindForwardFees, Recipient: "fees", Amount: 1}, true},
		{"zero amount", Instruction{Kind: KindBurn}, false},
		{"transfer_from no from", Instruction{Kind: KindTransferFrom, Recipient: "b", Amount: 1}, false},
		{"unknown", Instruction{Kind: "mint", Amount: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ins.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInstruction)
			}
		})
	}
}

func TestMockTokenLedger_Records(t *testing.T) {
	m := &MockTokenLedger{}
	receipts, err := m.Execute(context.Background(), "c", []Instruction{{Kind: KindBurn, Amount: 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"burn"}, receipts)
	assert.Len(t, m.Executed(), 1)
}
