package network

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// RPCPriceOracle reads pool reserves from an AMM pair exposed over JSON-RPC.
//
// The "pool" method is expected to return
//
//	{"assets":[{"info":{"native_token":{"denom":"uusd"}},"amount":"1000"},
//	           {"info":{"token":{"contract_addr":"..."}},"amount":"2000"}]}
//
// Native assets form the quote side; the cw20-style token is the token side.
type RPCPriceOracle struct {
	rpc *RPCClient
}

// Compile-time interface check.
var _ PriceOracle = (*RPCPriceOracle)(nil)

// NewRPCPriceOracle creates a price oracle backed by the given RPC client.
func NewRPCPriceOracle(rpc *RPCClient) *RPCPriceOracle {
	return &RPCPriceOracle{rpc: rpc}
}

// PoolReserves implements PriceOracle.
func (o *RPCPriceOracle) PoolReserves(ctx context.Context) (*Reserves, error) {
	res, err := o.rpc.CallResult(ctx, "pool", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}
	return parseReserves(res)
}

func parseReserves(res gjson.Result) (*Reserves, error) {
	assets := res.Get("assets")
	if !assets.IsArray() {
		return nil, fmt.Errorf("%w: pool response has no assets", ErrInvalidResponse)
	}

	var out Reserves
	var sawQuote, sawToken bool
	var parseErr error
	assets.ForEach(func(_, asset gjson.Result) bool {
		amount, err := strconv.ParseUint(asset.Get("amount").String(), 10, 64)
		if err != nil {
			parseErr = fmt.Errorf("%w: asset amount %q: %w", ErrInvalidResponse, asset.Get("amount").Raw, err)
			return false
		}
		if asset.Get("info.native_token").Exists() {
			out.Quote = amount
			sawQuote = true
		} else {
			out.Token = amount
			sawToken = true
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if !sawQuote || !sawToken {
		return nil, fmt.Errorf("%w: pool must list a native and a token asset", ErrInvalidResponse)
	}
	return &out, nil
}
