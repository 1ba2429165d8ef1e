package network

import "errors"

var (
	// ErrConnectionFailed indicates the client could not reach the remote service.
	ErrConnectionFailed = errors.New("network: connection failed")

	// ErrAuthFailed indicates the remote service rejected the RPC credentials.
	ErrAuthFailed = errors.New("network: authentication failed")

	// ErrInvalidResponse indicates the service returned a malformed or unexpected response.
	ErrInvalidResponse = errors.New("network: invalid response")

	// ErrOracleUnavailable indicates the price oracle could not provide pool reserves.
	ErrOracleUnavailable = errors.New("network: price oracle unavailable")

	// ErrInstructionRejected indicates the token ledger refused an instruction.
	ErrInstructionRejected = errors.New("network: instruction rejected")

	// ErrInvalidInstruction indicates an instruction is malformed before it is sent.
	ErrInvalidInstruction = errors.New("network: invalid instruction")

	// ErrMissingURL indicates an endpoint has no URL configured.
	ErrMissingURL = errors.New("network: endpoint URL not configured")
)
