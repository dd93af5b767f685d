package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrInvalidAddress will throw if an address is not valid base58
	ErrInvalidAddress = errors.New("Invalid address")
	// ErrInvalidPrice will throw if a listing price is zero
	ErrInvalidPrice = errors.New("invalid price")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	// ErrUnsupportedScheme will throw for metadata uris outside http(s)
	ErrUnsupportedScheme = errors.New("unsupported uri scheme")

	// errors rejected by the ledger, surfaced verbatim without retry
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrUnauthorizedSeller = errors.New("unauthorized seller")
	ErrListingClosed      = errors.New("listing account closed")
	ErrListingNotFound    = errors.New("listing account not found")

	// ErrRPCFailure wraps transient transport failures, caller may resubmit manually
	ErrRPCFailure = errors.New("rpc failure")

	// ErrOperationInFlight will throw if another pipeline already owns the mint
	ErrOperationInFlight = errors.New("operation already in flight for mint")
)
