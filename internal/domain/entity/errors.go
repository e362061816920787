package entity

import "errors"

var (
	// ErrChainNotFound is returned by lookups for chains that are not in the table.
	ErrChainNotFound = errors.New("chain not found")
	// ErrDuplicateRoutePrefix means two chains share a route prefix.
	ErrDuplicateRoutePrefix = errors.New("duplicate route prefix")
	// ErrDuplicateChainID means two chains share a numeric id.
	ErrDuplicateChainID = errors.New("duplicate chain id")
	// ErrMissingField means a required field is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidAddress means a contract address is not a 0x-prefixed 20 byte hex string.
	ErrInvalidAddress = errors.New("invalid contract address")
	// ErrDefaultChain means the table does not have exactly one enabled default entry.
	ErrDefaultChain = errors.New("invalid default chain")
)
