package contract

import "errors"

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrContractExists   = errors.New("employee already has a contract")
)
