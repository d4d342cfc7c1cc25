package loan

import "errors"

var (
	ErrLoanNotFound         = errors.New("loan not found")
	ErrRepaymentExceedsDebt = errors.New("repayment exceeds the account balance")
)
