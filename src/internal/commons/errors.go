package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")

// ErrAccountConflict: the account number is already bound to a different
// customer name.
var ErrAccountConflict = errors.New("Account number already exists with a different customer name")

// ErrDuplicateDeposit: a deposit with identical amount, rate and term was
// already registered today for the account.
var ErrDuplicateDeposit = errors.New("A deposit with identical parameters has already been registered today for this account")
