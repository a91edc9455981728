package apperrors

import "errors"

// ErrNotFound indicates that a requested job, request or account does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrInsufficientFunds indicates that a spend exceeds the account's balance
// or available shares.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInsufficientTreasury indicates that a reservation or payout exceeds the
// available or actual treasury amount.
var ErrInsufficientTreasury = errors.New("insufficient treasury")

// ErrNegativeTreasury indicates that an adjustment would drive the treasury
// below zero.
var ErrNegativeTreasury = errors.New("treasury cannot go negative")

// ErrInvalidStateTransition indicates that an operation is not allowed from
// the entity's current state.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// ErrClaimLost indicates that a concurrent caller claimed the job first.
// It is a normal outcome, not a fault.
var ErrClaimLost = errors.New("claimed by someone else first")
