package lottery

import "errors"

var (
	// ErrMalformedAccountData is returned when account data is shorter than the record's fixed width.
	ErrMalformedAccountData = errors.New("malformed account data")

	// ErrNoValidAddress is returned when no bump seed yields an off-curve program address.
	ErrNoValidAddress = errors.New("no valid program address")

	// ErrAccountNotFound is returned when the lottery state account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidArgument is returned when a caller-supplied value is out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSignerUnavailable is returned when no wallet is configured or it refused to connect.
	ErrSignerUnavailable = errors.New("signer unavailable")

	// ErrSubmissionRejected is returned when the ledger or the signer rejects a transaction.
	ErrSubmissionRejected = errors.New("submission rejected")

	// ErrConfirmationTimeout is returned when a submitted transaction is not confirmed in time.
	ErrConfirmationTimeout = errors.New("confirmation timeout")

	// ErrNoProgramID is returned when a transaction is submitted without a configured program ID.
	ErrNoProgramID = errors.New("no program ID configured")
)
