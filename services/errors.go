package services

import "errors"

// Sentinel errors for the ledger engine. Controllers map these to HTTP
// status codes with errors.Is; anything else is a store failure (500).
var (
	ErrBatchNotFound       = errors.New("batch not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrBatchFull           = errors.New("batch is already full")
	ErrAlreadyEnrolled     = errors.New("student is already enrolled in this batch")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrAlreadyPaid         = errors.New("installment is already paid")
	ErrBatchHasEnrollments = errors.New("batch still has enrollments")
)

// IsConflict returns true for expected business conflicts (HTTP 400, no mutation)
func IsConflict(err error) bool {
	return errors.Is(err, ErrBatchFull) ||
		errors.Is(err, ErrAlreadyEnrolled) ||
		errors.Is(err, ErrAlreadyPaid) ||
		errors.Is(err, ErrBatchHasEnrollments)
}

// IsNotFound returns true if the error indicates a missing record (HTTP 404)
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBatchNotFound) ||
		errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrEnrollmentNotFound) ||
		errors.Is(err, ErrInstallmentNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}
