package errors

import "fmt"

// ErrNotFound indicates a requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates malformed or incomplete client input
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ErrPaymentRejected indicates the payment gateway reported a non-succeeded
// state, or could not be reached at all
type ErrPaymentRejected struct {
	PaymentRef string
	Status     string
}

func (e *ErrPaymentRejected) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("payment %s could not be verified", e.PaymentRef)
	}
	return fmt.Sprintf("payment %s not completed: status %s", e.PaymentRef, e.Status)
}

// ErrInvalidStateTransition indicates an illegal order status change
type ErrInvalidStateTransition struct {
	From interface{}
	To   interface{}
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %v to %v", e.From, e.To)
}

// ErrUnauthorized indicates a missing or invalid API key
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}
