package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type AlreadyExistsError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// InvalidRecordError means a stored transaction failed structural validation
// (bad kind, non-finite or negative amount, unparseable date). Aggregation
// fails loudly with this error rather than silently excluding the record,
// since silent exclusion would produce a plausible-looking but wrong balance.
type InvalidRecordError struct {
	ErrorMessage
	TransactionID string
}

type DatabaseError struct {
	ErrorMessage
	Operation string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInvalidRecordError(transactionID, reason string) *InvalidRecordError {
	return &InvalidRecordError{
		ErrorMessage:  ErrorMessage{Message: fmt.Sprintf("invalid transaction %s: %s", transactionID, reason)},
		TransactionID: transactionID,
	}
}

func NewDatabaseError(operation, message string) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
	}
}
