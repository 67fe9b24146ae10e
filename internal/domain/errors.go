package domain

import "fmt"

// DataValidationError is returned whenever untrusted input fails to
// deserialize into a valid Product, or when an operation is attempted on an
// entity in an invalid state (e.g. Update without an id). Store-layer errors
// are never wrapped into this type; they propagate as-is.
type DataValidationError struct {
	Message string
}

func (e *DataValidationError) Error() string {
	return e.Message
}

// NewDataValidationError builds a DataValidationError with a formatted message.
func NewDataValidationError(format string, args ...interface{}) *DataValidationError {
	return &DataValidationError{Message: fmt.Sprintf(format, args...)}
}
