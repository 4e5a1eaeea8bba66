package item

import "fmt"

// NotFoundError reports a lookup for an ID that is not in the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("work item %s not found", e.ID)
}

// DuplicateIDError reports an insert with an ID that already exists.
// Unreachable under correct allocation; it guards the store invariant.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("work item %s already exists", e.ID)
}

// ValidationError reports a rejected field value.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownFieldError reports an edit targeting a field that cannot be edited.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q (editable: title, priority, type, description, author, assignee)", e.Field)
}

// CorruptRecordError reports an interchange line that failed to decode.
// Line is 1-based.
type CorruptRecordError struct {
	Line int
	Err  error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt record at line %d: %v", e.Line, e.Err)
}

func (e *CorruptRecordError) Unwrap() error {
	return e.Err
}
