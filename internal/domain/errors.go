package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the failure modes of core operations.
type ErrorCode string

const (
	// ErrValidation marks a missing or invalid required field.
	ErrValidation ErrorCode = "validation"
	// ErrParse marks date or text that could not be interpreted.
	ErrParse ErrorCode = "parse"
	// ErrNoCourses marks an operation that requires at least one course.
	ErrNoCourses ErrorCode = "no_courses"
	// ErrNoPlan marks an operation that requires a previously built plan.
	ErrNoPlan ErrorCode = "no_plan"
	// ErrScheduling marks unmet preconditions for building a plan.
	ErrScheduling ErrorCode = "scheduling"
)

// Error is the failure result returned by core operations. It always carries
// a human-readable reason; the caller decides how to react.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ValidationErrorf builds a validation Error.
func ValidationErrorf(format string, args ...any) *Error {
	return &Error{Code: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// ParseErrorf builds a parse Error.
func ParseErrorf(format string, args ...any) *Error {
	return &Error{Code: ErrParse, Message: fmt.Sprintf(format, args...)}
}

// NoCoursesErrorf builds a no-courses Error.
func NoCoursesErrorf(format string, args ...any) *Error {
	return &Error{Code: ErrNoCourses, Message: fmt.Sprintf(format, args...)}
}

// NoPlanErrorf builds a no-plan Error.
func NoPlanErrorf(format string, args ...any) *Error {
	return &Error{Code: ErrNoPlan, Message: fmt.Sprintf(format, args...)}
}

// SchedulingErrorf builds a scheduling Error.
func SchedulingErrorf(format string, args ...any) *Error {
	return &Error{Code: ErrScheduling, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the ErrorCode from err, or "" when err is not a core Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err is a core Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
