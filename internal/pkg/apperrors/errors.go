package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Enrollment and grading errors.
// These report a broken caller contract (enrolling past capacity, grading
// someone who was never enrolled). They are never retried.
var (
	ErrCourseFull         = errors.New("course is full")
	ErrCapacityExceeded   = errors.New("too many grades for roll book entry")
	ErrStudentNotEnrolled = errors.New("student is not enrolled in course")
	ErrNotEnrolled        = errors.New("cannot drop a course the student is not enrolled in")
)

// Registry lookup errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrProfessorNotFound   = errors.New("professor not found")
	ErrStaffMemberNotFound = errors.New("staff member not found")
)

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// IsContractViolation reports whether err is one of the enrollment or
// grading errors that signal a caller bug rather than a normal miss.
func IsContractViolation(err error) bool {
	return Is(err, ErrCourseFull, ErrCapacityExceeded, ErrStudentNotEnrolled, ErrNotEnrolled)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
