package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this leader"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AuthorizationError represents an error when the caller lacks the required
// relationship to the resource (not the creator, not a relationship member,
// not the owner)
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// BadRequestError is a domain rule violation with a stable machine-readable
// code. The request layer maps these to 400 responses; the code is the
// contract, the message is for humans.
type BadRequestError struct {
	Code    string
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for BadRequestError; two errors match
// when their codes match, regardless of message detail.
func (e *BadRequestError) Is(target error) bool {
	t, ok := target.(*BadRequestError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrRelationshipNotFound = &NotFoundError{Entity: "relationship"}
	ErrMeetingNotFound      = &NotFoundError{Entity: "meeting"}
	ErrTopicNotFound        = &NotFoundError{Entity: "topic"}
	ErrMeetingTopicNotFound = &NotFoundError{Entity: "meeting topic"}
	ErrMeetingNoteNotFound  = &NotFoundError{Entity: "meeting note"}
	ErrColumnNotFound       = &NotFoundError{Entity: "board column"}
)

// Already Exists Errors
var (
	ErrColumnExists = &AlreadyExistsError{Entity: "board column", Context: "with this code for this leader"}
	ErrUserExists   = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Domain Rule Errors
var (
	ErrMeetingInPast = &BadRequestError{
		Code:    "MEETING_IN_PAST",
		Message: "meeting must be scheduled at least 5 minutes from now",
	}
	ErrMeetingConflict = &BadRequestError{
		Code:    "MEETING_CONFLICT",
		Message: "meeting conflicts with an existing meeting",
	}
	ErrMeetingConflicts = &BadRequestError{
		Code:    "MEETING_CONFLICTS",
		Message: "one or more meetings in the series conflict with existing meetings",
	}
	ErrMeetingHasTopics = &BadRequestError{
		Code:    "MEETING_HAS_TOPICS",
		Message: "meeting has topics attached and cannot be deleted",
	}
	ErrMeetingNotScheduled = &BadRequestError{
		Code:    "MEETING_NOT_SCHEDULED",
		Message: "only scheduled meetings can be deleted",
	}
	ErrMeetingCompleted = &BadRequestError{
		Code:    "MEETING_COMPLETED",
		Message: "meeting is completed and can no longer be modified",
	}
	ErrTopicAlreadyScheduled = &BadRequestError{
		Code:    "TOPIC_ALREADY_SCHEDULED",
		Message: "topic is already scheduled on this meeting",
	}
	ErrTopicNotDeletable = &BadRequestError{
		Code:    "TOPIC_NOT_DELETABLE",
		Message: "only backlog topics without meeting attachments can be deleted",
	}
	ErrTopicScheduled = &BadRequestError{
		Code:    "TOPIC_SCHEDULED",
		Message: "topic status is driven by meetings and cannot be set directly",
	}
	ErrInvalidLeader = &BadRequestError{
		Code:    "INVALID_LEADER",
		Message: "user is not a leader",
	}
	ErrInvalidIC = &BadRequestError{
		Code:    "INVALID_IC",
		Message: "user is not an individual contributor",
	}
	ErrICAlreadyAssigned = &BadRequestError{
		Code:    "IC_ALREADY_ASSIGNED",
		Message: "individual contributor is already paired with a leader",
	}
)

// ErrInvalidResolution rejects a resolution value outside the accepted set.
// A malformed resolution is structurally invalid input, not a domain rule
// violation, so it carries no BadRequest code.
var ErrInvalidResolution = &ValidationError{Field: "resolution", Message: "must be DONE, NEXT, BACKLOG or ACTION"}

// Authorization Errors
var (
	ErrNotMeetingCreator      = &AuthorizationError{Message: "only the meeting creator may perform this action"}
	ErrNotRelationshipMember  = &AuthorizationError{Message: "caller is not part of this relationship"}
	ErrNotTopicOwner          = &AuthorizationError{Message: "caller does not own this topic"}
	ErrNotMeetingTopicRemover = &AuthorizationError{Message: "only the user who added the topic or the meeting creator may remove it"}
	ErrAdminRequired          = &AuthorizationError{Message: "administrator role required"}
)

// NewMeetingConflictError builds a MEETING_CONFLICT error naming the
// conflicting meeting's IC and start time.
func NewMeetingConflictError(icName, at string) error {
	return &BadRequestError{
		Code:    "MEETING_CONFLICT",
		Message: fmt.Sprintf("conflicts with a meeting with %s at %s", icName, at),
	}
}

// NewMeetingConflictsError builds the consolidated batch error: a header
// line followed by one line per conflicting date.
func NewMeetingConflictsError(lines []string) error {
	msg := "cannot create meeting series, conflicts found:"
	for _, l := range lines {
		msg += "\n" + l
	}
	return &BadRequestError{Code: "MEETING_CONFLICTS", Message: msg}
}

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsBadRequest checks if an error is a BadRequestError
func IsBadRequest(err error) bool {
	var badRequestErr *BadRequestError
	return errors.As(err, &badRequestErr)
}

// BadRequestCode returns the domain code carried by a BadRequestError, or ""
// when err is of another kind.
func BadRequestCode(err error) string {
	var badRequestErr *BadRequestError
	if errors.As(err, &badRequestErr) {
		return badRequestErr.Code
	}
	return ""
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
