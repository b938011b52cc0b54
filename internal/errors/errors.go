package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrBadCredentials is returned when username or password is wrong.
	// The two cases are intentionally not distinguished.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrEmailNotVerified is returned when credentials match but the
	// account email has not been confirmed yet.
	ErrEmailNotVerified = errors.New("email address is not verified")
	// ErrPrincipalNotFound is returned when no user exists for a username.
	ErrPrincipalNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when username or email is taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")
	// ErrRoleNotFound is returned when a referenced role does not exist.
	ErrRoleNotFound = errors.New("role not found")
	// ErrRoleAlreadyExists is returned when a role name is taken.
	ErrRoleAlreadyExists = errors.New("role already exists")
	// ErrNoSuchContentItem is returned when neither a post nor a message
	// exists for the given item id.
	ErrNoSuchContentItem = errors.New("no post or message found for item id")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")
	// ErrMessageAccessDenied is returned when the caller is neither sender
	// nor recipient of the message.
	ErrMessageAccessDenied = errors.New("caller is neither sender nor recipient of the message")
	// ErrCommentLinkFailed is returned when a comment was persisted but
	// could not be linked into its parent item's comment set.
	ErrCommentLinkFailed = errors.New("comment created but could not be linked to its item")
	// ErrInvalidConfirmationToken is returned for unknown email confirmation tokens.
	ErrInvalidConfirmationToken = errors.New("invalid confirmation token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrBadCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "BAD_CREDENTIALS")
	case errors.Is(err, ErrEmailNotVerified):
		return NewHTTPError(http.StatusForbidden, err.Error(), "EMAIL_NOT_VERIFIED")
	case errors.Is(err, ErrMessageAccessDenied):
		return NewHTTPError(http.StatusForbidden, err.Error(), "MESSAGE_ACCESS_DENIED")
	case errors.Is(err, ErrPrincipalNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNoSuchContentItem):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case errors.Is(err, ErrMessageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MESSAGE_NOT_FOUND")
	case errors.Is(err, ErrRoleNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROLE_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrRoleAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "ROLE_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidConfirmationToken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CONFIRMATION_TOKEN")
	case errors.Is(err, ErrCommentLinkFailed):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "COMMENT_LINK_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
