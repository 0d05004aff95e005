package code

// HTTP status codes used by the error code mappings.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusCreated - 201: resource created.
	StatusCreated = 201
	// StatusNoContent - 204: no response body.
	StatusNoContent = 204
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: authentication required.
	StatusUnauthorized = 401
	// StatusForbidden - 403: insufficient permissions.
	StatusForbidden = 403
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: failed to bind request parameters.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: caller lacks the required role.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Member error codes (101xxx).
const (
	// ErrMemberNotFound - 404: member does not exist.
	ErrMemberNotFound int = iota + 101000
	// ErrMemberAlreadyExist - 400: a member with this code id already exists.
	ErrMemberAlreadyExist
)

// User error codes (102xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 102000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect password.
	ErrUserPasswordIncorrect
)

// Stats error codes (103xxx).
const (
	// ErrStatsQuery - 500: statistics query failed.
	ErrStatsQuery int = iota + 103000
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
