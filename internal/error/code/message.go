package code

// Error code to message mapping.
var codeMessageMap = map[int]string{
	// Generic
	ErrSuccess:          "success",
	ErrUnknown:          "unknown error",
	ErrBind:             "failed to bind request parameters",
	ErrValidation:       "request validation failed",
	ErrTokenInvalid:     "invalid authentication token",
	ErrPermissionDenied: "insufficient permissions",
	ErrTooManyRequests:  "too many requests",

	// Member
	ErrMemberNotFound:     "member not found",
	ErrMemberAlreadyExist: "a member with this code id already exists",

	// User
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "incorrect username or password",

	// Stats
	ErrStatsQuery: "failed to compute statistics",

	// Database
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// Error code to HTTP status mapping.
var codeStatusMap = map[int]int{
	// Generic
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// Member
	ErrMemberNotFound:     StatusNotFound,
	ErrMemberAlreadyExist: StatusBadRequest,

	// User
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Stats
	ErrStatsQuery: StatusInternalServerError,

	// Database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
