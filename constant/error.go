package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorized
	ErrForbidden
	ErrRoleMismatch
	ErrNotRegistered
	ErrUserNotFound
	ErrInvalidOTP
	ErrMalformedItems
	ErrUpstream
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrUnauthorized:   "auth token must be provided in headers",
	ErrForbidden:      "invalid auth token",
	ErrRoleMismatch:   "phone number is already registered with a different role",
	ErrNotRegistered:  "phone number not registered",
	ErrUserNotFound:   "user not found",
	ErrInvalidOTP:     "invalid or expired OTP",
	ErrMalformedItems: "invalid scrapItems format",
	ErrUpstream:       "failed to send message",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrUnauthorized:   http.StatusUnauthorized,
	ErrForbidden:      http.StatusForbidden,
	ErrRoleMismatch:   http.StatusForbidden,
	ErrNotRegistered:  http.StatusNotFound,
	ErrUserNotFound:   http.StatusNotFound,
	ErrInvalidOTP:     http.StatusBadRequest,
	ErrMalformedItems: http.StatusBadRequest,
	ErrUpstream:       http.StatusBadGateway,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrUnauthorized:   "0004",
	ErrForbidden:      "0005",
	ErrRoleMismatch:   "0006",
	ErrNotRegistered:  "0007",
	ErrUserNotFound:   "0008",
	ErrInvalidOTP:     "0009",
	ErrMalformedItems: "0010",
	ErrUpstream:       "0011",
}
