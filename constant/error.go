package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrEmailExists
	ErrInvalidCredentials
	ErrInvalidID
	ErrInvalidToken
	ErrAlreadyVerified
	ErrNoFile
	ErrPayloadTooLarge
	ErrUnsupportedImage
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "Internal Server Error",
	ErrNotFound:           "Not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "Not authorized",
	ErrEmailExists:        "Email is already in use",
	ErrInvalidCredentials: "Email or password is wrong",
	ErrInvalidID:          "invalid id",
	ErrInvalidToken:       "User not found",
	ErrAlreadyVerified:    "Verification has already been passed",
	ErrNoFile:             "No file uploaded",
	ErrPayloadTooLarge:    "payload too large",
	ErrUnsupportedImage:   "unsupported image format",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrEmailExists:        http.StatusConflict,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrInvalidID:          http.StatusBadRequest,
	ErrInvalidToken:       http.StatusNotFound,
	ErrAlreadyVerified:    http.StatusBadRequest,
	ErrNoFile:             http.StatusBadRequest,
	ErrPayloadTooLarge:    http.StatusBadRequest,
	ErrUnsupportedImage:   http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrEmailExists:        "0005",
	ErrInvalidCredentials: "0006",
	ErrInvalidID:          "0007",
	ErrInvalidToken:       "0008",
	ErrAlreadyVerified:    "0009",
	ErrNoFile:             "0010",
	ErrPayloadTooLarge:    "0011",
	ErrUnsupportedImage:   "0012",
}
