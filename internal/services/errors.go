package services

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// RequestError is a rejection the handlers can translate directly into an
// HTTP status plus a single msg field.
type RequestError struct {
	Status int
	Msg    string
}

func (e *RequestError) Error() string { return e.Msg }

func BadRequest() *RequestError {
	return &RequestError{Status: http.StatusBadRequest, Msg: "Bad request"}
}

func NotFound(msg string) *RequestError {
	return &RequestError{Status: http.StatusNotFound, Msg: msg}
}

func Conflict(msg string) *RequestError {
	return &RequestError{Status: http.StatusConflict, Msg: msg}
}

// Normalize reclassifies store-level failures at the boundary. Constraint
// violations map onto the request taxonomy; anything unrecognized stays a
// 500 so internals never leak into the response body.
func Normalize(err error) *RequestError {
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		return reqErr
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("Not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("Already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NotFound("Not found")
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, gorm.ErrInvalidValue):
		return BadRequest()
	default:
		return &RequestError{Status: http.StatusInternalServerError, Msg: "Internal server error"}
	}
}
