package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNormalizeRequestErrorsPassThrough(t *testing.T) {
	reqErr := Normalize(NotFound("Article does not exist"))
	assert.Equal(t, http.StatusNotFound, reqErr.Status)
	assert.Equal(t, "Article does not exist", reqErr.Msg)

	wrapped := fmt.Errorf("looking up article: %w", Conflict("Username already exists"))
	reqErr = Normalize(wrapped)
	assert.Equal(t, http.StatusConflict, reqErr.Status)
}

func TestNormalizeStoreErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{gorm.ErrDuplicatedKey, http.StatusConflict},
		{gorm.ErrForeignKeyViolated, http.StatusNotFound},
		{gorm.ErrInvalidData, http.StatusBadRequest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, Normalize(tc.err).Status, tc.err)
	}
}

func TestNormalizeUnknownErrorsStayInternal(t *testing.T) {
	reqErr := Normalize(errors.New("connection refused: 10.0.0.3:5432"))
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Equal(t, "Internal server error", reqErr.Msg, "internals never leak into the msg")
}
