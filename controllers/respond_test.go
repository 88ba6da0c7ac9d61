package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/MrShtrahman/mongo-M220-project/data_access"
	"github.com/MrShtrahman/mongo-M220-project/services"
)

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"password too short", services.ErrPasswordTooShort, http.StatusBadRequest},
		{"name too short", services.ErrNameTooShort, http.StatusBadRequest},
		{"empty facet filter", data_access.ErrInvalidFilter, http.StatusBadRequest},
		{"oversized aggregation", data_access.ErrResultTooLarge, http.StatusBadRequest},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"bad token", services.ErrInvalidToken, http.StatusUnauthorized},
		{"not the comment author", data_access.ErrNotOwner, http.StatusUnauthorized},
		{"missing document", data_access.ErrNotFound, http.StatusNotFound},
		{"duplicate email", data_access.ErrDuplicateEmail, http.StatusConflict},
		{"anything else", errors.New("cursor exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestRespondError_WrappedErrorsStillMap(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	wrapped := errors.Join(errors.New("pipeline stage overflow"), data_access.ErrResultTooLarge)
	respondError(c, wrapped)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondError_InternalHidesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, errors.New("connection string leaked mongodb://admin:hunter2@db"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
}
