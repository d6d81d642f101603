package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietscan/internal/domain"
	"vietscan/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing file", domain.ErrMissingFile, http.StatusBadRequest, "image file is required"},
		{"unsupported type", domain.ErrUnsupportedFileType, http.StatusBadRequest, "unsupported file type; allowed: jpg, jpeg, png"},
		{"too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "file exceeds maximum allowed size of 5MB"},
		{"invalid document type", domain.ErrInvalidDocumentType, http.StatusBadRequest, "invalid document type"},
		{"unknown", errors.New("disk full"), http.StatusInternalServerError, "an internal error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestHealthLiveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", handler.NewHealthHandler().Liveness)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
