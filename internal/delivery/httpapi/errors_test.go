package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &domain.ValidationError{Field: "phone", Reason: "required"}, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"user not found", fmt.Errorf("lookup: %w", domain.ErrUserNotFound), http.StatusNotFound},
		{"location not found", domain.ErrLocationNotFound, http.StatusNotFound},
		{"status conflict", domain.ErrStatusConflict, http.StatusConflict},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"code space exhausted", domain.ErrCodeSpaceExhausted, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestWriteError_DuplicateReceiptExposesOwner(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeError(c, &domain.DuplicateReceiptError{ImageHash: "abc", OrderID: 15})
	require.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Error         string `json:"error"`
		OwningOrderID int64  `json:"owning_order_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "duplicate receipt", body.Error)
	assert.Equal(t, int64(15), body.OwningOrderID)
}

func TestWriteError_InternalDetailsAreHidden(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeError(c, errors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
