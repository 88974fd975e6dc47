package n8n

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

func TestTriggerReceiptValidation(t *testing.T) {
	var gotPath, gotSecret string
	var gotBody domain.ReceiptValidationRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSecret = r.Header.Get("X-Webhook-Secret")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "shared-secret", 5*time.Second)
	err := client.TriggerReceiptValidation(context.Background(), domain.ReceiptValidationRequest{
		OrderID:        7,
		OrderCode:      "482910",
		ExpectedAmount: 395,
	})

	require.NoError(t, err)
	assert.Equal(t, "/webhook/validate-receipt", gotPath)
	assert.Equal(t, "shared-secret", gotSecret)
	assert.Equal(t, int64(7), gotBody.OrderID)
	assert.Equal(t, "482910", gotBody.OrderCode)
}

func TestTrigger_Non2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	err := client.NotifyManager(context.Background(), domain.ManagerNotification{OrderID: 1})
	assert.Error(t, err)
}

func TestTrigger_UnconfiguredURLIsANoop(t *testing.T) {
	client := NewClient("", "", time.Second)
	err := client.TriggerReceiptValidation(context.Background(), domain.ReceiptValidationRequest{OrderID: 1})
	assert.NoError(t, err)
}
