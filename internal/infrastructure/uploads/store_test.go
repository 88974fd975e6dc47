package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

// Minimal valid headers, enough for http.DetectContentType.
var (
	pngBytes  = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
)

func newTestStore(t *testing.T, maxFileSize int64) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), maxFileSize)
	require.NoError(t, err)
	return store
}

func TestSaveReceipt(t *testing.T) {
	store := newTestStore(t, 1<<20)

	url, err := store.SaveReceipt(42, pngBytes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/receipt_order_42_"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(filepath.Join(store.Dir(), strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestSaveImage_SniffsContentType(t *testing.T) {
	store := newTestStore(t, 1<<20)

	url, err := store.SaveImage("product", "margherita", jpegBytes)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestSaveImage_RejectsNonImage(t *testing.T) {
	store := newTestStore(t, 1<<20)

	_, err := store.SaveImage("receipt", "order_1", []byte("%PDF-1.4 not an image"))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "file", verr.Field)
}

func TestSaveImage_RejectsOversized(t *testing.T) {
	store := newTestStore(t, 4)

	_, err := store.SaveImage("receipt", "order_1", pngBytes)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSaveImage_RejectsEmpty(t *testing.T) {
	store := newTestStore(t, 1<<20)

	_, err := store.SaveImage("receipt", "order_1", nil)
	assert.Error(t, err)
}
