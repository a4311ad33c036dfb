package appServer

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ds124wfegd/flagcomposer/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlerPreparesLayout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	root := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test", MaxUploadMB: 1},
		Storage: config.StorageConfig{
			UploadsDir:   filepath.Join(root, "uploads"),
			ProcessedDir: filepath.Join(root, "processed"),
			TemplatesDir: filepath.Join(root, "templates"),
			HeartMask:    "heart_base.png",
		},
		Kafka: config.KafkaConfig{Enabled: false, Topic: "flag-combined"},
	}

	handler, producer, err := NewHandler(cfg)
	require.NoError(t, err)
	defer producer.Close()

	for _, dir := range []string{"uploads", "processed", "templates"} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
