package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database"
)

func serveHealth(controller *HealthController) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/health", controller.Status)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when database is connected", func(t *testing.T) {
		db, err := database.NewDatabase(filepath.Join(t.TempDir(), "health.db"))
		require.NoError(t, err)
		defer db.Close()

		w := serveHealth(NewHealthController(db, catalog.SampleData(), "1.0.0"))
		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "1 libraries", response.Checks["catalog"])
		assert.NotEmpty(t, response.Time)
	})

	t.Run("returns healthy when database is not configured", func(t *testing.T) {
		w := serveHealth(NewHealthController(nil, catalog.SampleData(), "1.0.0"))
		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "not configured", response.Checks["database"])
	})

	t.Run("returns unhealthy when database connection is closed", func(t *testing.T) {
		db, err := database.NewDatabase(filepath.Join(t.TempDir(), "health.db"))
		require.NoError(t, err)
		require.NoError(t, db.Close())

		w := serveHealth(NewHealthController(db, catalog.SampleData(), "1.0.0"))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["database"], "error")
	})

	t.Run("returns unhealthy without a catalog", func(t *testing.T) {
		w := serveHealth(NewHealthController(nil, nil, "1.0.0"))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "not loaded")
	})
}
