package handlers_test

import (
	"net/http"
	"testing"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// unreachableDB opens a pool that fails every ping; sql.Open never dials
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=crm dbname=crm sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func TestHealthHandler(t *testing.T) {
	h := handlers.NewHealthHandler(unreachableDB(t), "1.2.3")
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", h.Health)
	httpSuite.Router.GET("/health/ready", h.Ready)
	httpSuite.Router.GET("/health/live", h.Live)

	t.Run("database down", func(t *testing.T) {
		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "1.2.3", resp.Version)
		assert.Contains(t, resp.Services["database"], "error")
	})

	t.Run("not ready", func(t *testing.T) {
		var resp map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &resp)
		assert.Equal(t, false, resp["ready"])
	})

	t.Run("alive regardless", func(t *testing.T) {
		var resp map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &resp)
		assert.Equal(t, true, resp["alive"])
	})
}
