package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type ctxKey string

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("info"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestWithContext(t *testing.T) {
	t.Run("no user in context", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "unknown", l.Data["user"])
	})

	t.Run("email from context", func(t *testing.T) {
		//nolint:staticcheck // string keys mirror what gin stores
		ctx := context.WithValue(context.Background(), "email", "ann@example.com")
		l := WithContext(ctx)
		assert.Equal(t, "ann@example.com", l.Data["user"])
	})

	t.Run("unrelated key types are ignored", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ctxKey("email"), "x@example.com")
		l := WithContext(ctx)
		assert.Equal(t, "unknown", l.Data["user"])
	})
}

func TestFromGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("user_id", uint(42))
	c.Set("request_id", "req-1")

	l := FromGinContext(c)
	assert.Equal(t, uint(42), l.Data["user_id"])
	assert.Equal(t, "req-1", l.Data["request_id"])
}

func TestSetup_WithFile(t *testing.T) {
	path := t.TempDir() + "/app.log"
	Setup("debug", &FileOptions{Path: path, MaxSizeMB: 1})
	defer Setup("info", nil)

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	New().Info("written to file")
	assert.FileExists(t, path)
}
