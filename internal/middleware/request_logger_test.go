package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "info"},
		{http.StatusCreated, "info"},
		{http.StatusNotFound, "warn"},
		{http.StatusConflict, "warn"},
		{http.StatusInternalServerError, "error"},
		{http.StatusServiceUnavailable, "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levelForStatus(tt.status), tt.status)
	}
}

func TestRequestLogger_StoresEntry(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	captured := make(chan *model.LogEntry, 1)
	svc.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) { captured <- args.Get(1).(*model.LogEntry) }).
		Return(nil)

	InitAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 4, NumWorkers: 1})
	defer StopAsyncLogger()

	router := gin.New()
	router.Use(RequestID(), func(c *gin.Context) {
		setActor(c, "ops@example.com")
		c.Next()
	}, RequestLogger(svc))
	router.GET("/batches/:order", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/batches/ORD-A-2501-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	select {
	case entry := <-captured:
		assert.Equal(t, "warn", entry.Level)
		assert.Equal(t, http.StatusNotFound, entry.StatusCode)
		assert.Equal(t, "/batches/ORD-A-2501-01", entry.Path)
		assert.Equal(t, "ops@example.com", entry.Actor)
		assert.Equal(t, model.ActionHTTPRequest, entry.Action)
		assert.Equal(t, w.Header().Get(RequestIDHeader), entry.RequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("log entry was not written")
	}
}

func TestRequestLogger_NilService(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(nil))
	router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
