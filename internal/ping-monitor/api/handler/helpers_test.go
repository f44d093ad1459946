package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupTestContext(t *testing.T, method, url string, body io.Reader) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	c.Request = req
	return w, c
}

func jsonBody(body any) io.Reader {
	if bodyStr, ok := body.(string); ok {
		return strings.NewReader(bodyStr)
	}
	jsonBytes, _ := json.Marshal(body)
	return bytes.NewReader(jsonBytes)
}

func testLogger() Logger {
	return NewLogger(zap.NewNop())
}

func ptr[T any](v T) *T {
	return &v
}
