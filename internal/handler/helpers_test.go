package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/product_review_service/internal/handler"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	handler.RegisterValidators()
	os.Exit(m.Run())
}

// serve runs h against a request built from method, target and body.
// A nil body sends no payload.
func serve(t *testing.T, h gin.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	h(c)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var response handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder) handler.SuccessResponse {
	t.Helper()
	var response handler.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
