package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/pkg/response"
)

// TestReplaceOrderMethodNotAllowed 整单替换固定返回405
// 订单创建后明细与金额不可变,PUT在结构上不被允许
func TestReplaceOrderMethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewOrderHandler(nil, nil, nil, nil)
	r := gin.New()
	r.PUT("/api/v1/orders/:id", h.ReplaceOrder)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/orders/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 40500, body.Code)
	assert.NotEmpty(t, body.Message)
}

// TestParseIDParam 非法路径参数返回400
func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewOrderHandler(nil, nil, nil, nil)
	r := gin.New()
	r.PUT("/api/v1/orders/:id", h.ReplaceOrder)
	r.GET("/api/v1/orders/:id", h.GetOrder)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 40900, body.Code)
}
