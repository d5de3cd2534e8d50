package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHTTPStatus 测试业务错误码到HTTP状态码的映射
func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		code int
		want int
	}{
		{"成功", 0, http.StatusOK},
		{"参数校验失败", ErrCodeValidation, http.StatusBadRequest},
		{"库存不足", ErrCodeInsufficientStock, http.StatusBadRequest},
		{"未登录", ErrCodeUnauthorized, http.StatusUnauthorized},
		{"Token过期", ErrCodeTokenExpired, http.StatusUnauthorized},
		{"无权限", ErrCodeForbidden, http.StatusForbidden},
		{"图书不存在", ErrCodeBookNotFound, http.StatusNotFound},
		{"订单不存在", ErrCodeOrderNotFound, http.StatusNotFound},
		{"不支持的操作", ErrCodeMethodNotSupported, http.StatusMethodNotAllowed},
		{"内部错误", ErrCodeInternal, http.StatusInternalServerError},
		{"数据库错误", ErrCodeDatabaseError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.code))
		})
	}
}

// TestNewValidation 测试字段级校验错误
func TestNewValidation(t *testing.T) {
	err := NewValidation(map[string][]string{
		"isbn": {"ISBN格式不正确"},
		"year": {"出版年份必须在1800到当前年份之间"},
	})

	assert.Equal(t, ErrCodeValidation, err.Code)
	assert.Len(t, err.Fields["isbn"], 1)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err.Code))
}

// TestWrapUnwrap 测试错误包装与errors.Is/As兼容性
func TestWrapUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	wrapped := Wrap(inner, "数据库错误")

	assert.True(t, errors.Is(wrapped, inner))
	assert.Equal(t, ErrCodeInternal, GetAppError(wrapped).Code)

	// 非AppError会被包装为内部错误
	plain := errors.New("boom")
	assert.Equal(t, ErrCodeInternal, GetAppError(plain).Code)

	// 预定义错误原样提取
	assert.Equal(t, ErrCodeInsufficientStock, GetAppError(ErrInsufficientStock).Code)
}
