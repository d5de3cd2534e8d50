package order

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.ErrOrderNotFound

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.ErrInvalidOrderStatus

	// ErrEmptyItems 订单明细不能为空
	ErrEmptyItems = apperrors.NewValidation(map[string][]string{
		"items": {"订单必须至少包含一个条目"},
	})

	// ErrEmptyAddress 收货地址不能为空
	ErrEmptyAddress = apperrors.NewValidation(map[string][]string{
		"address": {"收货地址不能为空"},
	})
)
