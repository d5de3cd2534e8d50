package order

import (
	"context"
)

// Repository 订单仓储接口（依赖倒置原则）
// 事务通过context传递（TxManager注入事务DB）
type Repository interface {
	// Create 创建订单(包含订单明细,同一事务)
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(包含订单明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// UpdateStatus 更新订单状态(创建后唯一允许的变更)
	UpdateStatus(ctx context.Context, order *Order) error

	// ListByUserID 查询指定用户的订单列表(分页)
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)

	// List 查询全部订单列表(分页,管理员用)
	List(ctx context.Context, page, pageSize int) ([]*Order, int64, error)
}
