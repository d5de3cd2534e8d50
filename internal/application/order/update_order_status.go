package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/policy"
)

// UpdateOrderStatusUseCase 订单状态更新用例
// 设计说明:
// 1. 仅管理员可操作
// 2. 状态只能沿created→paid→sent→delivered单向推进,由领域实体的状态机保证
// 3. 明细和金额在创建后不可变,状态是唯一允许的变更
type UpdateOrderStatusUseCase struct {
	orderRepo order.Repository
}

// NewUpdateOrderStatusUseCase 创建状态更新用例
func NewUpdateOrderStatusUseCase(orderRepo order.Repository) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{orderRepo: orderRepo}
}

// UpdateOrderStatusRequest 状态更新请求DTO
type UpdateOrderStatusRequest struct {
	OrderID uint
	Status  string // 目标状态
}

// Execute 执行状态更新
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, caller policy.Caller, req UpdateOrderStatusRequest) (*OrderDetail, error) {
	// 1. 授权(仅管理员)
	if err := policy.Authorize(caller, policy.ResourceOrder, policy.ActionUpdateStatus, 0); err != nil {
		return nil, err
	}

	// 2. 目标状态合法性
	target := order.Status(req.Status)
	if !target.IsValid() {
		return nil, order.ErrInvalidStatusTransition
	}

	// 3. 加载订单并执行状态机转换
	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	// TransitionTo内部校验并刷新UpdatedAt
	if err := o.TransitionTo(target); err != nil {
		return nil, err
	}

	// 4. 持久化
	if err := uc.orderRepo.UpdateStatus(ctx, o); err != nil {
		return nil, err
	}

	return toOrderDetail(o), nil
}
