package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/policy"
)

// PageSize 列表接口固定每页10条
const PageSize = 10

// GetOrderUseCase 订单详情查询用例
// 权限规则:仅订单归属者或管理员可查看
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单详情查询用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 执行详情查询
// 归属判断需要先加载订单,因此授权在用例内完成
func (uc *GetOrderUseCase) Execute(ctx context.Context, caller policy.Caller, orderID uint) (*OrderDetail, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(caller, policy.ResourceOrder, policy.ActionRetrieve, o.UserID); err != nil {
		return nil, err
	}

	return toOrderDetail(o), nil
}

// ListOrdersUseCase 订单列表查询用例
// 普通用户只能看到自己的订单;管理员可以看到全部订单
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表查询用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersResponse 列表查询响应DTO
type ListOrdersResponse struct {
	List       []*OrderDetail `json:"list"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// Execute 执行列表查询
func (uc *ListOrdersUseCase) Execute(ctx context.Context, caller policy.Caller, page int) (*ListOrdersResponse, error) {
	if err := policy.Authorize(caller, policy.ResourceOrder, policy.ActionListOwn, 0); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}

	var (
		orders []*order.Order
		total  int64
		err    error
	)

	if caller.IsStaff {
		orders, total, err = uc.orderRepo.List(ctx, page, PageSize)
	} else {
		orders, total, err = uc.orderRepo.ListByUserID(ctx, caller.UserID, page, PageSize)
	}
	if err != nil {
		return nil, err
	}

	list := make([]*OrderDetail, len(orders))
	for i, o := range orders {
		list[i] = toOrderDetail(o)
	}

	totalPages := int(total) / PageSize
	if int(total)%PageSize != 0 {
		totalPages++
	}

	return &ListOrdersResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}, nil
}
