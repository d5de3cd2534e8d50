package dto

// CreateOrderRequest HTTP下单请求
type CreateOrderRequest struct {
	Address string                   `json:"address" binding:"required,max=255" example:"北京市海淀区"`
	Items   []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderItemRequest 订单明细项
type CreateOrderItemRequest struct {
	BookID   uint `json:"book_id" binding:"required" example:"1"`
	Quantity int  `json:"quantity" binding:"required,min=1,max=999" example:"3"`
}

// UpdateOrderStatusRequest HTTP订单状态更新请求
// 状态只能沿created→paid→sent→delivered单向推进
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=created paid sent delivered" example:"paid"`
}

// ListOrdersRequest HTTP订单列表请求
type ListOrdersRequest struct {
	Page int `form:"page" binding:"omitempty,min=1" example:"1"`
}
