package order

import (
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// =========================================
// 应用层DTO（订单）
// =========================================

// OrderItemDetail 订单明细DTO
type OrderItemDetail struct {
	ID       uint  `json:"id"`
	BookID   uint  `json:"book_id"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"` // 下单时单价(分)
}

// OrderDetail 订单详情DTO
type OrderDetail struct {
	ID        uint              `json:"id"`
	OrderNo   string            `json:"order_no"`
	UserID    uint              `json:"user_id"`
	Status    string            `json:"status"`
	Total     int64             `json:"total"` // 总金额(分)
	TotalYuan string            `json:"total_yuan"`
	Address   string            `json:"address"`
	Items     []OrderItemDetail `json:"items"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// toOrderDetail 领域实体 → 详情DTO
func toOrderDetail(o *order.Order) *OrderDetail {
	items := make([]OrderItemDetail, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemDetail{
			ID:       item.ID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &OrderDetail{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		Status:    string(o.Status),
		Total:     o.Total,
		TotalYuan: formatPrice(o.Total),
		Address:   o.Address,
		Items:     items,
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: o.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
