package order

import (
	"time"
)

// Status 订单状态
// 按字符串存储，与API对外取值一致
type Status string

const (
	StatusCreated   Status = "created"   // 已创建(初始状态)
	StatusPaid      Status = "paid"      // 已支付
	StatusSent      Status = "sent"      // 已发货
	StatusDelivered Status = "delivered" // 已送达
)

// IsValid 检查是否为合法状态
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusSent, StatusDelivered:
		return true
	}
	return false
}

// Order 订单实体（聚合根）
// 设计说明：
// 1. Order是聚合根，OrderItem是子实体，必须通过Order访问
// 2. OrderNo是业务主键（全局唯一，时间有序）
// 3. Total冗余存储下单时计算出的总金额（防止改价攻击），
//    创建后明细与总额不可变，唯一允许的变更是状态流转
type Order struct {
	ID        uint
	OrderNo   string      // 订单号(业务主键)
	UserID    uint        // 买家用户ID
	Status    Status      // 订单状态
	Total     int64       // 订单总金额(分),冗余字段
	Address   string      // 收货地址
	Items     []OrderItem // 订单明细(聚合内的子实体)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem 订单明细项
// Price记录"下单时的单价"——历史价格快照，
// 图书后续改价不影响既有订单金额
type OrderItem struct {
	ID       uint
	OrderID  uint  // 所属订单ID
	BookID   uint  // 图书ID
	Quantity int   // 购买数量
	Price    int64 // 下单时的单价(分)
}

// NewOrder 创建新订单（工厂方法）
// 初始状态为created，总额由调用方按明细计算后传入
func NewOrder(orderNo string, userID uint, address string, items []OrderItem, total int64) *Order {
	now := time.Now()
	return &Order{
		OrderNo:   orderNo,
		UserID:    userID,
		Status:    StatusCreated,
		Total:     total,
		Address:   address,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// transitions 合法的状态转换规则
// 只允许沿物流方向单向流转，送达为终态
var transitions = map[Status][]Status{
	StatusCreated:   {StatusPaid},
	StatusPaid:      {StatusSent},
	StatusSent:      {StatusDelivered},
	StatusDelivered: {},
}

// CanTransitionTo 检查是否可以转换到目标状态
func (o *Order) CanTransitionTo(target Status) bool {
	allowed, exists := transitions[o.Status]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换
// 非法跳转（如越级、回退）返回ErrInvalidStatusTransition
func (o *Order) TransitionTo(target Status) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// CalculateTotal 按明细实时计算订单总金额
// 用于校验冗余的Total字段与明细一致
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
