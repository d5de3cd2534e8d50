package order

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// TxManager 事务边界抽象
// mysql.TxManager实现此接口;单元测试用直通的假实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateOrderUseCase 创建订单用例
// 设计说明:整个项目最核心的用例,涉及事务处理、并发控制、价格快照
//
// 核心问题:库存超卖
// 场景:图书库存10本,100人同时下单
// 错误实现:先查库存再判断再扣减,100个请求都能通过判断,最后超卖90本
// 正确实现:悲观锁
//  1. SELECT FOR UPDATE 锁定库存行
//  2. 判断库存是否充足
//  3. 创建订单(价格取锁定时的数据库价格,防止改价攻击)
//  4. 扣减库存
//  5. COMMIT释放锁;任何一步失败整体回滚
type CreateOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager TxManager
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	txManager TxManager,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	UserID  uint              // 买家用户ID(从JWT中提取)
	Address string            // 收货地址
	Items   []CreateOrderItem // 订单明细
}

// CreateOrderItem 订单明细项
type CreateOrderItem struct {
	BookID   uint // 图书ID
	Quantity int  // 购买数量
}

// Execute 执行下单用例
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderDetail, error) {
	// 1. 参数校验
	if len(req.Items) == 0 {
		return nil, order.ErrEmptyItems
	}
	if req.Address == "" {
		return nil, order.ErrEmptyAddress
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidation(map[string][]string{
				"items": {fmt.Sprintf("图书%d的购买数量必须大于0", item.BookID)},
			})
		}
	}

	// 2. 事务执行整个下单流程,要么全成功,要么全失败
	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 步骤1:锁定库存(悲观锁,防止并发超卖)
		// LockByID执行SELECT ... FOR UPDATE,在books表的该行上加排他锁,
		// 其他事务必须等待当前事务COMMIT或ROLLBACK后才能访问
		bookMap := make(map[uint]*book.Book)
		for _, item := range req.Items {
			b, err := uc.bookRepo.LockByID(txCtx, item.BookID)
			if err != nil {
				return err
			}

			// 必须在锁定后检查库存,否则可能并发扣减导致超卖
			if !b.HasStock(item.Quantity) {
				return book.ErrInsufficientStock
			}

			bookMap[item.BookID] = b
		}

		// 步骤2:计算订单金额(价格快照)
		// 使用锁定时的数据库价格而非前端传递的价格,防止改价攻击;
		// 下单后图书改价不影响已成交订单
		var total int64
		orderItems := make([]order.OrderItem, len(req.Items))
		for i, item := range req.Items {
			b := bookMap[item.BookID]
			orderItems[i] = order.OrderItem{
				BookID:   item.BookID,
				Quantity: item.Quantity,
				Price:    b.Price,
			}
			total += b.Price * int64(item.Quantity)
		}

		// 步骤3:创建订单(初始状态created)
		orderNo := order.GenerateOrderNo()
		newOrder := order.NewOrder(orderNo, req.UserID, req.Address, orderItems, total)

		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 步骤4:扣减库存
		// UpdateStock内部带WHERE quantity + delta >= 0守卫,
		// 扣减失败时整个事务回滚,订单不会创建,库存不会减少
		for _, item := range req.Items {
			if err := uc.bookRepo.UpdateStock(txCtx, item.BookID, -item.Quantity); err != nil {
				return err
			}
		}

		// 步骤5:返回订单(事务自动COMMIT)
		result = newOrder
		return nil
	})

	if err != nil {
		return nil, err
	}

	metrics.ObserveOrderCreated(result.Total)

	return toOrderDetail(result), nil
}
