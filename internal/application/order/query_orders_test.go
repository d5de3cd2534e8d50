package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/policy"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func seedOrder(t *testing.T, repo *fakeOrderRepo, userID uint) *order.Order {
	t.Helper()
	o := order.NewOrder(order.GenerateOrderNo(), userID, "addr", []order.OrderItem{
		{BookID: 1, Quantity: 1, Price: 1000},
	}, 1000)
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}

// TestGetOrderOwnership 订单详情的归属权限
func TestGetOrderOwnership(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedOrder(t, repo, 7)
	uc := NewGetOrderUseCase(repo)

	t.Run("本人可见", func(t *testing.T) {
		caller := policy.Caller{UserID: 7, Authenticated: true}
		resp, err := uc.Execute(context.Background(), caller, o.ID)
		require.NoError(t, err)
		assert.Equal(t, o.OrderNo, resp.OrderNo)
	})

	t.Run("他人不可见", func(t *testing.T) {
		caller := policy.Caller{UserID: 8, Authenticated: true}
		_, err := uc.Execute(context.Background(), caller, o.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("管理员可见", func(t *testing.T) {
		caller := policy.Caller{UserID: 1, Authenticated: true, IsStaff: true}
		_, err := uc.Execute(context.Background(), caller, o.ID)
		assert.NoError(t, err)
	})

	t.Run("订单不存在", func(t *testing.T) {
		caller := policy.Caller{UserID: 7, Authenticated: true}
		_, err := uc.Execute(context.Background(), caller, 999)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

// TestListOrdersScope 列表范围:普通用户仅本人,管理员全部
func TestListOrdersScope(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(t, repo, 7)
	seedOrder(t, repo, 7)
	seedOrder(t, repo, 8)
	uc := NewListOrdersUseCase(repo)

	t.Run("普通用户仅本人订单", func(t *testing.T) {
		caller := policy.Caller{UserID: 7, Authenticated: true}
		resp, err := uc.Execute(context.Background(), caller, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Total)
		for _, o := range resp.List {
			assert.Equal(t, uint(7), o.UserID)
		}
	})

	t.Run("管理员看到全部订单", func(t *testing.T) {
		caller := policy.Caller{UserID: 1, Authenticated: true, IsStaff: true}
		resp, err := uc.Execute(context.Background(), caller, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Total)
	})

	t.Run("匿名拒绝", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), policy.Caller{}, 1)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

// TestUpdateOrderStatus 状态更新用例
func TestUpdateOrderStatus(t *testing.T) {
	staff := policy.Caller{UserID: 1, Authenticated: true, IsStaff: true}
	member := policy.Caller{UserID: 7, Authenticated: true}

	t.Run("管理员正向推进", func(t *testing.T) {
		repo := newFakeOrderRepo()
		o := seedOrder(t, repo, 7)
		uc := NewUpdateOrderStatusUseCase(repo)

		resp, err := uc.Execute(context.Background(), staff, UpdateOrderStatusRequest{
			OrderID: o.ID,
			Status:  string(order.StatusPaid),
		})
		require.NoError(t, err)
		assert.Equal(t, string(order.StatusPaid), resp.Status)

		// 持久化的状态同步更新
		stored, _ := repo.FindByID(context.Background(), o.ID)
		assert.Equal(t, order.StatusPaid, stored.Status)
	})

	t.Run("普通用户拒绝", func(t *testing.T) {
		repo := newFakeOrderRepo()
		o := seedOrder(t, repo, 7)
		uc := NewUpdateOrderStatusUseCase(repo)

		_, err := uc.Execute(context.Background(), member, UpdateOrderStatusRequest{
			OrderID: o.ID,
			Status:  string(order.StatusPaid),
		})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("越级转换拒绝", func(t *testing.T) {
		repo := newFakeOrderRepo()
		o := seedOrder(t, repo, 7)
		uc := NewUpdateOrderStatusUseCase(repo)

		_, err := uc.Execute(context.Background(), staff, UpdateOrderStatusRequest{
			OrderID: o.ID,
			Status:  string(order.StatusDelivered),
		})
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("非法状态值拒绝", func(t *testing.T) {
		repo := newFakeOrderRepo()
		o := seedOrder(t, repo, 7)
		uc := NewUpdateOrderStatusUseCase(repo)

		_, err := uc.Execute(context.Background(), staff, UpdateOrderStatusRequest{
			OrderID: o.ID,
			Status:  "cancelled",
		})
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}
