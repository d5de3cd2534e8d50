package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatusTransitions 订单状态机
func TestStatusTransitions(t *testing.T) {
	t.Run("完整正向流转", func(t *testing.T) {
		o := NewOrder(GenerateOrderNo(), 1, "北京市海淀区", nil, 0)
		assert.Equal(t, StatusCreated, o.Status)

		require.NoError(t, o.TransitionTo(StatusPaid))
		require.NoError(t, o.TransitionTo(StatusSent))
		require.NoError(t, o.TransitionTo(StatusDelivered))
		assert.Equal(t, StatusDelivered, o.Status)
	})

	t.Run("禁止越级", func(t *testing.T) {
		o := NewOrder(GenerateOrderNo(), 1, "addr", nil, 0)
		err := o.TransitionTo(StatusSent)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Equal(t, StatusCreated, o.Status, "失败的转换不应改变状态")
	})

	t.Run("禁止回退", func(t *testing.T) {
		o := NewOrder(GenerateOrderNo(), 1, "addr", nil, 0)
		require.NoError(t, o.TransitionTo(StatusPaid))
		assert.ErrorIs(t, o.TransitionTo(StatusCreated), ErrInvalidStatusTransition)
	})

	t.Run("送达为终态", func(t *testing.T) {
		o := NewOrder(GenerateOrderNo(), 1, "addr", nil, 0)
		require.NoError(t, o.TransitionTo(StatusPaid))
		require.NoError(t, o.TransitionTo(StatusSent))
		require.NoError(t, o.TransitionTo(StatusDelivered))

		for _, target := range []Status{StatusCreated, StatusPaid, StatusSent, StatusDelivered} {
			assert.False(t, o.CanTransitionTo(target))
		}
	})
}

// TestCalculateTotal 总金额等于明细单价×数量之和
func TestCalculateTotal(t *testing.T) {
	items := []OrderItem{
		{BookID: 1, Quantity: 3, Price: 1000},
		{BookID: 2, Quantity: 1, Price: 5900},
	}
	o := NewOrder(GenerateOrderNo(), 1, "addr", items, 8900)

	assert.Equal(t, int64(8900), o.CalculateTotal())
	assert.Equal(t, o.Total, o.CalculateTotal())
}

// TestIsOwnedBy 订单归属
func TestIsOwnedBy(t *testing.T) {
	o := NewOrder(GenerateOrderNo(), 42, "addr", nil, 0)
	assert.True(t, o.IsOwnedBy(42))
	assert.False(t, o.IsOwnedBy(1))
}

// TestGenerateOrderNo 订单号格式
func TestGenerateOrderNo(t *testing.T) {
	no := GenerateOrderNo()
	assert.True(t, strings.HasPrefix(no, "ORD"))
	assert.GreaterOrEqual(t, len(no), 19)
}

// TestStatusIsValid 状态合法性
func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusCreated, StatusPaid, StatusSent, StatusDelivered} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("cancelled").IsValid())
	assert.False(t, Status("").IsValid())
}
