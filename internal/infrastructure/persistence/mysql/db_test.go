package mysql

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gormTag(t *testing.T, model interface{}, field string) string {
	t.Helper()
	f, ok := reflect.TypeOf(model).FieldByName(field)
	require.True(t, ok, "字段%s不存在", field)
	return f.Tag.Get("gorm")
}

// TestOrderSchemaConstraints 校验订单表的关键约束声明
// 订单明细没有独立生命周期,删除订单必须级联删除明细
func TestOrderSchemaConstraints(t *testing.T) {
	itemsTag := gormTag(t, OrderModel{}, "Items")
	assert.Contains(t, itemsTag, "foreignKey:OrderID")
	assert.Contains(t, itemsTag, "constraint:OnDelete:CASCADE")

	assert.Contains(t, gormTag(t, OrderModel{}, "OrderNo"), "uniqueIndex")
	assert.Contains(t, gormTag(t, OrderModel{}, "UserID"), "not null")
}

// TestBookSchemaConstraints ISBN唯一且定长13位,价格列不允许NULL
func TestBookSchemaConstraints(t *testing.T) {
	isbnTag := gormTag(t, BookModel{}, "ISBN")
	assert.Contains(t, isbnTag, "uniqueIndex")
	assert.Contains(t, isbnTag, "size:13")

	assert.Contains(t, gormTag(t, BookModel{}, "Price"), "not null")
}
