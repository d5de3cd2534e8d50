package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook() *Book {
	year := 2020
	return NewBook("Go语言实战", "实战教程", 5900, GenreOther, &year, 10, 8.5, "9787115428028")
}

// TestValidatePass 合法图书通过校验管道
func TestValidatePass(t *testing.T) {
	assert.Nil(t, Validate(validBook()))

	// 年份为空也是合法的
	b := validBook()
	b.Year = nil
	assert.Nil(t, Validate(b))
}

// TestValidateFieldRules 单字段规则
func TestValidateFieldRules(t *testing.T) {
	currentYear := time.Now().Year()

	cases := []struct {
		name   string
		mutate func(b *Book)
		field  string
	}{
		{"书名为空", func(b *Book) { b.Title = "" }, "title"},
		{"价格为0", func(b *Book) { b.Price = 0 }, "price"},
		{"价格为负", func(b *Book) { b.Price = -100 }, "price"},
		{"非法分类", func(b *Book) { b.Genre = "horror" }, "genre"},
		{"年份过早", func(b *Book) { y := 1799; b.Year = &y }, "year"},
		{"年份在未来", func(b *Book) { y := currentYear + 1; b.Year = &y }, "year"},
		{"库存为负", func(b *Book) { b.Quantity = -1 }, "quantity"},
		{"评分为负", func(b *Book) { b.Rating = -0.1 }, "rating"},
		{"评分超过10", func(b *Book) { b.Rating = 10.5 }, "rating"},
		{"ISBN位数不足", func(b *Book) { b.ISBN = "97871154280" }, "isbn"},
		{"ISBN含字母", func(b *Book) { b.ISBN = "978711542802X" }, "isbn"},
		{"ISBN含分隔符", func(b *Book) { b.ISBN = "978-7-115-4280" }, "isbn"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBook()
			tc.mutate(b)

			errs := Validate(b)
			require.NotNil(t, errs)
			assert.NotEmpty(t, errs[tc.field], "应产生%s字段的错误", tc.field)
		})
	}
}

// TestValidateCollectsAllErrors 多个非法字段的错误一次性全部返回
func TestValidateCollectsAllErrors(t *testing.T) {
	b := validBook()
	b.Title = ""
	b.Price = -1
	b.ISBN = "bad"

	errs := Validate(b)
	require.NotNil(t, errs)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "isbn")
}

// TestBoundaryValues 边界值恰好合法
func TestBoundaryValues(t *testing.T) {
	b := validBook()
	y := 1800
	b.Year = &y
	b.Rating = 0
	assert.Nil(t, Validate(b))

	b = validBook()
	y = time.Now().Year()
	b.Year = &y
	b.Rating = 10
	b.Quantity = 0
	assert.Nil(t, Validate(b))
}

// TestDecrStock 库存扣减守卫
func TestDecrStock(t *testing.T) {
	b := validBook() // 库存10

	require.NoError(t, b.DecrStock(3))
	assert.Equal(t, 7, b.Quantity)

	// 超出库存
	err := b.DecrStock(8)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 7, b.Quantity, "失败的扣减不应改变库存")

	// 非法数量
	assert.ErrorIs(t, b.DecrStock(0), ErrInvalidQuantity)
	assert.ErrorIs(t, b.DecrStock(-1), ErrInvalidQuantity)

	// 恰好扣完
	require.NoError(t, b.DecrStock(7))
	assert.Equal(t, 0, b.Quantity)
}
