package book

import (
	"time"
)

// Genre 图书分类
// 与目录API的对外取值一致，数据库按字符串存储
type Genre string

const (
	GenreFantasy   Genre = "fantasy"   // 幻想
	GenreDetective Genre = "detective" // 侦探
	GenreRomance   Genre = "romance"   // 言情
	GenreDrama     Genre = "drama"     // 戏剧
	GenreMystery   Genre = "mystery"   // 悬疑
	GenreOther     Genre = "other"     // 其他
)

// IsValid 检查是否为合法分类
func (g Genre) IsValid() bool {
	switch g {
	case GenreFantasy, GenreDetective, GenreRomance, GenreDrama, GenreMystery, GenreOther:
		return true
	}
	return false
}

// AuthorRef 作者引用（多对多关联的轻量视图）
// 只保存展示需要的字段，避免跨聚合持有完整Author实体
type AuthorRef struct {
	ID   uint
	Name string
}

// Book 图书实体（聚合根）
// 设计说明：
// 1. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 2. ISBN作为业务唯一标识（13位数字，数据库层保证唯一性）
// 3. Quantity是可售库存，订单创建时扣减
// 4. Year/Rating等校验规则见validator.go的校验管道
type Book struct {
	ID          uint
	Title       string      // 书名
	Description string      // 图书描述
	Price       int64       // 价格(单位:分,1元=100分)
	Genre       Genre       // 分类
	Year        *int        // 出版年份(可空)
	Quantity    int         // 库存数量
	Rating      float64     // 评分[0,10]
	ISBN        string      // ISBN号(13位数字,唯一)
	Authors     []AuthorRef // 作者(多对多)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书（工厂方法）
// 字段校验由Validate统一执行，调用方应先通过校验管道
func NewBook(title, description string, price int64, genre Genre, year *int, quantity int, rating float64, isbn string) *Book {
	now := time.Now()
	if genre == "" {
		genre = GenreOther
	}
	return &Book{
		Title:       title,
		Description: description,
		Price:       price,
		Genre:       genre,
		Year:        year,
		Quantity:    quantity,
		Rating:      rating,
		ISBN:        isbn,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DecrStock 扣减库存（用于订单创建）
// 业务规则：扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Quantity < quantity {
		return ErrInsufficientStock
	}
	b.Quantity -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// IncrStock 增加库存（补货）
func (b *Book) IncrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.Quantity += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// HasStock 检查库存是否满足购买数量
func (b *Book) HasStock(quantity int) bool {
	return b.Quantity >= quantity
}
