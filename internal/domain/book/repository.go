package book

import (
	"context"
)

// ListParams 列表查询参数
// genre为空表示不过滤；价格/评分边界为nil表示不限制，命中时为闭区间
type ListParams struct {
	Page      int      // 页码(从1开始)
	PageSize  int      // 每页数量
	Genre     string   // 分类(忽略大小写的精确匹配)
	MinPrice  *int64   // 最低价格(分,含)
	MaxPrice  *int64   // 最高价格(分,含)
	MinRating *float64 // 最低评分(含)
	MaxRating *float64 // 最高评分(含)
	Keyword   string   // 关键词(搜索标题、ISBN)
}

// Repository 图书仓储接口（依赖倒置原则）
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 事务通过context传递（TxManager注入事务DB）
type Repository interface {
	// Create 创建图书并建立作者关联
	// authorIDs不存在的作者返回ErrAuthorNotFound；ISBN重复返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book, authorIDs []uint) error

	// FindByID 根据ID查找图书（含作者引用）
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息；authorIDs为nil时保留原作者关联，否则整体替换
	Update(ctx context.Context, book *Book, authorIDs []uint) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 按过滤条件分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Search 标题或ISBN的大小写不敏感子串匹配
	Search(ctx context.Context, query string) ([]*Book, error)

	// LockByID 悲观锁查询图书(用于订单创建时锁定库存)
	// 使用SELECT FOR UPDATE锁定行,防止并发超卖
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 更新库存(原子操作)
	// delta为正数表示增加,负数表示减少
	// 库存不足返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id uint, delta int) error
}
