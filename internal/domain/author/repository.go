package author

import (
	"context"
)

// Repository 作者仓储接口（依赖倒置原则）
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者（含著作引用）
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByIDs 批量查找作者；任一ID不存在返回ErrAuthorNotFound
	FindByIDs(ctx context.Context, ids []uint) ([]*Author, error)

	// Update 更新作者信息
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者(软删除,解除图书关联)
	Delete(ctx context.Context, id uint) error

	// List 分页查询作者列表；keyword非空时按姓名子串过滤(忽略大小写)
	List(ctx context.Context, page, pageSize int, keyword string) ([]*Author, int64, error)

	// Search 姓名的大小写不敏感子串匹配
	Search(ctx context.Context, query string) ([]*Author, error)

	// ReplaceBooks 整体替换作者的著作集合
	ReplaceBooks(ctx context.Context, authorID uint, bookIDs []uint) error
}
