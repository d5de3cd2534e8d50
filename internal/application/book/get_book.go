package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookRepo book.Repository
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookRepo book.Repository) *GetBookUseCase {
	return &GetBookUseCase{
		bookRepo: bookRepo,
	}
}

// Execute 执行详情查询
// 图书不存在时返回ErrBookNotFound(接口层翻译为404)
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDetail, error) {
	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToBookDetail(b), nil
}
