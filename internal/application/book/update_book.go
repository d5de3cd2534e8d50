package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// UpdateBookUseCase 图书更新用例
// 设计说明:
// 1. 整体替换语义:请求携带全部业务字段,逐一覆盖后重跑校验管道
// 2. AuthorIDs为nil时保留原作者关联,否则整体替换
// 3. ISBN变更时重新做唯一性预检
type UpdateBookUseCase struct {
	bookRepo book.Repository
}

// NewUpdateBookUseCase 创建图书更新用例
func NewUpdateBookUseCase(bookRepo book.Repository) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookRepo: bookRepo,
	}
}

// UpdateBookRequest 更新请求DTO
type UpdateBookRequest struct {
	ID          uint
	Title       string
	Description string
	Price       int64 // 价格(分)
	Genre       string
	Year        *int
	Quantity    int
	Rating      float64
	ISBN        string
	AuthorIDs   []uint // nil表示保留原作者关联
}

// Execute 执行图书更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookDetail, error) {
	// 1. 加载现有图书
	b, err := uc.bookRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	oldISBN := b.ISBN

	// 2. 覆盖业务字段
	b.Title = req.Title
	b.Description = req.Description
	b.Price = req.Price
	b.Genre = book.Genre(req.Genre)
	b.Year = req.Year
	b.Quantity = req.Quantity
	b.Rating = req.Rating
	b.ISBN = req.ISBN

	// 3. 重跑校验管道
	if fields := book.Validate(b); fields != nil {
		return nil, apperrors.NewValidation(fields)
	}

	// 4. ISBN变更时重新预检唯一性
	if b.ISBN != oldISBN {
		existing, err := uc.bookRepo.FindByISBN(ctx, b.ISBN)
		if err != nil && !errors.Is(err, book.ErrBookNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, book.ErrISBNDuplicate
		}
	}

	// 5. 持久化
	if err := uc.bookRepo.Update(ctx, b, req.AuthorIDs); err != nil {
		return nil, err
	}

	return ToBookDetail(b), nil
}

// DeleteBookUseCase 图书下架用例
type DeleteBookUseCase struct {
	bookRepo book.Repository
}

// NewDeleteBookUseCase 创建图书下架用例
func NewDeleteBookUseCase(bookRepo book.Repository) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo: bookRepo,
	}
}

// Execute 执行图书下架(软删除)
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.bookRepo.Delete(ctx, id)
}
