package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// PatchBookRequest 局部更新请求DTO
// 指针字段为nil表示该字段保持原值
type PatchBookRequest struct {
	ID          uint
	Title       *string
	Description *string
	Price       *int64 // 价格(分)
	Genre       *string
	Year        *int
	Quantity    *int
	Rating      *float64
	ISBN        *string
	AuthorIDs   []uint // nil表示保留原作者关联
}

// ExecutePartial 执行图书局部更新
// 只覆盖请求中出现的字段,之后与整体替换走同一条校验管道
func (uc *UpdateBookUseCase) ExecutePartial(ctx context.Context, req PatchBookRequest) (*BookDetail, error) {
	b, err := uc.bookRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	oldISBN := b.ISBN

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Price != nil {
		b.Price = *req.Price
	}
	if req.Genre != nil {
		b.Genre = book.Genre(*req.Genre)
	}
	if req.Year != nil {
		b.Year = req.Year
	}
	if req.Quantity != nil {
		b.Quantity = *req.Quantity
	}
	if req.Rating != nil {
		b.Rating = *req.Rating
	}
	if req.ISBN != nil {
		b.ISBN = *req.ISBN
	}

	if fields := book.Validate(b); fields != nil {
		return nil, apperrors.NewValidation(fields)
	}

	if b.ISBN != oldISBN {
		existing, err := uc.bookRepo.FindByISBN(ctx, b.ISBN)
		if err != nil && !errors.Is(err, book.ErrBookNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, book.ErrISBNDuplicate
		}
	}

	if err := uc.bookRepo.Update(ctx, b, req.AuthorIDs); err != nil {
		return nil, err
	}

	return ToBookDetail(b), nil
}
