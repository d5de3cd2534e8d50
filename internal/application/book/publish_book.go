package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// PublishBookUseCase 图书上架用例
// 设计说明:
// 1. 字段校验走领域层的校验管道,全部错误一次性返回
// 2. ISBN唯一性两层保证:应用层预检返回友好错误,数据库UNIQUE索引兜底
//    (预检到INSERT之间存在并发窗口,最终一致由唯一索引保证)
type PublishBookUseCase struct {
	bookRepo book.Repository
}

// NewPublishBookUseCase 创建图书上架用例
func NewPublishBookUseCase(bookRepo book.Repository) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookRepo: bookRepo,
	}
}

// PublishBookRequest 上架请求DTO
type PublishBookRequest struct {
	Title       string
	Description string
	Price       int64 // 价格(分)
	Genre       string
	Year        *int
	Quantity    int
	Rating      float64
	ISBN        string
	AuthorIDs   []uint
}

// Execute 执行图书上架
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*BookDetail, error) {
	// 1. 构建领域实体并执行校验管道
	b := book.NewBook(req.Title, req.Description, req.Price, book.Genre(req.Genre),
		req.Year, req.Quantity, req.Rating, req.ISBN)

	fields := book.Validate(b)
	// 上架必须至少关联一位作者(更新时可缺省)
	if len(req.AuthorIDs) == 0 {
		if fields == nil {
			fields = make(map[string][]string)
		}
		fields["author_ids"] = append(fields["author_ids"], "上架时至少需要指定一位作者")
	}
	if fields != nil {
		return nil, apperrors.NewValidation(fields)
	}

	// 2. ISBN唯一性预检
	existing, err := uc.bookRepo.FindByISBN(ctx, req.ISBN)
	if err != nil && !errors.Is(err, book.ErrBookNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, book.ErrISBNDuplicate
	}

	// 3. 持久化(含作者关联;并发下的重复由唯一索引兜底)
	if err := uc.bookRepo.Create(ctx, b, req.AuthorIDs); err != nil {
		return nil, err
	}

	return ToBookDetail(b), nil
}
