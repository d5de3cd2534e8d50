package author

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/author"
)

// PageSize 列表接口固定每页10条
const PageSize = 10

// ListAuthorsUseCase 作者列表查询用例
type ListAuthorsUseCase struct {
	authorRepo author.Repository
}

// NewListAuthorsUseCase 创建列表查询用例
func NewListAuthorsUseCase(authorRepo author.Repository) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{
		authorRepo: authorRepo,
	}
}

// ListAuthorsRequest 列表查询请求DTO
type ListAuthorsRequest struct {
	Page    int    // 页码(从1开始)
	Keyword string // 姓名关键词(忽略大小写子串匹配)
}

// ListAuthorsResponse 列表查询响应DTO
type ListAuthorsResponse struct {
	List       []*AuthorDetail `json:"list"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// Execute 执行列表查询
func (uc *ListAuthorsUseCase) Execute(ctx context.Context, req ListAuthorsRequest) (*ListAuthorsResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}

	authors, total, err := uc.authorRepo.List(ctx, req.Page, PageSize, req.Keyword)
	if err != nil {
		return nil, err
	}

	list := make([]*AuthorDetail, len(authors))
	for i, a := range authors {
		list[i] = ToAuthorDetail(a)
	}

	totalPages := int(total) / PageSize
	if int(total)%PageSize != 0 {
		totalPages++
	}

	return &ListAuthorsResponse{
		List:       list,
		Total:      total,
		Page:       req.Page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetAuthorUseCase 作者详情查询用例
type GetAuthorUseCase struct {
	authorRepo author.Repository
}

// NewGetAuthorUseCase 创建详情查询用例
func NewGetAuthorUseCase(authorRepo author.Repository) *GetAuthorUseCase {
	return &GetAuthorUseCase{
		authorRepo: authorRepo,
	}
}

// Execute 执行详情查询
// 作者不存在时返回ErrAuthorNotFound(接口层翻译为404)
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*AuthorDetail, error) {
	a, err := uc.authorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToAuthorDetail(a), nil
}
