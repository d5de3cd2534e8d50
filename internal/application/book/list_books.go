package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// PageSize 列表接口固定每页10条
// 客户端只传页码,不能自定义每页数量
const PageSize = 10

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持分类、价格区间、评分区间、关键词的组合过滤(AND关系)
// 2. 分页固定每页10条,只接受页码参数
type ListBooksUseCase struct {
	bookRepo book.Repository
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookRepo book.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookRepo: bookRepo,
	}
}

// ListBooksRequest 列表查询请求DTO
// 价格/评分边界为nil表示不限制,命中时为闭区间
type ListBooksRequest struct {
	Page      int      // 页码(从1开始)
	Genre     string   // 分类(忽略大小写的精确匹配)
	MinPrice  *int64   // 最低价格(分,含)
	MaxPrice  *int64   // 最高价格(分,含)
	MinRating *float64 // 最低评分(含)
	MaxRating *float64 // 最高评分(含)
	Keyword   string   // 关键词(搜索标题、ISBN)
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List       []*BookDetail `json:"list"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 1. 页码默认值
	if req.Page < 1 {
		req.Page = 1
	}

	// 2. 构建Repository查询参数
	params := book.ListParams{
		Page:      req.Page,
		PageSize:  PageSize,
		Genre:     req.Genre,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		MinRating: req.MinRating,
		MaxRating: req.MaxRating,
		Keyword:   req.Keyword,
	}

	// 3. 调用Repository查询
	books, total, err := uc.bookRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	// 4. 转换为DTO
	list := make([]*BookDetail, len(books))
	for i, b := range books {
		list[i] = ToBookDetail(b)
	}

	// 5. 计算总页数
	totalPages := int(total) / PageSize
	if int(total)%PageSize != 0 {
		totalPages++
	}

	return &ListBooksResponse{
		List:       list,
		Total:      total,
		Page:       req.Page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}, nil
}
