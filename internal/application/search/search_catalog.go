package search

import (
	"context"
	"strings"

	appauthor "github.com/xiebiao/bookshop/internal/application/author"
	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/book"
)

// SearchCatalogUseCase 目录全文检索用例
// 设计说明:
// 1. 同时检索图书(标题/ISBN)和作者(姓名),大小写不敏感子串匹配
// 2. 查询词为空或全空白时直接返回空结果,不触碰数据库
// 3. 检索对所有人开放,不需要登录
type SearchCatalogUseCase struct {
	bookRepo   book.Repository
	authorRepo author.Repository
}

// NewSearchCatalogUseCase 创建检索用例
func NewSearchCatalogUseCase(bookRepo book.Repository, authorRepo author.Repository) *SearchCatalogUseCase {
	return &SearchCatalogUseCase{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
	}
}

// SearchCatalogResponse 检索响应DTO
// 复用图书/作者应用层的详情DTO,保持对外形状一致
type SearchCatalogResponse struct {
	Query   string                    `json:"query"`
	Books   []*appbook.BookDetail     `json:"books"`
	Authors []*appauthor.AuthorDetail `json:"authors"`
}

// Execute 执行目录检索
func (uc *SearchCatalogUseCase) Execute(ctx context.Context, query string) (*SearchCatalogResponse, error) {
	resp := &SearchCatalogResponse{
		Query:   query,
		Books:   []*appbook.BookDetail{},
		Authors: []*appauthor.AuthorDetail{},
	}

	// 空查询直接返回空结果
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return resp, nil
	}

	books, err := uc.bookRepo.Search(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	authors, err := uc.authorRepo.Search(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	for _, b := range books {
		resp.Books = append(resp.Books, appbook.ToBookDetail(b))
	}
	for _, a := range authors {
		resp.Authors = append(resp.Authors, appauthor.ToAuthorDetail(a))
	}

	return resp, nil
}
