package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// fakeListRepo 记录List收到的查询参数
type fakeListRepo struct {
	book.Repository
	gotParams book.ListParams
	books     []*book.Book
	total     int64
}

func (r *fakeListRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	r.gotParams = params
	return r.books, r.total, nil
}

// TestListBooksFixedPageSize 每页固定10条,客户端不能自定义
func TestListBooksFixedPageSize(t *testing.T) {
	repo := &fakeListRepo{total: 25}
	uc := NewListBooksUseCase(repo)

	resp, err := uc.Execute(context.Background(), ListBooksRequest{Page: 2})
	require.NoError(t, err)

	assert.Equal(t, 10, repo.gotParams.PageSize)
	assert.Equal(t, 2, repo.gotParams.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Equal(t, 3, resp.TotalPages, "25条按每页10条分3页")
}

// TestListBooksDefaults 页码缺省回落到第1页
func TestListBooksDefaults(t *testing.T) {
	repo := &fakeListRepo{}
	uc := NewListBooksUseCase(repo)

	_, err := uc.Execute(context.Background(), ListBooksRequest{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.gotParams.Page)
}

// TestListBooksFilters 过滤参数原样透传给仓储
func TestListBooksFilters(t *testing.T) {
	repo := &fakeListRepo{}
	uc := NewListBooksUseCase(repo)

	minPrice := int64(1000)
	maxRating := 8.0
	_, err := uc.Execute(context.Background(), ListBooksRequest{
		Page:      1,
		Genre:     "Fantasy",
		MinPrice:  &minPrice,
		MaxRating: &maxRating,
		Keyword:   "go",
	})
	require.NoError(t, err)

	assert.Equal(t, "Fantasy", repo.gotParams.Genre)
	require.NotNil(t, repo.gotParams.MinPrice)
	assert.Equal(t, int64(1000), *repo.gotParams.MinPrice)
	assert.Nil(t, repo.gotParams.MaxPrice)
	require.NotNil(t, repo.gotParams.MaxRating)
	assert.Equal(t, 8.0, *repo.gotParams.MaxRating)
	assert.Equal(t, "go", repo.gotParams.Keyword)
}

// =========================================
// 上架用例测试
// =========================================

// fakePublishRepo 支持Create/FindByISBN的假仓储
type fakePublishRepo struct {
	book.Repository
	existingISBN string // 预置的已占用ISBN
	created      *book.Book
	gotAuthorIDs []uint
}

func (r *fakePublishRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	if r.existingISBN != "" && isbn == r.existingISBN {
		return &book.Book{ID: 99, ISBN: isbn}, nil
	}
	return nil, book.ErrBookNotFound
}

func (r *fakePublishRepo) Create(ctx context.Context, b *book.Book, authorIDs []uint) error {
	b.ID = 1
	r.created = b
	r.gotAuthorIDs = authorIDs
	return nil
}

func validPublishRequest() PublishBookRequest {
	return PublishBookRequest{
		Title:     "Go程序设计语言",
		Price:     5900,
		Genre:     "other",
		Quantity:  10,
		Rating:    8.5,
		ISBN:      "9787115428028",
		AuthorIDs: []uint{1, 2},
	}
}

// TestPublishBook 成功上架
func TestPublishBook(t *testing.T) {
	repo := &fakePublishRepo{}
	uc := NewPublishBookUseCase(repo)

	resp, err := uc.Execute(context.Background(), validPublishRequest())
	require.NoError(t, err)

	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "Go程序设计语言", resp.Title)
	assert.Equal(t, []uint{1, 2}, repo.gotAuthorIDs)
}

// TestPublishBookValidation 校验失败时全部字段错误一次性返回
func TestPublishBookValidation(t *testing.T) {
	repo := &fakePublishRepo{}
	uc := NewPublishBookUseCase(repo)

	req := validPublishRequest()
	req.Title = ""
	req.Price = 0
	req.ISBN = "123" // 不足13位

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "title")
	assert.Contains(t, appErr.Fields, "price")
	assert.Contains(t, appErr.Fields, "isbn")
	assert.Nil(t, repo.created, "校验失败不应持久化")
}

// TestPublishBookRequiresAuthors 上架必须指定至少一位作者
func TestPublishBookRequiresAuthors(t *testing.T) {
	repo := &fakePublishRepo{}
	uc := NewPublishBookUseCase(repo)

	req := validPublishRequest()
	req.AuthorIDs = nil

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "author_ids")
	assert.Nil(t, repo.created)
}

// TestPublishBookDuplicateISBN ISBN已存在时拒绝上架
func TestPublishBookDuplicateISBN(t *testing.T) {
	repo := &fakePublishRepo{existingISBN: "9787115428028"}
	uc := NewPublishBookUseCase(repo)

	_, err := uc.Execute(context.Background(), validPublishRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, book.ErrISBNDuplicate))
	assert.Nil(t, repo.created)
}
