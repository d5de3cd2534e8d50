package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/author"
	"github.com/xiebiao/bookshop/internal/domain/book"
)

// fakeBookSearcher 内存图书仓储(只实现检索相关路径)
// touched标记仓储是否被调用,用于验证空查询不触碰数据库
type fakeBookSearcher struct {
	book.Repository
	books   []*book.Book
	touched bool
}

func (r *fakeBookSearcher) Search(ctx context.Context, query string) ([]*book.Book, error) {
	r.touched = true
	var result []*book.Book
	q := strings.ToLower(query)
	for _, b := range r.books {
		if strings.Contains(strings.ToLower(b.Title), q) || strings.Contains(b.ISBN, q) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeAuthorSearcher struct {
	author.Repository
	authors []*author.Author
	touched bool
}

func (r *fakeAuthorSearcher) Search(ctx context.Context, query string) ([]*author.Author, error) {
	r.touched = true
	var result []*author.Author
	q := strings.ToLower(query)
	for _, a := range r.authors {
		if strings.Contains(strings.ToLower(a.Name), q) {
			result = append(result, a)
		}
	}
	return result, nil
}

func testCatalog() (*fakeBookSearcher, *fakeAuthorSearcher) {
	books := &fakeBookSearcher{books: []*book.Book{
		{ID: 1, Title: "Go程序设计语言", ISBN: "9787115428028", Genre: book.GenreOther},
		{ID: 2, Title: "The Go Programming Language", ISBN: "9780134190440", Genre: book.GenreOther},
		{ID: 3, Title: "红楼梦", ISBN: "9787020002207", Genre: book.GenreDrama},
	}}
	authors := &fakeAuthorSearcher{authors: []*author.Author{
		{ID: 1, Name: "Alan Donovan"},
		{ID: 2, Name: "曹雪芹"},
	}}
	return books, authors
}

// TestSearchCatalog 图书和作者同时检索
func TestSearchCatalog(t *testing.T) {
	books, authors := testCatalog()
	uc := NewSearchCatalogUseCase(books, authors)

	t.Run("命中图书标题", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), "go")
		require.NoError(t, err)
		assert.Len(t, resp.Books, 2, "大小写不敏感匹配")
		assert.Empty(t, resp.Authors)
	})

	t.Run("命中ISBN", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), "9787020002207")
		require.NoError(t, err)
		require.Len(t, resp.Books, 1)
		assert.Equal(t, "红楼梦", resp.Books[0].Title)
	})

	t.Run("命中作者姓名", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), "donovan")
		require.NoError(t, err)
		assert.Empty(t, resp.Books)
		require.Len(t, resp.Authors, 1)
		assert.Equal(t, "Alan Donovan", resp.Authors[0].Name)
	})

	t.Run("未命中返回空切片", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), "不存在的书")
		require.NoError(t, err)
		assert.NotNil(t, resp.Books)
		assert.NotNil(t, resp.Authors)
		assert.Empty(t, resp.Books)
		assert.Empty(t, resp.Authors)
	})
}

// TestSearchCatalogBlankQuery 空查询直接返回空结果,不触碰仓储
func TestSearchCatalogBlankQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		books, authors := testCatalog()
		uc := NewSearchCatalogUseCase(books, authors)

		resp, err := uc.Execute(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, resp.Books)
		assert.Empty(t, resp.Authors)
		assert.False(t, books.touched, "空查询不应查询图书仓储")
		assert.False(t, authors.touched, "空查询不应查询作者仓储")
	}
}
