package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBookLifecycle 图书完整生命周期：上架→详情→列表→更新→下架
func TestBookLifecycle(t *testing.T) {
	base := baseURL(t)
	token := staffToken(t)

	authorID := createTestAuthor(t, token, "生命周期测试作者")
	bookID := publishTestBook(t, token, "集成测试·图书生命周期", 5900, 10, []uint{authorID})

	// 详情（匿名可读）
	resp, status := doJSON(t, http.MethodGet, fmt.Sprintf("%s/books/%d", base, bookID), nil, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code)

	var book BookData
	unmarshalData(t, resp, &book)
	assert.Equal(t, "集成测试·图书生命周期", book.Title)
	assert.Equal(t, int64(5900), book.Price)
	assert.Equal(t, 10, book.Quantity)
	require.Len(t, book.Authors, 1)
	assert.Equal(t, authorID, book.Authors[0].ID)

	// 列表带关键词过滤，每页固定10条
	resp, status = doJSON(t, http.MethodGet, base+"/books?keyword=图书生命周期", nil, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code)

	var page PageData
	unmarshalData(t, resp, &page)
	assert.Equal(t, 10, page.PageSize)
	assert.GreaterOrEqual(t, page.Total, int64(1))

	// 更新（整体替换语义）
	resp, status = doJSON(t, http.MethodPut, fmt.Sprintf("%s/books/%d", base, bookID), map[string]interface{}{
		"title":    "集成测试·图书生命周期(改)",
		"price":    6900,
		"genre":    "fantasy",
		"quantity": 8,
		"rating":   4.0,
		"isbn":     book.ISBN,
	}, token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code, "更新失败: %s", resp.Message)

	unmarshalData(t, resp, &book)
	assert.Equal(t, int64(6900), book.Price)
	require.Len(t, book.Authors, 1, "author_ids缺省时应保留原作者关联")

	// 下架
	resp, status = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/books/%d", base, bookID), nil, token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code)

	// 下架后详情返回404
	resp, status = doJSON(t, http.MethodGet, fmt.Sprintf("%s/books/%d", base, bookID), nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 40402, resp.Code)
}

// TestBookWritePermissions 目录写入权限：匿名401、普通用户403
func TestBookWritePermissions(t *testing.T) {
	base := baseURL(t)

	bookReq := map[string]interface{}{
		"title": "越权上架测试",
		"price": 1000,
		"isbn":  generateTestISBN(),
	}

	// 匿名
	resp, status := doJSON(t, http.MethodPost, base+"/books", bookReq, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, 40100, resp.Code)

	// 普通用户
	_, memberToken := registerTestUser(t, "member_writer")
	resp, status = doJSON(t, http.MethodPost, base+"/books", bookReq, memberToken)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, 40300, resp.Code)
}

// TestBookValidation 字段级校验错误一次性返回全部问题
func TestBookValidation(t *testing.T) {
	base := baseURL(t)
	token := staffToken(t)

	// ISBN格式非法（必须13位数字）
	resp, status := doJSON(t, http.MethodPost, base+"/books", map[string]interface{}{
		"title": "校验测试",
		"price": 1000,
		"isbn":  "not-an-isbn",
	}, token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 40902, resp.Code)
	assert.NotEmpty(t, resp.Fields["isbn"])
}

// TestAuthorLifecycle 作者完整生命周期
func TestAuthorLifecycle(t *testing.T) {
	base := baseURL(t)
	token := staffToken(t)

	resp, status := doJSON(t, http.MethodPost, base+"/authors", map[string]interface{}{
		"name":       "作者生命周期测试",
		"biography":  "简介",
		"birth_date": "1976-05-01",
	}, token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code, "创建作者失败: %s", resp.Message)

	var author AuthorData
	unmarshalData(t, resp, &author)
	require.NotNil(t, author.BirthDate)
	assert.Equal(t, "1976-05-01", *author.BirthDate)

	// 关联著作
	bookID := publishTestBook(t, token, "作者测试著作", 3900, 5, []uint{author.ID})

	resp, status = doJSON(t, http.MethodGet, fmt.Sprintf("%s/authors/%d", base, author.ID), nil, "")
	require.Equal(t, http.StatusOK, status)
	unmarshalData(t, resp, &author)
	require.Len(t, author.Books, 1)
	assert.Equal(t, bookID, author.Books[0].ID)

	// 删除作者不应删除图书，只解除关联
	resp, status = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/authors/%d", base, author.ID), nil, token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code)

	var book BookData
	resp, status = doJSON(t, http.MethodGet, fmt.Sprintf("%s/books/%d", base, bookID), nil, "")
	require.Equal(t, http.StatusOK, status)
	unmarshalData(t, resp, &book)
	assert.Empty(t, book.Authors)
}

// TestSearchCatalog 目录检索同时覆盖图书和作者
func TestSearchCatalog(t *testing.T) {
	base := baseURL(t)
	token := staffToken(t)

	marker := fmt.Sprintf("检索标记%d", generateUnique())
	authorID := createTestAuthor(t, token, "作者"+marker)
	publishTestBook(t, token, "图书"+marker, 2900, 3, []uint{authorID})

	resp, status := doJSON(t, http.MethodGet, base+"/search?q="+marker, nil, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code)

	var result struct {
		Query   string       `json:"query"`
		Books   []BookData   `json:"books"`
		Authors []AuthorData `json:"authors"`
	}
	unmarshalData(t, resp, &result)
	assert.Len(t, result.Books, 1)
	assert.Len(t, result.Authors, 1)

	// 空查询返回空结果而非错误
	resp, status = doJSON(t, http.MethodGet, base+"/search?q=", nil, "")
	require.Equal(t, http.StatusOK, status)
	unmarshalData(t, resp, &result)
	assert.Empty(t, result.Books)
	assert.Empty(t, result.Authors)
}
