package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 这些测试针对运行中的服务发请求，需要预先准备环境：
//   BOOKSHOP_API_URL        服务地址（如http://localhost:8080），未设置时跳过全部集成测试
//   BOOKSHOP_STAFF_EMAIL    预置管理员邮箱（目录写入、订单状态流转需要）
//   BOOKSHOP_STAFF_PASSWORD 预置管理员密码
// 管理员账号无法通过开放接口创建，需在数据库中预置is_staff=1的用户

const requestTimeout = 10 * time.Second

// Response 统一响应结构
type Response struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// BookData 图书响应数据
type BookData struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Price    int64   `json:"price"`
	Genre    string  `json:"genre"`
	Quantity int     `json:"quantity"`
	Rating   float64 `json:"rating"`
	ISBN     string  `json:"isbn"`
	Authors  []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"authors"`
}

// AuthorData 作者响应数据
type AuthorData struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Biography string  `json:"biography"`
	BirthDate *string `json:"birth_date"`
	Books     []struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	} `json:"books"`
}

// OrderData 订单响应数据
type OrderData struct {
	ID        uint   `json:"id"`
	OrderNo   string `json:"order_no"`
	UserID    uint   `json:"user_id"`
	Status    string `json:"status"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	Items     []struct {
		BookID   uint  `json:"book_id"`
		Quantity int   `json:"quantity"`
		Price    int64 `json:"price"`
	} `json:"items"`
}

// PageData 分页响应数据（list延迟解析）
type PageData struct {
	List       json.RawMessage `json:"list"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// baseURL 服务地址；未配置时跳过测试
func baseURL(t *testing.T) string {
	t.Helper()

	url := os.Getenv("BOOKSHOP_API_URL")
	if url == "" {
		t.Skip("未设置BOOKSHOP_API_URL，跳过集成测试")
	}
	return url + "/api/v1"
}

// doJSON 发送请求并解析统一响应
// 返回HTTP状态码供错误路径断言（400/401/403/404/405）
func doJSON(t *testing.T, method, url string, data interface{}, token string) (*Response, int) {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result, resp.StatusCode
}

// unmarshalData 解析响应的data字段
func unmarshalData(t *testing.T, resp *Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out), "解析data字段失败")
}

// generateUnique 生成唯一数字后缀，避免重复运行时数据冲突
func generateUnique() int64 {
	return time.Now().UnixNano()
}

// generateTestEmail 生成唯一的测试邮箱
func generateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// generateTestISBN 生成唯一的13位数字ISBN
func generateTestISBN() string {
	return fmt.Sprintf("978%010d", time.Now().UnixNano()%10000000000)
}

// registerTestUser 注册并登录普通用户，返回Token
func registerTestUser(t *testing.T, username string) (email string, token string) {
	t.Helper()

	base := baseURL(t)
	email = generateTestEmail(username)

	resp, status := doJSON(t, http.MethodPost, base+"/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": "Test1234",
	}, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code, "注册失败: %s", resp.Message)

	resp, status = doJSON(t, http.MethodPost, base+"/auth/login", map[string]string{
		"email":    email,
		"password": "Test1234",
	}, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code, "登录失败: %s", resp.Message)

	var login LoginData
	unmarshalData(t, resp, &login)
	return email, login.AccessToken
}

// staffToken 用预置管理员账号登录，返回Token
// 未配置管理员环境变量时跳过测试
func staffToken(t *testing.T) string {
	t.Helper()

	email := os.Getenv("BOOKSHOP_STAFF_EMAIL")
	password := os.Getenv("BOOKSHOP_STAFF_PASSWORD")
	if email == "" || password == "" {
		t.Skip("未设置BOOKSHOP_STAFF_EMAIL/BOOKSHOP_STAFF_PASSWORD，跳过需要管理员的集成测试")
	}

	resp, status := doJSON(t, http.MethodPost, baseURL(t)+"/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code, "管理员登录失败: %s", resp.Message)

	var login LoginData
	unmarshalData(t, resp, &login)
	return login.AccessToken
}

// createTestAuthor 创建测试作者，返回作者ID
func createTestAuthor(t *testing.T, token, name string) uint {
	t.Helper()

	resp, status := doJSON(t, http.MethodPost, baseURL(t)+"/authors", map[string]interface{}{
		"name":      name,
		"biography": "集成测试用作者",
	}, token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code, "创建作者失败: %s", resp.Message)

	var author AuthorData
	unmarshalData(t, resp, &author)
	return author.ID
}

// publishTestBook 上架测试图书，返回图书ID
// authorIDs为nil时自动创建一位作者（上架要求至少一位作者）
func publishTestBook(t *testing.T, token, title string, price int64, quantity int, authorIDs []uint) uint {
	t.Helper()

	if len(authorIDs) == 0 {
		authorIDs = []uint{createTestAuthor(t, token, "默认作者"+title)}
	}

	resp, status := doJSON(t, http.MethodPost, baseURL(t)+"/books", map[string]interface{}{
		"title":      title,
		"price":      price,
		"genre":      "fantasy",
		"quantity":   quantity,
		"rating":     4.5,
		"isbn":       generateTestISBN(),
		"author_ids": authorIDs,
	}, token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code, "图书上架失败: %s", resp.Message)

	var book BookData
	unmarshalData(t, resp, &book)
	return book.ID
}
