package dto

// SearchRequest HTTP目录检索请求
// q为空或全空白时返回空结果(不报错)
type SearchRequest struct {
	Query string `form:"q" binding:"omitempty,max=100" example:"go"`
}
