package dto

// CreateAuthorRequest HTTP创建作者请求
type CreateAuthorRequest struct {
	Name      string  `json:"name" binding:"required,max=50" example:"Alan Donovan"`
	Biography string  `json:"biography" binding:"max=5000"`
	BirthDate *string `json:"birth_date" binding:"omitempty" example:"1976-05-01"` // 格式: YYYY-MM-DD
}

// UpdateAuthorRequest HTTP作者更新请求(整体替换语义)
type UpdateAuthorRequest struct {
	Name      string  `json:"name" binding:"required,max=50"`
	Biography string  `json:"biography" binding:"max=5000"`
	BirthDate *string `json:"birth_date" binding:"omitempty"`
	BookIDs   []uint  `json:"book_ids"` // 缺省(null)表示保留原著作关联
}

// PatchAuthorRequest HTTP作者局部更新请求
// 缺省字段保持原值
type PatchAuthorRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=50"`
	Biography *string `json:"biography" binding:"omitempty,max=5000"`
	BirthDate *string `json:"birth_date" binding:"omitempty"`
	BookIDs   []uint  `json:"book_ids"` // 缺省(null)表示保留原著作关联
}

// ListAuthorsRequest HTTP作者列表请求
type ListAuthorsRequest struct {
	Page    int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Keyword string `form:"keyword" binding:"omitempty,max=50" example:"曹"`
}
