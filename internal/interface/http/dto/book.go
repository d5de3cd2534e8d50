package dto

// PublishBookRequest HTTP上架请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
// 注意:绑定校验只拦截结构性问题(缺字段、类型不符),
// 业务规则(ISBN格式、年份范围等)由领域层校验管道统一返回字段级错误
type PublishBookRequest struct {
	Title       string  `json:"title" binding:"required,max=255" example:"Go程序设计语言"`
	Description string  `json:"description" binding:"max=5000" example:"Go语言圣经"`
	Price       int64   `json:"price" binding:"required,min=1" example:"5900"` // 价格(分),59.00元
	Genre       string  `json:"genre" binding:"omitempty" example:"other"`
	Year        *int    `json:"year" binding:"omitempty" example:"2017"`
	Quantity    int     `json:"quantity" binding:"min=0" example:"100"`
	Rating      float64 `json:"rating" binding:"omitempty" example:"8.5"`
	ISBN        string  `json:"isbn" binding:"required" example:"9787115428028"`
	AuthorIDs   []uint  `json:"author_ids" binding:"omitempty"`
}

// UpdateBookRequest HTTP图书更新请求(整体替换语义)
type UpdateBookRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=5000"`
	Price       int64   `json:"price" binding:"required,min=1"`
	Genre       string  `json:"genre" binding:"omitempty"`
	Year        *int    `json:"year" binding:"omitempty"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	Rating      float64 `json:"rating" binding:"omitempty"`
	ISBN        string  `json:"isbn" binding:"required"`
	AuthorIDs   []uint  `json:"author_ids"` // 缺省(null)表示保留原作者关联
}

// PatchBookRequest HTTP图书局部更新请求
// 缺省字段保持原值
type PatchBookRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=5000"`
	Price       *int64   `json:"price" binding:"omitempty,min=1"`
	Genre       *string  `json:"genre" binding:"omitempty"`
	Year        *int     `json:"year" binding:"omitempty"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=0"`
	Rating      *float64 `json:"rating" binding:"omitempty"`
	ISBN        *string  `json:"isbn" binding:"omitempty"`
	AuthorIDs   []uint   `json:"author_ids"` // 缺省(null)表示保留原作者关联
}

// ListBooksRequest HTTP图书列表请求
// 每页固定10条,只接受页码;价格/评分区间为闭区间
type ListBooksRequest struct {
	Page      int      `form:"page" binding:"omitempty,min=1" example:"1"`
	Genre     string   `form:"genre" binding:"omitempty,max=20" example:"fantasy"`
	MinPrice  *int64   `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice  *int64   `form:"max_price" binding:"omitempty,min=0"`
	MinRating *float64 `form:"min_rating" binding:"omitempty,min=0,max=10"`
	MaxRating *float64 `form:"max_rating" binding:"omitempty,min=0,max=10"`
	Keyword   string   `form:"keyword" binding:"omitempty,max=100" example:"Go"`
}
