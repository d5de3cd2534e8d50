package book

import (
	"github.com/xiebiao/bookshop/internal/domain/book"
)

// =========================================
// 应用层DTO（图书）
// =========================================

// AuthorRef 作者引用DTO
type AuthorRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookDetail 图书详情DTO
type BookDetail struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       int64       `json:"price"` // 价格(分)
	Genre       string      `json:"genre"`
	Year        *int        `json:"year"`
	Quantity    int         `json:"quantity"`
	Rating      float64     `json:"rating"`
	ISBN        string      `json:"isbn"`
	Authors     []AuthorRef `json:"authors"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// ToBookDetail 领域实体 → 详情DTO
func ToBookDetail(b *book.Book) *BookDetail {
	authors := make([]AuthorRef, len(b.Authors))
	for i, a := range b.Authors {
		authors[i] = AuthorRef{ID: a.ID, Name: a.Name}
	}

	return &BookDetail{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Genre:       string(b.Genre),
		Year:        b.Year,
		Quantity:    b.Quantity,
		Rating:      b.Rating,
		ISBN:        b.ISBN,
		Authors:     authors,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
