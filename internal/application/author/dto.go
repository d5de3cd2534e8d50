package author

import (
	"time"

	"github.com/xiebiao/bookshop/internal/domain/author"
)

// =========================================
// 应用层DTO（作者）
// =========================================

// BookRef 图书引用DTO
type BookRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// AuthorDetail 作者详情DTO
type AuthorDetail struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Biography string    `json:"biography"`
	BirthDate *string   `json:"birth_date"` // 格式: 2006-01-02
	Books     []BookRef `json:"books"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// ToAuthorDetail 领域实体 → 详情DTO
func ToAuthorDetail(a *author.Author) *AuthorDetail {
	books := make([]BookRef, len(a.Books))
	for i, b := range a.Books {
		books[i] = BookRef{ID: b.ID, Title: b.Title}
	}

	var birthDate *string
	if a.BirthDate != nil {
		s := a.BirthDate.Format("2006-01-02")
		birthDate = &s
	}

	return &AuthorDetail{
		ID:        a.ID,
		Name:      a.Name,
		Biography: a.Biography,
		BirthDate: birthDate,
		Books:     books,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// parseBirthDate 解析出生日期字符串(可空)
func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
