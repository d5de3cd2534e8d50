package author

import (
	"time"
)

// BookRef 图书引用（多对多关联的轻量视图）
type BookRef struct {
	ID    uint
	Title string
}

// Author 作者实体（聚合根）
// 设计说明：
// 1. 与Book是多对多关系：一本书可以有多个作者，一个作者可以有多本书
// 2. BirthDate可空，存在时不能晚于当前时间
type Author struct {
	ID        uint
	Name      string     // 姓名
	Biography string     // 传记(可空)
	BirthDate *time.Time // 出生日期(可空)
	Books     []BookRef  // 著作(多对多)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建新作者（工厂方法）
func NewAuthor(name, biography string, birthDate *time.Time) *Author {
	now := time.Now()
	return &Author{
		Name:      name,
		Biography: biography,
		BirthDate: birthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
