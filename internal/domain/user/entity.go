package user

import (
	"time"
)

// User 用户实体（聚合根）
// 设计说明：
// 1. 密码存bcrypt哈希值，不提供任何暴露明文的方法
// 2. IsStaff标志驱动权限表：管理员可写目录、改订单状态
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository负责映射）
type User struct {
	ID        uint
	Username  string
	Email     string
	Password  string // bcrypt哈希值
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
