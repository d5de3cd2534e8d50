package dto

// RegisterRequest HTTP注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50" example:"zhangsan"`
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"gopher123"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required" example:"gopher123"`
}

// RefreshTokenRequest HTTP刷新Token请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse HTTP刷新Token响应
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
}
