package author

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/author"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CreateAuthorUseCase 创建作者用例
// 字段校验走领域层的校验管道,全部错误一次性返回
type CreateAuthorUseCase struct {
	authorRepo author.Repository
}

// NewCreateAuthorUseCase 创建作者用例
func NewCreateAuthorUseCase(authorRepo author.Repository) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{
		authorRepo: authorRepo,
	}
}

// CreateAuthorRequest 创建作者请求DTO
type CreateAuthorRequest struct {
	Name      string
	Biography string
	BirthDate *string // 格式: 2006-01-02
}

// Execute 执行创建作者
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*AuthorDetail, error) {
	// 1. 解析出生日期
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidation(map[string][]string{
			"birth_date": {"出生日期格式应为YYYY-MM-DD"},
		})
	}

	// 2. 构建领域实体并执行校验管道
	a := author.NewAuthor(req.Name, req.Biography, birthDate)
	if fields := author.Validate(a); fields != nil {
		return nil, apperrors.NewValidation(fields)
	}

	// 3. 持久化
	if err := uc.authorRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	return ToAuthorDetail(a), nil
}
