package author

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/author"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// UpdateAuthorUseCase 作者更新用例
// 整体替换语义:请求携带全部业务字段,覆盖后重跑校验管道;
// BookIDs为nil时保留原著作关联,否则整体替换
type UpdateAuthorUseCase struct {
	authorRepo author.Repository
}

// NewUpdateAuthorUseCase 创建作者更新用例
func NewUpdateAuthorUseCase(authorRepo author.Repository) *UpdateAuthorUseCase {
	return &UpdateAuthorUseCase{
		authorRepo: authorRepo,
	}
}

// UpdateAuthorRequest 更新请求DTO
type UpdateAuthorRequest struct {
	ID        uint
	Name      string
	Biography string
	BirthDate *string // 格式: 2006-01-02
	BookIDs   []uint  // nil表示保留原著作关联
}

// Execute 执行作者更新
func (uc *UpdateAuthorUseCase) Execute(ctx context.Context, req UpdateAuthorRequest) (*AuthorDetail, error) {
	// 1. 加载现有作者
	a, err := uc.authorRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// 2. 解析出生日期并覆盖字段
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidation(map[string][]string{
			"birth_date": {"出生日期格式应为YYYY-MM-DD"},
		})
	}

	a.Name = req.Name
	a.Biography = req.Biography
	a.BirthDate = birthDate

	// 3. 重跑校验管道
	if fields := author.Validate(a); fields != nil {
		return nil, apperrors.NewValidation(fields)
	}

	// 4. 持久化
	if err := uc.authorRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	// 5. 替换著作关联(可选)
	if req.BookIDs != nil {
		if err := uc.authorRepo.ReplaceBooks(ctx, a.ID, req.BookIDs); err != nil {
			return nil, err
		}
		// 重新加载以获取最新关联
		a, err = uc.authorRepo.FindByID(ctx, a.ID)
		if err != nil {
			return nil, err
		}
	}

	return ToAuthorDetail(a), nil
}

// DeleteAuthorUseCase 作者删除用例
type DeleteAuthorUseCase struct {
	authorRepo author.Repository
}

// NewDeleteAuthorUseCase 创建作者删除用例
func NewDeleteAuthorUseCase(authorRepo author.Repository) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{
		authorRepo: authorRepo,
	}
}

// Execute 执行作者删除(软删除,同时解除图书关联)
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) error {
	return uc.authorRepo.Delete(ctx, id)
}
