package author

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/author"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// PatchAuthorRequest 局部更新请求DTO
// 指针字段为nil表示该字段保持原值
type PatchAuthorRequest struct {
	ID        uint
	Name      *string
	Biography *string
	BirthDate *string // 格式: 2006-01-02
	BookIDs   []uint  // nil表示保留原著作关联
}

// ExecutePartial 执行作者局部更新
// 只覆盖请求中出现的字段,之后与整体替换走同一条校验管道
func (uc *UpdateAuthorUseCase) ExecutePartial(ctx context.Context, req PatchAuthorRequest) (*AuthorDetail, error) {
	a, err := uc.authorRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Biography != nil {
		a.Biography = *req.Biography
	}
	if req.BirthDate != nil {
		birthDate, err := parseBirthDate(req.BirthDate)
		if err != nil {
			return nil, apperrors.NewValidation(map[string][]string{
				"birth_date": {"出生日期格式应为YYYY-MM-DD"},
			})
		}
		a.BirthDate = birthDate
	}

	if fields := author.Validate(a); fields != nil {
		return nil, apperrors.NewValidation(fields)
	}

	if err := uc.authorRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	if req.BookIDs != nil {
		if err := uc.authorRepo.ReplaceBooks(ctx, a.ID, req.BookIDs); err != nil {
			return nil, err
		}
		a, err = uc.authorRepo.FindByID(ctx, a.ID)
		if err != nil {
			return nil, err
		}
	}

	return ToAuthorDetail(a), nil
}
