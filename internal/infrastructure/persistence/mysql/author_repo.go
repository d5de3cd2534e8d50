package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/author"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/author/repository.go定义的接口
// 2. 多对多关联通过GORM Association API维护(author_books中间表)
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		Name:      a.Name,
		Biography: a.Biography,
		BirthDate: a.BirthDate,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找作者(预加载著作,避免N+1查询)
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := r.db.WithContext(ctx).Preload("Books").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(&model), nil
}

// FindByIDs 批量查找作者
// 任一ID不存在即返回ErrAuthorNotFound,保证图书关联的作者全部有效
func (r *authorRepository) FindByIDs(ctx context.Context, ids []uint) ([]*author.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []AuthorModel
	db := r.getDB(ctx)
	if err := db.Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	// 去重后比对数量,发现缺失的ID即报错
	found := make(map[uint]bool, len(models))
	for _, m := range models {
		found[m.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, author.ErrAuthorNotFound
		}
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// Update 更新作者信息(不触碰著作关联)
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	result := r.db.WithContext(ctx).Model(&AuthorModel{}).Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"name":       a.Name,
			"biography":  a.Biography,
			"birth_date": a.BirthDate,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新作者失败")
	}

	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

// Delete 删除作者(软删除,同时解除图书关联)
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	var model AuthorModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return author.ErrAuthorNotFound
		}
		return apperrors.Wrap(err, "查询作者失败")
	}

	// 先清空中间表关联,再软删除作者本身
	if err := r.db.WithContext(ctx).Model(&model).Association("Books").Clear(); err != nil {
		return apperrors.Wrap(err, "解除作者著作关联失败")
	}

	if err := r.db.WithContext(ctx).Delete(&model).Error; err != nil {
		return apperrors.Wrap(err, "删除作者失败")
	}

	return nil
}

// List 分页查询作者列表
func (r *authorRepository) List(ctx context.Context, page, pageSize int, keyword string) ([]*author.Author, int64, error) {
	var models []AuthorModel
	var total int64

	query := r.db.WithContext(ctx).Model(&AuthorModel{})

	if keyword != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+toLowerPattern(keyword)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Books").
		Order("id ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}

	return authors, total, nil
}

// Search 姓名的大小写不敏感子串匹配
func (r *authorRepository) Search(ctx context.Context, query string) ([]*author.Author, error) {
	var models []AuthorModel

	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+toLowerPattern(query)+"%").
		Preload("Books").
		Order("id ASC").
		Find(&models).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "搜索作者失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// ReplaceBooks 整体替换作者的著作集合
func (r *authorRepository) ReplaceBooks(ctx context.Context, authorID uint, bookIDs []uint) error {
	var model AuthorModel
	if err := r.db.WithContext(ctx).First(&model, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return author.ErrAuthorNotFound
		}
		return apperrors.Wrap(err, "查询作者失败")
	}

	var books []BookModel
	if len(bookIDs) > 0 {
		if err := r.db.WithContext(ctx).Where("id IN ?", bookIDs).Find(&books).Error; err != nil {
			return apperrors.Wrap(err, "查询图书失败")
		}
		if len(books) != len(bookIDs) {
			return apperrors.ErrBookNotFound
		}
	}

	if err := r.db.WithContext(ctx).Model(&model).Association("Books").Replace(books); err != nil {
		return apperrors.Wrap(err, "替换作者著作失败")
	}

	return nil
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	books := make([]author.BookRef, len(model.Books))
	for i, b := range model.Books {
		books[i] = author.BookRef{
			ID:    b.ID,
			Title: b.Title,
		}
	}

	return &author.Author{
		ID:        model.ID,
		Name:      model.Name,
		Biography: model.Biography,
		BirthDate: model.BirthDate,
		Books:     books,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *authorRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
