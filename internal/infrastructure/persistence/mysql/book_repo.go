package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
// 4. 作者多对多关联随图书一起维护
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书并建立作者关联
func (r *bookRepository) Create(ctx context.Context, b *book.Book, authorIDs []uint) error {
	db := r.getDB(ctx)

	// 1. 校验作者全部存在
	authors, err := r.loadAuthors(db, authorIDs)
	if err != nil {
		return err
	}

	// 2. 领域实体 → GORM模型(Authors赋值后Create会自动写中间表)
	model := &BookModel{
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Genre:       string(b.Genre),
		Year:        b.Year,
		Quantity:    b.Quantity,
		Rating:      b.Rating,
		ISBN:        b.ISBN,
		Authors:     authors,
	}

	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 3. 回填自增ID和关联快照
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	b.Authors = toAuthorRefs(model.Authors)

	return nil
}

// FindByID 根据ID查找图书(预加载作者)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := r.getDB(ctx)
	err := db.Preload("Authors").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
// authorIDs为nil时保留原作者关联,否则整体替换
func (r *bookRepository) Update(ctx context.Context, b *book.Book, authorIDs []uint) error {
	db := r.getDB(ctx)

	result := db.Model(&BookModel{}).Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"title":       b.Title,
			"description": b.Description,
			"price":       b.Price,
			"genre":       string(b.Genre),
			"year":        b.Year,
			"quantity":    b.Quantity,
			"rating":      b.Rating,
			"isbn":        b.ISBN,
		})

	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(result.Error, "更新图书失败")
	}

	if result.RowsAffected == 0 {
		// Updates对不存在的行不报错,需显式确认
		var count int64
		if err := db.Model(&BookModel{}).Where("id = ?", b.ID).Count(&count).Error; err != nil {
			return apperrors.Wrap(err, "查询图书失败")
		}
		if count == 0 {
			return book.ErrBookNotFound
		}
	}

	if authorIDs != nil {
		authors, err := r.loadAuthors(db, authorIDs)
		if err != nil {
			return err
		}
		model := &BookModel{ID: b.ID}
		if err := db.Model(model).Association("Authors").Replace(authors); err != nil {
			return apperrors.Wrap(err, "替换图书作者失败")
		}
		b.Authors = toAuthorRefs(authors)
	}

	return nil
}

// Delete 删除图书(软删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 按过滤条件分页查询图书列表
// 过滤条件全部为AND关系;价格/评分边界为闭区间
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.db.WithContext(ctx).Model(&BookModel{})

	// 分类过滤(忽略大小写的精确匹配)
	if params.Genre != "" {
		query = query.Where("LOWER(genre) = ?", toLowerPattern(params.Genre))
	}

	// 价格区间(分)
	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	// 评分区间
	if params.MinRating != nil {
		query = query.Where("rating >= ?", *params.MinRating)
	}
	if params.MaxRating != nil {
		query = query.Where("rating <= ?", *params.MaxRating)
	}

	// 关键词搜索(标题、ISBN)
	if params.Keyword != "" {
		keyword := "%" + toLowerPattern(params.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR isbn LIKE ?", keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 按ID升序保证分页稳定
	offset := (params.Page - 1) * params.PageSize
	err := query.Preload("Authors").
		Order("id ASC").
		Limit(params.PageSize).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// Search 标题或ISBN的大小写不敏感子串匹配
func (r *bookRepository) Search(ctx context.Context, query string) ([]*book.Book, error) {
	var models []BookModel

	pattern := "%" + toLowerPattern(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR isbn LIKE ?", pattern, pattern).
		Preload("Authors").
		Order("id ASC").
		Find(&models).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// LockByID 悲观锁查询图书(用于订单创建)
// SELECT FOR UPDATE锁定行,防止并发超卖;必须在事务中调用
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := r.getDB(ctx)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateStock 更新库存(原子操作)
// UPDATE books SET quantity = quantity + delta WHERE id = ? AND quantity + delta >= 0
func (r *bookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	db := r.getDB(ctx)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("quantity + ? >= 0", delta). // 防止库存为负
		Update("quantity", gorm.Expr("quantity + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者库存不足,再查一次确定原因
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		return book.ErrInsufficientStock
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// loadAuthors 按ID加载作者模型,任一ID缺失返回ErrAuthorNotFound
func (r *bookRepository) loadAuthors(db *gorm.DB, authorIDs []uint) ([]AuthorModel, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	var authors []AuthorModel
	if err := db.Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	found := make(map[uint]bool, len(authors))
	for _, a := range authors {
		found[a.ID] = true
	}
	for _, id := range authorIDs {
		if !found[id] {
			return nil, apperrors.ErrAuthorNotFound
		}
	}

	return authors, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Price:       model.Price,
		Genre:       book.Genre(model.Genre),
		Year:        model.Year,
		Quantity:    model.Quantity,
		Rating:      model.Rating,
		ISBN:        model.ISBN,
		Authors:     toAuthorRefs(model.Authors),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// toAuthorRefs 作者模型 → 轻量引用
func toAuthorRefs(models []AuthorModel) []book.AuthorRef {
	refs := make([]book.AuthorRef, len(models))
	for i, m := range models {
		refs[i] = book.AuthorRef{ID: m.ID, Name: m.Name}
	}
	return refs
}

// getDB 从context获取事务DB,如果没有则使用默认DB
// 事务传递机制:TxManager通过context注入事务DB
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
