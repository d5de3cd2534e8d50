package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用版本化的迁移脚本（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&AuthorModel{},
		&BookModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Username  string         `gorm:"size:50;not null;comment:用户名"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	IsStaff   bool           `gorm:"default:false;comment:管理员标志"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// AuthorModel GORM作者模型
// 与BookModel通过author_books中间表建立多对多关系
type AuthorModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"index;size:50;not null;comment:姓名"`
	Biography string         `gorm:"type:text;comment:传记"`
	BirthDate *time.Time     `gorm:"type:date;comment:出生日期"`
	Books     []BookModel    `gorm:"many2many:author_books"` // 多对多关联
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. ISBN有唯一索引,防止重复(13位数字)
// 3. Genre按字符串存储,与API对外取值一致
// 4. 与AuthorModel通过author_books中间表多对多关联
type BookModel struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"index:idx_search;size:200;not null;comment:书名"` // 搜索索引
	Description string         `gorm:"type:text;comment:图书描述"`
	Price       int64          `gorm:"index:idx_list;not null;comment:价格(分)"` // 过滤索引
	Genre       string         `gorm:"index;size:20;not null;default:other;comment:分类"`
	Year        *int           `gorm:"type:smallint;comment:出版年份"`
	Quantity    int            `gorm:"default:0;comment:库存数量"`
	Rating      float64        `gorm:"index:idx_list;default:0;comment:评分(0-10)"`
	ISBN        string         `gorm:"column:isbn;uniqueIndex;index:idx_search;size:13;not null;comment:ISBN号"`
	Authors     []AuthorModel  `gorm:"many2many:author_books"` // 多对多关联
	CreatedAt   time.Time      `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. 与OrderItemModel是一对多关系
// 2. OrderNo有唯一索引(业务主键)
// 3. Status按字符串存储(created/paid/sent/delivered),与API对外取值一致
type OrderModel struct {
	ID        uint             `gorm:"primaryKey"`
	OrderNo   string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID    uint             `gorm:"index;not null;comment:买家用户ID"`
	Status    string           `gorm:"index;size:16;not null;default:created;comment:订单状态"`
	Total     int64            `gorm:"not null;comment:订单总金额(分)"`
	Address   string           `gorm:"size:255;not null;comment:收货地址"`
	Items     []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // 删除订单时级联删除明细
	CreatedAt time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// Price记录下单时的价格快照,后续图书改价不影响已成交订单
type OrderItemModel struct {
	ID       uint  `gorm:"primaryKey"`
	OrderID  uint  `gorm:"index;not null;comment:订单ID"`
	BookID   uint  `gorm:"index;not null;comment:图书ID"`
	Quantity int   `gorm:"not null;comment:购买数量"`
	Price    int64 `gorm:"not null;comment:下单时单价(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}
