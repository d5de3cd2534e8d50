package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// =========================================
// 内存假实现
// =========================================

// fakeBookRepo 内存图书仓储
type fakeBookRepo struct {
	books map[uint]*book.Book
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	m := make(map[uint]*book.Book)
	for _, b := range books {
		m[b.ID] = b
	}
	return &fakeBookRepo{books: m}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book, authorIDs []uint) error {
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	for _, b := range r.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book, authorIDs []uint) error {
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookRepo) Search(ctx context.Context, query string) ([]*book.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Quantity+delta < 0 {
		return book.ErrInsufficientStock
	}
	b.Quantity += delta
	return nil
}

// fakeOrderRepo 内存订单仓储
type fakeOrderRepo struct {
	orders     []*order.Order
	nextID     uint
	failCreate error // 非nil时Create直接返回该错误(模拟存储故障)
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	o.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, o *order.Order) error {
	existing, err := r.FindByID(ctx, o.ID)
	if err != nil {
		return err
	}
	existing.Status = o.Status
	existing.UpdatedAt = o.UpdatedAt
	return nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var result []*order.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeOrderRepo) List(ctx context.Context, page, pageSize int) ([]*order.Order, int64, error) {
	return r.orders, int64(len(r.orders)), nil
}

// fakeTxManager 模拟事务:执行前对库存和订单做快照,失败时恢复
type fakeTxManager struct {
	bookRepo  *fakeBookRepo
	orderRepo *fakeOrderRepo
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// 快照库存
	stocks := make(map[uint]int)
	for id, b := range m.bookRepo.books {
		stocks[id] = b.Quantity
	}
	orderCount := len(m.orderRepo.orders)

	err := fn(ctx)
	if err != nil {
		// 回滚:恢复库存,丢弃新建订单
		for id, q := range stocks {
			m.bookRepo.books[id].Quantity = q
		}
		m.orderRepo.orders = m.orderRepo.orders[:orderCount]
	}
	return err
}

// =========================================
// 测试
// =========================================

func testBook(id uint, price int64, quantity int) *book.Book {
	return &book.Book{
		ID:       id,
		Title:    "测试图书",
		Price:    price,
		Genre:    book.GenreOther,
		Quantity: quantity,
		ISBN:     "9787115428028",
	}
}

func newTestUseCase(bookRepo *fakeBookRepo, orderRepo *fakeOrderRepo) *CreateOrderUseCase {
	tx := &fakeTxManager{bookRepo: bookRepo, orderRepo: orderRepo}
	return NewCreateOrderUseCase(orderRepo, bookRepo, tx)
}

// TestCreateOrder 成功下单:价格快照、总额计算、库存扣减
func TestCreateOrder(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 1000, 5))
	orderRepo := newFakeOrderRepo()
	uc := newTestUseCase(bookRepo, orderRepo)

	resp, err := uc.Execute(context.Background(), CreateOrderRequest{
		UserID:  7,
		Address: "北京市海淀区",
		Items:   []CreateOrderItem{{BookID: 1, Quantity: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3000), resp.Total, "总额=单价1000×数量3")
	assert.Equal(t, "30.00", resp.TotalYuan)
	assert.Equal(t, string(order.StatusCreated), resp.Status)
	assert.Equal(t, "北京市海淀区", resp.Address)

	// 明细携带下单时的价格快照
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1000), resp.Items[0].Price)
	assert.Equal(t, 3, resp.Items[0].Quantity)

	// 库存 5 → 2
	b, _ := bookRepo.FindByID(context.Background(), 1)
	assert.Equal(t, 2, b.Quantity)
}

// TestCreateOrderPriceSnapshot 下单后改价不影响已成交订单
func TestCreateOrderPriceSnapshot(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 1000, 5))
	orderRepo := newFakeOrderRepo()
	uc := newTestUseCase(bookRepo, orderRepo)

	resp, err := uc.Execute(context.Background(), CreateOrderRequest{
		UserID:  7,
		Address: "addr",
		Items:   []CreateOrderItem{{BookID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	// 改价
	b, _ := bookRepo.FindByID(context.Background(), 1)
	b.Price = 9999

	// 已创建订单的明细价格仍是下单时的快照
	created, err := orderRepo.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), created.Items[0].Price)
	assert.Equal(t, int64(1000), created.Total)
}

// TestCreateOrderValidation 参数校验
func TestCreateOrderValidation(t *testing.T) {
	t.Run("空明细", func(t *testing.T) {
		uc := newTestUseCase(newFakeBookRepo(), newFakeOrderRepo())
		_, err := uc.Execute(context.Background(), CreateOrderRequest{
			UserID:  7,
			Address: "addr",
		})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Fields, "items")
	})

	t.Run("空地址", func(t *testing.T) {
		uc := newTestUseCase(newFakeBookRepo(testBook(1, 1000, 5)), newFakeOrderRepo())
		_, err := uc.Execute(context.Background(), CreateOrderRequest{
			UserID: 7,
			Items:  []CreateOrderItem{{BookID: 1, Quantity: 1}},
		})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Contains(t, appErr.Fields, "address")
	})

	t.Run("数量为0", func(t *testing.T) {
		uc := newTestUseCase(newFakeBookRepo(testBook(1, 1000, 5)), newFakeOrderRepo())
		_, err := uc.Execute(context.Background(), CreateOrderRequest{
			UserID:  7,
			Address: "addr",
			Items:   []CreateOrderItem{{BookID: 1, Quantity: 0}},
		})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	})
}

// TestCreateOrderInsufficientStock 库存不足时整单失败,库存不变
func TestCreateOrderInsufficientStock(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 1000, 2))
	orderRepo := newFakeOrderRepo()
	uc := newTestUseCase(bookRepo, orderRepo)

	_, err := uc.Execute(context.Background(), CreateOrderRequest{
		UserID:  7,
		Address: "addr",
		Items:   []CreateOrderItem{{BookID: 1, Quantity: 3}},
	})

	assert.ErrorIs(t, err, book.ErrInsufficientStock)
	assert.Empty(t, orderRepo.orders, "不应创建订单")

	b, _ := bookRepo.FindByID(context.Background(), 1)
	assert.Equal(t, 2, b.Quantity, "库存不应变化")
}

// TestCreateOrderPartialStockFailure 多条明细中任一不足,整单失败
func TestCreateOrderPartialStockFailure(t *testing.T) {
	bookRepo := newFakeBookRepo(
		testBook(1, 1000, 10),
		testBook(2, 2000, 1),
	)
	orderRepo := newFakeOrderRepo()
	uc := newTestUseCase(bookRepo, orderRepo)

	_, err := uc.Execute(context.Background(), CreateOrderRequest{
		UserID:  7,
		Address: "addr",
		Items: []CreateOrderItem{
			{BookID: 1, Quantity: 2},
			{BookID: 2, Quantity: 5}, // 库存只有1
		},
	})

	assert.ErrorIs(t, err, book.ErrInsufficientStock)
	assert.Empty(t, orderRepo.orders)

	// 两本书的库存都不应变化
	b1, _ := bookRepo.FindByID(context.Background(), 1)
	b2, _ := bookRepo.FindByID(context.Background(), 2)
	assert.Equal(t, 10, b1.Quantity)
	assert.Equal(t, 1, b2.Quantity)
}

// TestCreateOrderRollbackOnStorageFailure 订单写入失败时事务回滚,库存恢复
func TestCreateOrderRollbackOnStorageFailure(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 1000, 5))
	orderRepo := newFakeOrderRepo()
	orderRepo.failCreate = apperrors.Wrap(assert.AnError, "写入失败")
	uc := newTestUseCase(bookRepo, orderRepo)

	_, err := uc.Execute(context.Background(), CreateOrderRequest{
		UserID:  7,
		Address: "addr",
		Items:   []CreateOrderItem{{BookID: 1, Quantity: 3}},
	})

	require.Error(t, err)
	assert.Empty(t, orderRepo.orders)

	b, _ := bookRepo.FindByID(context.Background(), 1)
	assert.Equal(t, 5, b.Quantity, "回滚后库存应恢复")
}

// TestCreateOrderBookNotFound 图书不存在
func TestCreateOrderBookNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookRepo(), newFakeOrderRepo())

	_, err := uc.Execute(context.Background(), CreateOrderRequest{
		UserID:  7,
		Address: "addr",
		Items:   []CreateOrderItem{{BookID: 99, Quantity: 1}},
	})

	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
