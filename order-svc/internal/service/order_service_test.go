package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pizzadesk/order-svc/internal/domain"
	"pizzadesk/order-svc/internal/mocks"
	"pizzadesk/order-svc/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 10, 19, 0, 0, 0, time.UTC)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func scenarioAOrder(customerID uuid.UUID) domain.NewOrder {
	return domain.NewOrder{
		CustomerID: customerID,
		Items: []domain.LineItem{
			{MenuItemID: uuid.New(), Name: "Portuguesa", Size: "G", Quantity: 2, Price: money("25.00")},
			{MenuItemID: uuid.New(), Name: "Refrigerante", Quantity: 1, Price: money("9.00")},
		},
		DeliveryFee:     money("5.00"),
		PaymentMethod:   "cash",
		DeliveryAddress: domain.Address{Street: "Av. Paulista, 900", City: "São Paulo"},
	}
}

// runTx makes WithinTx invoke the callback with the given transaction mock.
func runTx(tx service.OrderTx) func(context.Context, func(service.OrderTx) error) error {
	return func(_ context.Context, fn func(service.OrderTx) error) error {
		return fn(tx)
	}
}

func TestOrderService_Create(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()

	tests := []struct {
		name      string
		setupTx   func(*mocks.OrderTx)
		publish   bool
		publishOK bool
		wantErr   error
	}{
		{
			name: "success",
			setupTx: func(tx *mocks.OrderTx) {
				tx.On("NextOrderNumber", mock.Anything, tenantID).Return("#000001", nil).Once()
				tx.On("InsertOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				tx.On("IncrementCustomerAggregate", mock.Anything, tenantID, customerID,
					mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(money("64.00")) }), fixedNow).
					Return(int64(1), nil).Once()
			},
			publish:   true,
			publishOK: true,
		},
		{
			name: "publish failure does not fail the order",
			setupTx: func(tx *mocks.OrderTx) {
				tx.On("NextOrderNumber", mock.Anything, tenantID).Return("#000002", nil).Once()
				tx.On("InsertOrder", mock.Anything, mock.Anything).Return(nil).Once()
				tx.On("IncrementCustomerAggregate", mock.Anything, tenantID, customerID, mock.Anything, fixedNow).
					Return(int64(1), nil).Once()
			},
			publish: true,
		},
		{
			name: "unknown customer rolls back",
			setupTx: func(tx *mocks.OrderTx) {
				tx.On("NextOrderNumber", mock.Anything, tenantID).Return("#000003", nil).Once()
				tx.On("InsertOrder", mock.Anything, mock.Anything).
					Return(&domain.NotFoundError{Entity: "customer", ID: customerID.String()}).Once()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "aggregate update matches no customer",
			setupTx: func(tx *mocks.OrderTx) {
				tx.On("NextOrderNumber", mock.Anything, tenantID).Return("#000004", nil).Once()
				tx.On("InsertOrder", mock.Anything, mock.Anything).Return(nil).Once()
				tx.On("IncrementCustomerAggregate", mock.Anything, tenantID, customerID, mock.Anything, fixedNow).
					Return(int64(0), nil).Once()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "database failure",
			setupTx: func(tx *mocks.OrderTx) {
				tx.On("NextOrderNumber", mock.Anything, tenantID).Return("", errors.New("connection reset")).Once()
			},
			wantErr: domain.ErrPersistence,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			tx := mocks.NewOrderTx(t)
			publisher := mocks.NewOrderPublisher(t)
			testCase.setupTx(tx)
			repo.On("WithinTx", mock.Anything, mock.Anything).Return(runTx(tx)).Once()

			if testCase.publish {
				var publishErr error
				if !testCase.publishOK {
					publishErr = errors.New("broker down")
				}
				publisher.On("PublishOrder", mock.Anything, mock.MatchedBy(func(m domain.KafkaMessage) bool {
					return m.Type == domain.EventOrderCreated && m.TenantID == tenantID && len(m.Items) == 2
				})).Return(publishErr).Once()
			}

			svc := service.NewOrderService(repo, publisher, nil).WithClock(func() time.Time { return fixedNow })
			order, err := svc.Create(context.Background(), domain.Scope{TenantID: tenantID}, scenarioAOrder(customerID))

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusPending, order.Status)
			assert.Equal(t, "59.00", order.Subtotal.StringFixed(2))
			assert.Equal(t, "64.00", order.Total.StringFixed(2))
			assert.Equal(t, tenantID, order.TenantID)
			assert.NotEqual(t, uuid.Nil, order.ID)
			assert.Regexp(t, `^#\d{6}$`, order.OrderNumber)
		})
	}
}

func TestOrderService_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		scope domain.Scope
		input domain.NewOrder
	}{
		{name: "no tenant", scope: domain.Scope{}, input: scenarioAOrder(uuid.New())},
		{name: "no items", scope: domain.Scope{TenantID: uuid.New()}, input: domain.NewOrder{CustomerID: uuid.New()}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			svc := service.NewOrderService(repo, nil, nil)

			_, err := svc.Create(context.Background(), testCase.scope, testCase.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
			repo.AssertNotCalled(t, "WithinTx", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	orderID := uuid.New()
	tenantID := uuid.New()

	t.Run("invalid status leaves the order untouched", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		publisher := mocks.NewOrderPublisher(t)
		svc := service.NewOrderService(repo, publisher, nil)

		_, err := svc.UpdateStatus(context.Background(), domain.Scope{}, orderID, "bogus")

		assert.ErrorIs(t, err, domain.ErrValidation)
		repo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "PublishOrder", mock.Anything, mock.Anything)
	})

	t.Run("ready stamps preparedAt and publishes", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		publisher := mocks.NewOrderPublisher(t)
		stamped := fixedNow.Add(10 * time.Minute)
		repo.On("UpdateOrderStatus", mock.Anything, orderID, domain.StatusReady, stamped).
			Return(&domain.Order{ID: orderID, TenantID: tenantID, Status: domain.StatusReady, PreparedAt: &stamped}, nil).Once()
		publisher.On("PublishOrder", mock.Anything, mock.MatchedBy(func(m domain.KafkaMessage) bool {
			return m.Type == domain.EventOrderStatusChanged && m.Status == domain.StatusReady
		})).Return(nil).Once()

		svc := service.NewOrderService(repo, publisher, nil).WithClock(func() time.Time { return stamped })
		order, err := svc.UpdateStatus(context.Background(), domain.Scope{}, orderID, "ready")

		require.NoError(t, err)
		assert.Equal(t, stamped, *order.PreparedAt)
	})

	t.Run("missing order", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("UpdateOrderStatus", mock.Anything, orderID, domain.StatusCancelled, mock.Anything).
			Return(nil, &domain.NotFoundError{Entity: "order", ID: orderID.String()}).Once()

		svc := service.NewOrderService(repo, nil, nil)
		_, err := svc.UpdateStatus(context.Background(), domain.Scope{}, orderID, "cancelled")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOrderService_List(t *testing.T) {
	tenantID := uuid.New()

	tests := []struct {
		name    string
		filter  domain.OrderFilter
		setup   func(*mocks.OrderRepository)
		wantErr error
	}{
		{
			name:   "by status",
			filter: domain.OrderFilter{Status: domain.StatusPreparing, Limit: 3},
			setup: func(m *mocks.OrderRepository) {
				m.On("ListOrders", mock.Anything, tenantID, domain.OrderFilter{Status: domain.StatusPreparing, Limit: 3}).
					Return([]domain.Order{{Status: domain.StatusPreparing}}, nil).Once()
			},
		},
		{
			name:    "unknown status",
			filter:  domain.OrderFilter{Status: "lost"},
			setup:   func(*mocks.OrderRepository) {},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "negative limit",
			filter:  domain.OrderFilter{Limit: -1},
			setup:   func(*mocks.OrderRepository) {},
			wantErr: domain.ErrValidation,
		},
		{
			name:   "storage failure",
			filter: domain.OrderFilter{},
			setup: func(m *mocks.OrderRepository) {
				m.On("ListOrders", mock.Anything, tenantID, domain.OrderFilter{}).Return(nil, errors.New("timeout")).Once()
			},
			wantErr: domain.ErrPersistence,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			testCase.setup(repo)
			svc := service.NewOrderService(repo, nil, nil)

			orders, err := svc.List(context.Background(), domain.Scope{TenantID: tenantID}, testCase.filter)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, orders, 1)
		})
	}
}

func TestOrderService_GetHidesOtherTenants(t *testing.T) {
	orderID := uuid.New()
	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrder", mock.Anything, orderID).Return(&domain.Order{ID: orderID, TenantID: uuid.New()}, nil).Once()

	svc := service.NewOrderService(repo, nil, nil)
	_, err := svc.Get(context.Background(), domain.Scope{TenantID: uuid.New()}, orderID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderService_QRCode(t *testing.T) {
	orderID := uuid.New()
	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	repo.On("GetOrder", mock.Anything, orderID).Return(&domain.Order{ID: orderID}, nil).Once()
	qr.On("Generate", orderID).Return([]byte("png"), nil).Once()

	svc := service.NewOrderService(repo, nil, qr)
	png, err := svc.QRCode(context.Background(), domain.Scope{}, orderID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}
	png, err := gen.Generate(uuid.New())

	assert.NoError(t, err)
	assert.NotEmpty(t, png)
}

// memoryOrders serializes transactions with a mutex the way row locks
// serialize them in PostgreSQL.
type memoryOrders struct {
	mu        sync.Mutex
	seq       map[uuid.UUID]int64
	orders    map[uuid.UUID]domain.Order
	customers map[uuid.UUID]*domain.Customer
}

type memoryTx struct {
	store   *memoryOrders
	pending []domain.Order
	deltas  map[uuid.UUID]decimal.Decimal
}

func newMemoryOrders(customers ...*domain.Customer) *memoryOrders {
	m := &memoryOrders{
		seq:       map[uuid.UUID]int64{},
		orders:    map[uuid.UUID]domain.Order{},
		customers: map[uuid.UUID]*domain.Customer{},
	}
	for _, c := range customers {
		m.customers[c.ID] = c
	}
	return m
}

func (m *memoryOrders) WithinTx(ctx context.Context, fn func(tx service.OrderTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryTx{store: m, deltas: map[uuid.UUID]decimal.Decimal{}}
	seqBefore := make(map[uuid.UUID]int64, len(m.seq))
	for k, v := range m.seq {
		seqBefore[k] = v
	}
	if err := fn(tx); err != nil {
		m.seq = seqBefore
		return err
	}
	for _, o := range tx.pending {
		m.orders[o.ID] = o
	}
	for id, total := range tx.deltas {
		c := m.customers[id]
		c.TotalOrders++
		c.TotalSpent = c.TotalSpent.Add(total)
	}
	return nil
}

func (m *memoryOrders) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "order", ID: orderID.String()}
	}
	return &o, nil
}

func (m *memoryOrders) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.Status, at time.Time) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "order", ID: orderID.String()}
	}
	o.Status = status
	o.UpdatedAt = at
	if status == domain.StatusReady && o.PreparedAt == nil {
		o.PreparedAt = &at
	}
	if status == domain.StatusDelivered && o.DeliveredAt == nil {
		o.DeliveredAt = &at
	}
	m.orders[orderID] = o
	return &o, nil
}

func (m *memoryOrders) ListOrders(ctx context.Context, tenantID uuid.UUID, filter domain.OrderFilter) ([]domain.Order, error) {
	return nil, nil
}

func (tx *memoryTx) NextOrderNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	tx.store.seq[tenantID]++
	return domain.FormatOrderNumber(tx.store.seq[tenantID]), nil
}

func (tx *memoryTx) InsertOrder(ctx context.Context, order *domain.Order) error {
	if _, ok := tx.store.customers[order.CustomerID]; !ok {
		return &domain.NotFoundError{Entity: "customer", ID: order.CustomerID.String()}
	}
	tx.pending = append(tx.pending, *order)
	return nil
}

func (tx *memoryTx) IncrementCustomerAggregate(ctx context.Context, tenantID, customerID uuid.UUID, total decimal.Decimal, at time.Time) (int64, error) {
	c, ok := tx.store.customers[customerID]
	if !ok || c.TenantID != tenantID {
		return 0, nil
	}
	tx.deltas[customerID] = tx.deltas[customerID].Add(total)
	return 1, nil
}

func TestOrderService_ConcurrentCreatesKeepAggregates(t *testing.T) {
	tenantID := uuid.New()
	customer := &domain.Customer{ID: uuid.New(), TenantID: tenantID, TotalOrders: 3, TotalSpent: money("120.00")}
	store := newMemoryOrders(customer)
	svc := service.NewOrderService(store, nil, nil)

	totals := []string{"10.00", "20.00"}
	var wg sync.WaitGroup
	errs := make([]error, len(totals))
	for i, price := range totals {
		wg.Add(1)
		go func(i int, price string) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), domain.Scope{TenantID: tenantID}, domain.NewOrder{
				CustomerID:      customer.ID,
				Items:           []domain.LineItem{{MenuItemID: uuid.New(), Name: "Esfiha", Quantity: 1, Price: money(price)}},
				PaymentMethod:   "pix",
				DeliveryAddress: domain.Address{Street: "Rua B", City: "Curitiba"},
			})
		}(i, price)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 5, customer.TotalOrders)
	assert.Equal(t, "150.00", customer.TotalSpent.StringFixed(2))
	assert.Len(t, store.orders, 2)
}

func TestOrderService_AggregatesMatchOrderSum(t *testing.T) {
	tenantID := uuid.New()
	customer := &domain.Customer{ID: uuid.New(), TenantID: tenantID}
	store := newMemoryOrders(customer)
	svc := service.NewOrderService(store, nil, nil)

	var wg sync.WaitGroup
	for i := 1; i <= 25; i++ {
		wg.Add(1)
		go func(qty int) {
			defer wg.Done()
			_, err := svc.Create(context.Background(), domain.Scope{TenantID: tenantID}, domain.NewOrder{
				CustomerID:      customer.ID,
				Items:           []domain.LineItem{{MenuItemID: uuid.New(), Name: "Calzone", Quantity: qty, Price: money("3.33")}},
				DeliveryFee:     money("1.50"),
				PaymentMethod:   "credit",
				DeliveryAddress: domain.Address{Street: "Rua C", City: "Natal"},
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	sum := decimal.Zero
	numbers := map[string]bool{}
	for _, o := range store.orders {
		sum = sum.Add(o.Total)
		numbers[o.OrderNumber] = true
	}
	assert.Equal(t, len(store.orders), customer.TotalOrders)
	assert.True(t, sum.Equal(customer.TotalSpent), "sum %s spent %s", sum, customer.TotalSpent)
	assert.Len(t, numbers, 25)
}

func TestOrderService_LifecycleTimestamps(t *testing.T) {
	tenantID := uuid.New()
	customer := &domain.Customer{ID: uuid.New(), TenantID: tenantID}
	store := newMemoryOrders(customer)

	clock := fixedNow
	svc := service.NewOrderService(store, nil, nil).WithClock(func() time.Time { return clock })

	order, err := svc.Create(context.Background(), domain.Scope{TenantID: tenantID}, scenarioAOrder(customer.ID))
	require.NoError(t, err)

	clock = fixedNow.Add(10 * time.Minute)
	_, err = svc.UpdateStatus(context.Background(), domain.Scope{}, order.ID, "ready")
	require.NoError(t, err)

	clock = fixedNow.Add(20 * time.Minute)
	again, err := svc.UpdateStatus(context.Background(), domain.Scope{}, order.ID, "ready")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(10*time.Minute), *again.PreparedAt)

	clock = fixedNow.Add(35 * time.Minute)
	done, err := svc.UpdateStatus(context.Background(), domain.Scope{}, order.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(35*time.Minute), *done.DeliveredAt)
	assert.Equal(t, 35.0, done.DeliveredAt.Sub(done.CreatedAt).Minutes())

	_, err = svc.UpdateStatus(context.Background(), domain.Scope{}, order.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, 1, customer.TotalOrders, "cancelling keeps the aggregate")
}
