package impl

import (
	"context"
	"testing"
	"time"

	"commerce/internal/domain/constants"
	"commerce/internal/domain/entity"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/domain/repository"
	"commerce/internal/domain/service"
	"commerce/internal/errors"
	mockRepo "commerce/internal/mocks/repository"
	mockSvc "commerce/internal/mocks/service"
	"commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC)

type orderServiceFixtures struct {
	srv         *orderService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	txOrderRepo *mockRepo.MockOrderRepository
	catalogRepo *mockRepo.MockCatalogRepository
	cartRepo    *mockRepo.MockCartRepository
	publisher   *mockSvc.MockEventPublisher
	metrics     *mockSvc.MockCommerceMetrics
}

func createTestOrderService(t *testing.T, pricePolicy string) *orderServiceFixtures {
	f := &orderServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		txOrderRepo: mockRepo.NewMockOrderRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		metrics:     mockSvc.NewMockCommerceMetrics(t),
	}
	f.srv = NewOrderService(OrderServiceParams{
		TxManager: f.txManager,
		OrderRepo: f.orderRepo,
		Publisher: f.publisher,
		Metrics:   f.metrics,
		Config:    newTestConfig(pricePolicy),
		Logger:    newDiscardLogger(),
	}).(*orderService)
	f.srv.now = func() time.Time { return fixedNow }

	return f
}

func (f *orderServiceFixtures) inTransaction() {
	expectTransactions(f.txManager, f.factory)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo).Maybe()
	f.factory.EXPECT().OrderRepo().Return(f.txOrderRepo).Maybe()
	f.factory.EXPECT().CartRepo().Return(f.cartRepo).Maybe()
}

func (f *orderServiceFixtures) expectPublished(eventType string) *service.OrderEvent {
	event := &service.OrderEvent{}
	f.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.Type == eventType })).
		RunAndReturn(func(_ context.Context, e *service.OrderEvent) error {
			*event = *e

			return nil
		})

	return event
}

func singleLineInput(customerID uuid.UUID, product *entity.Product, quantity int) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		CustomerID: customerID,
		Lines: []*usecase.OrderLineInput{
			{ProductID: product.ID, Quantity: quantity},
		},
		ShippingMethod: "standard",
		PaymentMethod:  "card",
	}
}

func TestOrderService_PlaceOrder_TotalWithAdjustments(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)
	f.inTransaction()

	product := newTestProduct("20.00", 10)
	f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.metrics.EXPECT().OrderPlaced("USD", mock.Anything).Return()
	event := f.expectPublished(service.EventOrderPlaced)

	input := singleLineInput(uuid.New(), product, 3)
	input.TaxAmount = money("4.80")
	input.ShippingAmount = money("5.99")
	input.DiscountAmount = money("10.00")

	order, err := f.srv.PlaceOrder(ctx, input)
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(money("60.00")))
	assert.True(t, order.Total.Equal(money("60.79")), "total %s", order.Total)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "USD", order.Currency)
	assert.Regexp(t, `^ORD-20240309-[0-9A-F]{8}$`, order.OrderNumber)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, order.ID, item.OrderID)
	assert.Equal(t, "Test Product", item.ProductName)
	assert.Equal(t, "TEST-1", item.SKU)
	assert.True(t, item.Total.Equal(money("60.00")))

	assert.Equal(t, order.ID.String(), event.OrderID)
	assert.Equal(t, "60.79", event.Total)
	require.Len(t, event.Items, 1)
	assert.Equal(t, 3, event.Items[0].Quantity)
}

func TestOrderService_PlaceOrder_TotalNeverNegative(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)
	f.inTransaction()

	product := newTestProduct("10.00", 10)
	f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.metrics.EXPECT().OrderPlaced("USD", mock.Anything).Return()
	f.expectPublished(service.EventOrderPlaced)

	input := singleLineInput(uuid.New(), product, 1)
	input.DiscountAmount = money("50")

	order, err := f.srv.PlaceOrder(ctx, input)
	require.NoError(t, err)
	assert.True(t, order.Subtotal.Equal(money("10")))
	assert.True(t, order.Total.IsZero())
}

// One unavailable line among three aborts the order before anything is written.
func TestOrderService_PlaceOrder_UnavailableLineAbortsWholeOrder(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)
	f.inTransaction()

	first := newTestProduct("5.00", 10)
	second := newTestProduct("7.00", 1)
	third := newTestProduct("9.00", 10)
	cartLineID := uuid.New()

	f.catalogRepo.EXPECT().LockProductForCheckout(ctx, first.ID).Return(first, nil)
	f.catalogRepo.EXPECT().LockProductForCheckout(ctx, second.ID).Return(second, nil)
	f.metrics.EXPECT().CheckoutRejected("INSUFFICIENT_STOCK").Return()

	input := &usecase.PlaceOrderInput{
		CustomerID: uuid.New(),
		Lines: []*usecase.OrderLineInput{
			{ProductID: first.ID, Quantity: 1},
			{ProductID: second.ID, Quantity: 2, CartLineID: &cartLineID},
			{ProductID: third.ID, Quantity: 1},
		},
	}

	order, err := f.srv.PlaceOrder(ctx, input)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 1, stockErr.LineIndex)
	assert.Equal(t, second.ID, stockErr.ProductID)
	assert.Equal(t, &cartLineID, stockErr.CartLineID)
	assert.Equal(t, 2, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)

	f.txOrderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	f.catalogRepo.AssertNotCalled(t, "LockProductForCheckout", ctx, third.ID)
}

func TestOrderService_PlaceOrder_RepeatedItemSharesStock(t *testing.T) {
	ctx := context.Background()

	t.Run("same product across lines exceeds stock", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		f.inTransaction()
		product := newTestProduct("4.00", 6)
		f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
		f.metrics.EXPECT().CheckoutRejected("INSUFFICIENT_STOCK").Return()

		input := singleLineInput(uuid.New(), product, 5)
		input.Lines = append(input.Lines, &usecase.OrderLineInput{ProductID: product.ID, Quantity: 5})

		order, err := f.srv.PlaceOrder(ctx, input)
		require.Error(t, err)
		assert.Nil(t, order)

		stockErr, ok := errors.AsType[*domainerrors.InsufficientStockError](err)
		require.True(t, ok)
		assert.Equal(t, 1, stockErr.LineIndex)
		assert.Equal(t, 10, stockErr.Requested)
		assert.Equal(t, 6, stockErr.Available)
		f.txOrderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("different variants draw on their own stock", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		f.inTransaction()
		product := newTestProduct("4.00", 0)
		small := addTestVariant(product, "Small", "4.00", 5, nil)
		large := addTestVariant(product, "Large", "5.00", 5, nil)
		f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
		f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		f.metrics.EXPECT().OrderPlaced("USD", mock.Anything).Return()
		f.expectPublished(service.EventOrderPlaced)

		input := &usecase.PlaceOrderInput{
			CustomerID: uuid.New(),
			Lines: []*usecase.OrderLineInput{
				{ProductID: product.ID, VariantID: &small.ID, Quantity: 5},
				{ProductID: product.ID, VariantID: &large.ID, Quantity: 5},
			},
		}

		order, err := f.srv.PlaceOrder(ctx, input)
		require.NoError(t, err)
		require.Len(t, order.Items, 2)
		assert.True(t, order.Subtotal.Equal(money("45.00")), "subtotal %s", order.Subtotal)
	})
}

func TestOrderService_PlaceOrder_InactiveAndMissingProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive product reports zero available", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		f.inTransaction()
		product := newTestProduct("5.00", 10)
		product.Active = false
		f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
		f.metrics.EXPECT().CheckoutRejected("INSUFFICIENT_STOCK").Return()

		_, err := f.srv.PlaceOrder(ctx, singleLineInput(uuid.New(), product, 1))
		var stockErr *domainerrors.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, 0, stockErr.Available)
	})

	t.Run("missing product", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		f.inTransaction()
		productID := uuid.New()
		f.catalogRepo.EXPECT().LockProductForCheckout(ctx, productID).Return(nil, repository.ErrProductNotFound)
		f.metrics.EXPECT().CheckoutRejected("PRODUCT_NOT_FOUND").Return()

		_, err := f.srv.PlaceOrder(ctx, singleLineInput(uuid.New(), &entity.Product{ID: productID}, 1))
		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})
}

func TestOrderService_PlaceOrder_PricePolicy(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		policy    string
		wantPrice string
	}{
		{name: "snapshot honors the line price", policy: constants.PricePolicySnapshot, wantPrice: "18.00"},
		{name: "live re-prices from the catalog", policy: constants.PricePolicyLive, wantPrice: "25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t, tt.policy)
			f.inTransaction()

			product := newTestProduct("25.00", 10)
			f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
			f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
			f.metrics.EXPECT().OrderPlaced("USD", mock.Anything).Return()
			f.expectPublished(service.EventOrderPlaced)

			input := singleLineInput(uuid.New(), product, 2)
			input.Lines[0].Price = moneyPtr("18")

			order, err := f.srv.PlaceOrder(ctx, input)
			require.NoError(t, err)
			assert.True(t, order.Items[0].Price.Equal(money(tt.wantPrice)))
			assert.True(t, order.Total.Equal(money(tt.wantPrice).Mul(decimal.NewFromInt(2))))
		})
	}
}

func TestOrderService_PlaceOrder_VariantSnapshot(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)
	f.inTransaction()

	product := newTestProduct("20.00", 0)
	variant := addTestVariant(product, "Large", "22.50", 4, map[string]string{"size": "L"})
	f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.metrics.EXPECT().OrderPlaced("EUR", mock.Anything).Return()
	f.expectPublished(service.EventOrderPlaced)

	input := &usecase.PlaceOrderInput{
		CustomerID: uuid.New(),
		Lines:      []*usecase.OrderLineInput{{ProductID: product.ID, VariantID: &variant.ID, Quantity: 4}},
		Currency:   " eur ",
	}

	order, err := f.srv.PlaceOrder(ctx, input)
	require.NoError(t, err)

	item := order.Items[0]
	assert.Equal(t, "EUR", order.Currency)
	assert.Equal(t, variant.ID, *item.VariantID)
	assert.Equal(t, "Large", item.VariantName)
	assert.Equal(t, "TEST-1-LARGE", item.SKU)
	assert.Equal(t, "L", item.Attributes["size"])
	assert.True(t, item.Total.Equal(money("90.00")))

	// Later catalog edits do not reach the placed order.
	variant.Price = money("99.00")
	variant.Name = "Renamed"
	assert.True(t, item.Price.Equal(money("22.50")))
	assert.Equal(t, "Large", item.VariantName)
}

func TestOrderService_PlaceOrder_InputValidation(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	tests := []struct {
		name     string
		input    *usecase.PlaceOrderInput
		wantErr  error
		wantCode string
	}{
		{
			name:     "no lines",
			input:    &usecase.PlaceOrderInput{CustomerID: uuid.New()},
			wantErr:  domainerrors.ErrEmptyCart,
			wantCode: "EMPTY_CART",
		},
		{
			name:     "missing customer",
			input:    &usecase.PlaceOrderInput{Lines: []*usecase.OrderLineInput{{ProductID: productID, Quantity: 1}}},
			wantErr:  domainerrors.ErrValidationFailed,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name: "zero quantity",
			input: &usecase.PlaceOrderInput{
				CustomerID: uuid.New(),
				Lines:      []*usecase.OrderLineInput{{ProductID: productID, Quantity: 0}},
			},
			wantErr:  domainerrors.ErrInvalidQuantity,
			wantCode: "INVALID_QUANTITY",
		},
		{
			name: "negative discount",
			input: &usecase.PlaceOrderInput{
				CustomerID:        uuid.New(),
				Lines:             []*usecase.OrderLineInput{{ProductID: productID, Quantity: 1}},
				OrderAmountsInput: usecase.OrderAmountsInput{DiscountAmount: money("-1")},
			},
			wantErr:  domainerrors.ErrValidationFailed,
			wantCode: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t, constants.PricePolicySnapshot)
			f.metrics.EXPECT().CheckoutRejected(tt.wantCode).Return()

			_, err := f.srv.PlaceOrder(ctx, tt.input)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestOrderService_PlaceOrder_OrderNumberConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("generated number is retried", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		f.inTransaction()
		numbers := []string{"ORD-A", "ORD-B"}
		f.srv.orderNumber = func(time.Time) string {
			n := numbers[0]
			numbers = numbers[1:]

			return n
		}

		product := newTestProduct("1.00", 10)
		f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
		f.txOrderRepo.EXPECT().
			CreateOrder(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.OrderNumber == "ORD-A" })).
			Return(repository.ErrOrderNumberTaken).Once()
		f.txOrderRepo.EXPECT().
			CreateOrder(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.OrderNumber == "ORD-B" })).
			Return(nil).Once()
		f.metrics.EXPECT().TransactionRetried("place_order").Return().Once()
		f.metrics.EXPECT().OrderPlaced("USD", mock.Anything).Return()
		f.expectPublished(service.EventOrderPlaced)

		order, err := f.srv.PlaceOrder(ctx, singleLineInput(uuid.New(), product, 1))
		require.NoError(t, err)
		assert.Equal(t, "ORD-B", order.OrderNumber)
	})

	t.Run("caller supplied number is not retried", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		f.inTransaction()

		product := newTestProduct("1.00", 10)
		f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
		f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(repository.ErrOrderNumberTaken).Once()
		f.metrics.EXPECT().CheckoutRejected("ORDER_NUMBER_CONFLICT").Return()

		input := singleLineInput(uuid.New(), product, 1)
		input.OrderNumber = "ORD-FIXED"

		_, err := f.srv.PlaceOrder(ctx, input)
		assert.True(t, errors.Is(err, domainerrors.ErrOrderNumberConflict))
	})
}

func TestOrderService_PlaceOrder_TransactionRetryBudget(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)

	attempts := 0
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(context.Context, func(repository.RepositoryFactory) error) error {
			attempts++

			return domainerrors.ErrTransactionFailed.WithDetails("deadlock detected")
		})
	f.metrics.EXPECT().TransactionRetried("place_order").Return().Times(2)
	f.metrics.EXPECT().CheckoutRejected("TRANSACTION_FAILED").Return()

	_, err := f.srv.PlaceOrder(ctx, singleLineInput(uuid.New(), newTestProduct("1.00", 1), 1))
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
	assert.Equal(t, 3, attempts)
}

func TestOrderService_PlaceOrder_PublishFailureKeepsOrder(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)
	f.inTransaction()

	product := newTestProduct("3.00", 10)
	f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.metrics.EXPECT().OrderPlaced("USD", mock.Anything).Return()
	f.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := f.srv.PlaceOrder(ctx, singleLineInput(uuid.New(), product, 1))
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Checkout_ConsumesCartLines(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)
	f.inTransaction()

	customerID := uuid.New()
	owner := entity.UserOwner(customerID)
	product := newTestProduct("20.00", 10)
	line := &entity.CartLine{
		ID:        uuid.New(),
		Owner:     owner,
		ProductID: product.ID,
		Quantity:  3,
		Price:     money("20.00"),
	}

	// Re-pricing the catalog after the line was added does not change the order.
	product.Price = money("30.00")

	f.cartRepo.EXPECT().FindLinesByOwner(ctx, owner).Return([]*entity.CartLine{line}, nil)
	f.catalogRepo.EXPECT().LockProductForCheckout(ctx, product.ID).Return(product, nil)
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.cartRepo.EXPECT().DeleteLines(ctx, owner, []uuid.UUID{line.ID}).Return(int64(1), nil)
	f.metrics.EXPECT().OrderPlaced("USD", mock.Anything).Return()
	f.expectPublished(service.EventOrderPlaced)

	order, err := f.srv.Checkout(ctx, &usecase.CheckoutInput{
		Owner:             owner,
		CustomerID:        customerID,
		OrderAmountsInput: usecase.OrderAmountsInput{TaxAmount: money("4.80"), ShippingAmount: money("5.99"), DiscountAmount: money("10")},
	})
	require.NoError(t, err)
	assert.True(t, order.Items[0].Price.Equal(money("20.00")))
	assert.True(t, order.Total.Equal(money("60.79")))
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)
	f.inTransaction()

	owner := entity.SessionOwner("guest")
	f.cartRepo.EXPECT().FindLinesByOwner(ctx, owner).Return(nil, nil)
	f.metrics.EXPECT().CheckoutRejected("EMPTY_CART").Return()

	_, err := f.srv.Checkout(ctx, &usecase.CheckoutInput{Owner: owner, CustomerID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func placedOrder(subtotal, tax, shipping, discount string) *entity.Order {
	item := &entity.OrderItem{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Quantity:  1,
		Price:     money(subtotal),
		Total:     money(subtotal),
	}
	order := &entity.Order{
		ID:             uuid.New(),
		OrderNumber:    "ORD-20240309-0000CAFE",
		CustomerID:     uuid.New(),
		Status:         entity.OrderStatusPending,
		PaymentStatus:  entity.PaymentStatusPending,
		Subtotal:       money(subtotal),
		TaxAmount:      money(tax),
		ShippingAmount: money(shipping),
		DiscountAmount: money(discount),
		Currency:       "USD",
		Items:          []*entity.OrderItem{item},
	}
	item.OrderID = order.ID
	order.Total = money(subtotal).Add(money(tax)).Add(money(shipping)).Sub(money(discount))

	return order
}

func TestOrderService_RecalculateTotal_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)
	f.inTransaction()

	order := placedOrder("60.00", "4.80", "5.99", "10.00")
	order.Total = money("1.00")

	f.txOrderRepo.EXPECT().LockOrderByID(ctx, order.ID).Return(order, nil).Times(2)
	f.txOrderRepo.EXPECT().UpdateOrderAmounts(ctx, order).Return(nil).Once()

	first, err := f.srv.RecalculateTotal(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, first.Total.Equal(money("60.79")))

	second, err := f.srv.RecalculateTotal(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, second.Total.Equal(money("60.79")))
}

func TestOrderService_RecalculateTotal_NotFound(t *testing.T) {
	ctx := context.Background()
	f := createTestOrderService(t, constants.PricePolicySnapshot)
	f.inTransaction()

	id := uuid.New()
	f.txOrderRepo.EXPECT().LockOrderByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := f.srv.RecalculateTotal(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_AdjustOrderAmounts(t *testing.T) {
	ctx := context.Background()

	t.Run("applies amounts and recalculates", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		f.inTransaction()
		order := placedOrder("10.00", "0", "0", "0")
		f.txOrderRepo.EXPECT().LockOrderByID(ctx, order.ID).Return(order, nil)
		f.txOrderRepo.EXPECT().UpdateOrderAmounts(ctx, order).Return(nil)
		f.expectPublished(service.EventOrderAmountsAdjusted)

		updated, err := f.srv.AdjustOrderAmounts(ctx, order.ID, &usecase.AdjustAmountsInput{
			DiscountAmount: moneyPtr("50"),
		})
		require.NoError(t, err)
		assert.True(t, updated.DiscountAmount.Equal(money("50")))
		assert.True(t, updated.Total.IsZero())
		assert.True(t, updated.Subtotal.Equal(money("10.00")))
	})

	t.Run("requires an amount", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)

		_, err := f.srv.AdjustOrderAmounts(ctx, uuid.New(), &usecase.AdjustAmountsInput{})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)

		_, err := f.srv.AdjustOrderAmounts(ctx, uuid.New(), &usecase.AdjustAmountsInput{TaxAmount: moneyPtr("-0.01")})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		wantErr error
	}{
		{name: "pending to processing", from: entity.OrderStatusPending, to: entity.OrderStatusProcessing},
		{name: "processing to shipped", from: entity.OrderStatusProcessing, to: entity.OrderStatusShipped},
		{name: "shipped to delivered", from: entity.OrderStatusShipped, to: entity.OrderStatusDelivered},
		{name: "pending to cancelled", from: entity.OrderStatusPending, to: entity.OrderStatusCancelled},
		{name: "shipped to refunded", from: entity.OrderStatusShipped, to: entity.OrderStatusRefunded},
		{name: "pending to shipped skips a step", from: entity.OrderStatusPending, to: entity.OrderStatusShipped, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "delivered is terminal", from: entity.OrderStatusDelivered, to: entity.OrderStatusCancelled, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "cancelled is terminal", from: entity.OrderStatusCancelled, to: entity.OrderStatusProcessing, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "same status", from: entity.OrderStatusProcessing, to: entity.OrderStatusProcessing, wantErr: domainerrors.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t, constants.PricePolicySnapshot)
			f.inTransaction()

			order := placedOrder("10.00", "0", "0", "0")
			order.Status = tt.from
			f.txOrderRepo.EXPECT().LockOrderByID(ctx, order.ID).Return(order, nil)

			if tt.wantErr == nil {
				f.txOrderRepo.EXPECT().UpdateOrderStatus(ctx, order).Return(nil)
				f.expectPublished(service.EventOrderStatusChanged)
			}

			updated, err := f.srv.UpdateOrderStatus(ctx, order.ID, &usecase.UpdateOrderStatusInput{Status: tt.to, TrackingNumber: " 1Z999 "})
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
			assert.Equal(t, "1Z999", updated.TrackingNumber)
			switch tt.to {
			case entity.OrderStatusShipped:
				require.NotNil(t, updated.ShippedAt)
				assert.Equal(t, fixedNow, *updated.ShippedAt)
			case entity.OrderStatusDelivered:
				assert.NotNil(t, updated.DeliveredAt)
			case entity.OrderStatusCancelled:
				assert.NotNil(t, updated.CancelledAt)
			}
		})
	}
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	f := createTestOrderService(t, constants.PricePolicySnapshot)

	_, err := f.srv.UpdateOrderStatus(context.Background(), uuid.New(), &usecase.UpdateOrderStatusInput{Status: "lost"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to paid", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		f.inTransaction()
		order := placedOrder("10.00", "0", "0", "0")
		f.txOrderRepo.EXPECT().LockOrderByID(ctx, order.ID).Return(order, nil)
		f.txOrderRepo.EXPECT().UpdateOrderStatus(ctx, order).Return(nil)
		event := f.expectPublished(service.EventOrderPaymentStatusChanged)

		updated, err := f.srv.UpdatePaymentStatus(ctx, order.ID, entity.PaymentStatusPaid)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
		assert.Equal(t, "paid", event.PaymentStatus)
		assert.Empty(t, event.Items)
	})

	t.Run("failed cannot become paid", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		f.inTransaction()
		order := placedOrder("10.00", "0", "0", "0")
		order.PaymentStatus = entity.PaymentStatusFailed
		f.txOrderRepo.EXPECT().LockOrderByID(ctx, order.ID).Return(order, nil)

		_, err := f.srv.UpdatePaymentStatus(ctx, order.ID, entity.PaymentStatusPaid)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("consistent order", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		order := placedOrder("60.00", "4.80", "5.99", "10.00")
		f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

		got, err := f.srv.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.True(t, got.Total.Equal(money("60.79")))
	})

	t.Run("inconsistent stored total", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		order := placedOrder("60.00", "4.80", "5.99", "10.00")
		order.Total = money("70.79")
		f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

		_, err := f.srv.GetOrder(ctx, order.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrInconsistentTotals))
	})

	t.Run("missing order", func(t *testing.T) {
		f := createTestOrderService(t, constants.PricePolicySnapshot)
		id := uuid.New()
		f.orderRepo.EXPECT().FindOrderByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

		_, err := f.srv.GetOrder(ctx, id)
		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}

func TestOrderService_ListCustomerOrders_ClampsPaging(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{name: "defaults", limit: 0, offset: -5, wantLimit: 20, wantOffset: 0},
		{name: "caps the limit", limit: 500, offset: 40, wantLimit: 100, wantOffset: 40},
		{name: "keeps valid values", limit: 10, offset: 10, wantLimit: 10, wantOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t, constants.PricePolicySnapshot)
			f.orderRepo.EXPECT().FindOrdersByCustomer(ctx, customerID, tt.wantLimit, tt.wantOffset).Return(nil, int64(0), nil)

			out, err := f.srv.ListCustomerOrders(ctx, customerID, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, out.Limit)
			assert.Equal(t, tt.wantOffset, out.Offset)
		})
	}
}
