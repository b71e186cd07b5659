package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"commerce/config"
	deliverycontext "commerce/internal/delivery/context"
	"commerce/internal/domain/constants"
	"commerce/internal/domain/entity"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/domain/lifecycle"
	"commerce/internal/domain/pricing"
	"commerce/internal/domain/repository"
	"commerce/internal/domain/service"
	"commerce/internal/errors"
	"commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultOrderListLimit = 20
	maxOrderListLimit     = 100
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	publisher       service.EventPublisher
	metrics         service.CommerceMetrics
	retrier         *txRetrier
	pricePolicy     string
	defaultCurrency string
	logger          *slog.Logger
	now             func() time.Time
	orderNumber     func(time.Time) string
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Metrics   service.CommerceMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	pricePolicy := constants.PricePolicySnapshot
	defaultCurrency := constants.DefaultCurrency
	if params.Config != nil && params.Config.Checkout != nil {
		if params.Config.Checkout.PricePolicy != "" {
			pricePolicy = params.Config.Checkout.PricePolicy
		}
		if params.Config.Checkout.DefaultCurrency != "" {
			defaultCurrency = params.Config.Checkout.DefaultCurrency
		}
	}

	return &orderService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		publisher:       params.Publisher,
		metrics:         params.Metrics,
		retrier:         newTxRetrier(params.Config, params.Metrics, params.Logger),
		pricePolicy:     pricePolicy,
		defaultCurrency: defaultCurrency,
		logger:          params.Logger,
		now:             time.Now,
		orderNumber:     newOrderNumber,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the lines against the catalog and persists the order atomically.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := srv.validatePlaceOrderInput(input); err != nil {
		srv.recordRejection(err)

		return nil, err
	}

	return srv.placeOrder(ctx, "place_order", strings.TrimSpace(input.OrderNumber) == "",
		func(repository.RepositoryFactory) (*usecase.PlaceOrderInput, error) {
			return input, nil
		})
}

// Checkout turns every line of the owner's cart into an order and empties the cart.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if !input.Owner.IsValid() {
		return nil, domainerrors.ErrInvalidOwner
	}

	return srv.placeOrder(ctx, "checkout", true, func(repoFactory repository.RepositoryFactory) (*usecase.PlaceOrderInput, error) {
		lines, err := repoFactory.CartRepo().FindLinesByOwner(ctx, input.Owner)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load cart lines")
		}

		owner := input.Owner
		placeInput := &usecase.PlaceOrderInput{
			CustomerID:        input.CustomerID,
			Lines:             make([]*usecase.OrderLineInput, 0, len(lines)),
			ShippingMethod:    input.ShippingMethod,
			PaymentMethod:     input.PaymentMethod,
			OrderAmountsInput: input.OrderAmountsInput,
			Currency:          input.Currency,
			Notes:             input.Notes,
			CartOwner:         &owner,
		}
		for _, line := range lines {
			lineID := line.ID
			price := line.Price
			placeInput.Lines = append(placeInput.Lines, &usecase.OrderLineInput{
				CartLineID: &lineID,
				ProductID:  line.ProductID,
				VariantID:  line.VariantID,
				Quantity:   line.Quantity,
				Price:      &price,
				Attributes: line.Attributes,
			})
		}

		if err := srv.validatePlaceOrderInput(placeInput); err != nil {
			return nil, err
		}

		return placeInput, nil
	})
}

// placeOrder runs the assembly pipeline in a retried transaction. build supplies the
// input from inside the transaction. Only auto-generated order numbers are retried on collision.
func (srv *orderService) placeOrder(
	ctx context.Context,
	operation string,
	autoNumber bool,
	build func(repository.RepositoryFactory) (*usecase.PlaceOrderInput, error),
) (*entity.Order, error) {
	retryable := func(err error) bool {
		return isTransactionFailure(err) || (autoNumber && errors.Is(err, domainerrors.ErrOrderNumberConflict))
	}

	var order *entity.Order
	err := srv.retrier.Do(ctx, operation, retryable, func() error {
		order = nil

		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			input, err := build(repoFactory)
			if err != nil {
				return err
			}

			assembled, err := srv.assembleOrder(ctx, repoFactory.CatalogRepo(), input)
			if err != nil {
				return err
			}

			if err := repoFactory.OrderRepo().CreateOrder(ctx, assembled); err != nil {
				if errors.Is(err, repository.ErrOrderNumberTaken) {
					return domainerrors.ErrOrderNumberConflict.WithDetailsf("order number %s", assembled.OrderNumber)
				}

				return errors.Wrap(err, "failed to create order")
			}

			if input.CartOwner != nil {
				if err := consumeCartLines(ctx, repoFactory.CartRepo(), *input.CartOwner, input.Lines); err != nil {
					return err
				}
			}

			order = assembled

			return nil
		})
	})
	if err != nil {
		srv.recordRejection(err)
		srv.log(ctx).Warn("Order placement failed", slog.String("operation", operation), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.OrderPlaced(order.Currency, order.Total)
	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("orderNumber", order.OrderNumber),
		slog.String("total", order.Total.StringFixed(pricing.MoneyScale)),
		slog.Int("items", len(order.Items)),
	)
	srv.publish(ctx, service.EventOrderPlaced, order)

	return order, nil
}

// stockKey identifies one stock pool: a variant, or a product without variant.
type stockKey struct {
	productID uuid.UUID
	variantID uuid.UUID
}

// assembleOrder re-validates every line against locked catalog rows and snapshots them.
// Lines for the same item draw on one stock pool, so availability is checked
// against the running total. The first unavailable line aborts the whole order.
func (srv *orderService) assembleOrder(ctx context.Context, catalogRepo repository.CatalogRepository, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	now := srv.now()
	orderID := uuid.New()

	requested := make(map[stockKey]int, len(input.Lines))
	items := make([]*entity.OrderItem, 0, len(input.Lines))
	for i, line := range input.Lines {
		entry, err := lookupEntry(ctx, catalogRepo, line.ProductID, line.VariantID, true)
		if err != nil {
			if errors.Is(err, domainerrors.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetailsf("line %d: product %s", i, line.ProductID)
			}

			return nil, err
		}

		key := stockKey{productID: entry.ProductID}
		if entry.VariantID != nil {
			key.variantID = *entry.VariantID
		}
		requested[key] += line.Quantity

		if !entry.IsAvailable(requested[key]) {
			available := entry.Quantity
			if !entry.Active {
				available = 0
			}

			return nil, &domainerrors.InsufficientStockError{
				LineIndex:  i,
				CartLineID: line.CartLineID,
				ProductID:  line.ProductID,
				VariantID:  line.VariantID,
				SKU:        entry.SKU,
				Requested:  requested[key],
				Available:  available,
			}
		}

		price := entry.UnitPrice
		if line.Price != nil && srv.pricePolicy != constants.PricePolicyLive {
			price = *line.Price
		}
		price = pricing.RoundMoney(price)

		attributes := line.Attributes.Clone()
		if attributes.IsEmpty() {
			attributes = entry.Attributes.Clone()
		}

		items = append(items, &entity.OrderItem{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductID:   entry.ProductID,
			VariantID:   entry.VariantID,
			Quantity:    line.Quantity,
			Price:       price,
			Total:       pricing.LineTotal(price, line.Quantity),
			ProductName: entry.ProductName,
			VariantName: entry.VariantName,
			SKU:         entry.SKU,
			Weight:      entry.Weight,
			Attributes:  attributes,
			CreatedAt:   now,
		})
	}

	orderNumber := strings.TrimSpace(input.OrderNumber)
	if orderNumber == "" {
		orderNumber = srv.orderNumber(now)
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = srv.defaultCurrency
	}

	order := &entity.Order{
		ID:             orderID,
		OrderNumber:    orderNumber,
		CustomerID:     input.CustomerID,
		Status:         entity.OrderStatusPending,
		PaymentStatus:  entity.PaymentStatusPending,
		PaymentMethod:  input.PaymentMethod,
		ShippingMethod: input.ShippingMethod,
		TaxAmount:      pricing.RoundMoney(input.TaxAmount),
		ShippingAmount: pricing.RoundMoney(input.ShippingAmount),
		DiscountAmount: pricing.RoundMoney(input.DiscountAmount),
		Currency:       currency,
		Notes:          input.Notes,
		Items:          items,
		PlacedAt:       now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	order.Subtotal = pricing.Subtotal(items)
	order.Total = pricing.OrderTotal(order.Subtotal, order.TaxAmount, order.ShippingAmount, order.DiscountAmount)

	if err := pricing.ValidateOrder(order); err != nil {
		return nil, err
	}

	return order, nil
}

// consumeCartLines removes the cart lines an order was built from.
func consumeCartLines(ctx context.Context, cartRepo repository.CartRepository, owner entity.CartOwner, lines []*usecase.OrderLineInput) error {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if line.CartLineID != nil {
			ids = append(ids, *line.CartLineID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	if _, err := cartRepo.DeleteLines(ctx, owner, ids); err != nil {
		return errors.Wrap(err, "failed to remove ordered cart lines")
	}

	return nil
}

func (srv *orderService) validatePlaceOrderInput(input *usecase.PlaceOrderInput) error {
	if input.CustomerID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("customer is required")
	}
	if len(input.Lines) == 0 {
		return domainerrors.ErrEmptyCart
	}
	for i, line := range input.Lines {
		if !validLineQuantity(line.Quantity) {
			return domainerrors.ErrInvalidQuantity.WithDetailsf("line %d has quantity %d", i, line.Quantity)
		}
		if line.Price != nil && line.Price.IsNegative() {
			return domainerrors.ErrValidationFailed.WithDetailsf("line %d has a negative price", i)
		}
	}

	return pricing.ValidateAmounts(input.TaxAmount, input.ShippingAmount, input.DiscountAmount)
}

// RecalculateTotal re-derives the total under a row lock. Running it twice changes nothing.
func (srv *orderService) RecalculateTotal(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return srv.mutateOrder(ctx, "recalculate_total", orderID, func(repoFactory repository.RepositoryFactory, order *entity.Order) (bool, error) {
		if !pricing.Recalculate(order) {
			return false, pricing.ValidateOrder(order)
		}
		if err := pricing.ValidateOrder(order); err != nil {
			return false, err
		}
		order.UpdatedAt = srv.now()

		return true, errors.Wrap(repoFactory.OrderRepo().UpdateOrderAmounts(ctx, order), "failed to update order amounts")
	}, "")
}

// AdjustOrderAmounts changes the given adjustable amounts and recalculates the total.
func (srv *orderService) AdjustOrderAmounts(ctx context.Context, orderID uuid.UUID, input *usecase.AdjustAmountsInput) (*entity.Order, error) {
	if input.TaxAmount == nil && input.ShippingAmount == nil && input.DiscountAmount == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one amount must be given")
	}
	if err := pricing.ValidateAmounts(valueOrZero(input.TaxAmount), valueOrZero(input.ShippingAmount), valueOrZero(input.DiscountAmount)); err != nil {
		return nil, err
	}

	return srv.mutateOrder(ctx, "adjust_amounts", orderID, func(repoFactory repository.RepositoryFactory, order *entity.Order) (bool, error) {
		if input.TaxAmount != nil {
			order.TaxAmount = pricing.RoundMoney(*input.TaxAmount)
		}
		if input.ShippingAmount != nil {
			order.ShippingAmount = pricing.RoundMoney(*input.ShippingAmount)
		}
		if input.DiscountAmount != nil {
			order.DiscountAmount = pricing.RoundMoney(*input.DiscountAmount)
		}
		pricing.Recalculate(order)

		if err := pricing.ValidateOrder(order); err != nil {
			return false, err
		}
		order.UpdatedAt = srv.now()

		return true, errors.Wrap(repoFactory.OrderRepo().UpdateOrderAmounts(ctx, order), "failed to update order amounts")
	}, service.EventOrderAmountsAdjusted)
}

// UpdateOrderStatus applies a legal fulfillment transition.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("unknown order status %q", input.Status)
	}

	return srv.mutateOrder(ctx, "update_status", orderID, func(repoFactory repository.RepositoryFactory, order *entity.Order) (bool, error) {
		if !order.Status.CanTransitionTo(input.Status) {
			return false, domainerrors.ErrInvalidStatusTransition.WithDetailsf("%s -> %s", order.Status, input.Status)
		}

		order.ApplyStatus(input.Status, srv.now())
		if tracking := strings.TrimSpace(input.TrackingNumber); tracking != "" {
			order.TrackingNumber = tracking
		}

		return true, errors.Wrap(repoFactory.OrderRepo().UpdateOrderStatus(ctx, order), "failed to update order status")
	}, service.EventOrderStatusChanged)
}

// UpdatePaymentStatus applies a legal payment transition.
func (srv *orderService) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("unknown payment status %q", status)
	}

	return srv.mutateOrder(ctx, "update_payment_status", orderID, func(repoFactory repository.RepositoryFactory, order *entity.Order) (bool, error) {
		if !order.PaymentStatus.CanTransitionTo(status) {
			return false, domainerrors.ErrInvalidStatusTransition.WithDetailsf("payment %s -> %s", order.PaymentStatus, status)
		}

		order.PaymentStatus = status
		order.UpdatedAt = srv.now()

		return true, errors.Wrap(repoFactory.OrderRepo().UpdateOrderStatus(ctx, order), "failed to update payment status")
	}, service.EventOrderPaymentStatusChanged)
}

// mutateOrder locks the order, applies mutate and publishes eventType when mutate
// reports a change. An empty eventType publishes nothing.
func (srv *orderService) mutateOrder(
	ctx context.Context,
	operation string,
	orderID uuid.UUID,
	mutate func(repository.RepositoryFactory, *entity.Order) (bool, error),
	eventType string,
) (*entity.Order, error) {
	var (
		order   *entity.Order
		changed bool
	)
	err := srv.retrier.Do(ctx, operation, nil, func() error {
		order, changed = nil, false

		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			locked, err := repoFactory.OrderRepo().LockOrderByID(ctx, orderID)
			if err != nil {
				if errors.Is(err, repository.ErrOrderNotFound) {
					return domainerrors.ErrOrderNotFound
				}

				return errors.Wrap(err, "failed to lock order")
			}

			changed, err = mutate(repoFactory, locked)
			if err != nil {
				return err
			}
			order = locked

			return nil
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Order update failed",
			slog.String("operation", operation),
			slog.String("orderID", orderID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	if changed && eventType != "" {
		srv.publish(ctx, eventType, order)
	}

	return order, nil
}

// GetOrder returns an order after checking its stored aggregates.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if err := pricing.ValidateOrder(order); err != nil {
		srv.log(ctx).Error("Stored order failed aggregate validation",
			slog.String("orderID", orderID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	return order, nil
}

// ListCustomerOrders returns a page of a customer's orders.
func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) (*usecase.OrderListOutput, error) {
	if limit <= 0 {
		limit = defaultOrderListLimit
	}
	if limit > maxOrderListLimit {
		limit = maxOrderListLimit
	}
	if offset < 0 {
		offset = 0
	}

	orders, total, err := srv.orderRepo.FindOrdersByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return &usecase.OrderListOutput{
		Orders: orders,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// publish sends an order event after commit. Failures are logged only.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		CustomerID:    order.CustomerID.String(),
		Status:        order.Status.String(),
		PaymentStatus: order.PaymentStatus.String(),
		Total:         order.Total.StringFixed(pricing.MoneyScale),
		Currency:      order.Currency,
		OccurredAt:    srv.now().UTC(),
	}
	if eventType == service.EventOrderPlaced {
		for _, item := range order.Items {
			eventItem := service.OrderEventItem{
				ProductID: item.ProductID.String(),
				SKU:       item.SKU,
				Quantity:  item.Quantity,
			}
			if item.VariantID != nil {
				eventItem.VariantID = item.VariantID.String()
			}
			event.Items = append(event.Items, eventItem)
		}
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.publisher.PublishOrderEvent(publishCtx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func (srv *orderService) recordRejection(err error) {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		srv.metrics.CheckoutRejected(appErr.ErrorCode())
	}
}

func valueOrZero(amount *decimal.Decimal) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}

	return *amount
}

func validLineQuantity(quantity int) bool {
	return quantity >= 1 && quantity <= constants.MaxLineQuantity
}
