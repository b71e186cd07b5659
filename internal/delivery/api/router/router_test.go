package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"commerce/config"
	"commerce/internal/delivery/api/middleware"
	"commerce/internal/delivery/api/response"
	"commerce/internal/delivery/api/router/handler"
	"commerce/internal/delivery/api/validator"
	"commerce/internal/domain/entity"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/domain/service"
	"commerce/internal/errors"
	"commerce/internal/infra/metrics"
	mockSvc "commerce/internal/mocks/service"
	mockUC "commerce/internal/mocks/usecase"
	"commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e         *echo.Echo
	cartUC    *mockUC.MockCartUsecase
	orderUC   *mockUC.MockOrderUsecase
	catalogUC *mockUC.MockCatalogUsecase
	tokens    *mockSvc.MockTokenService
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newTestServer(t *testing.T, cfg *config.Config, recorder *metrics.Recorder) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &testServer{
		e:         echo.New(),
		cartUC:    mockUC.NewMockCartUsecase(t),
		orderUC:   mockUC.NewMockOrderUsecase(t),
		catalogUC: mockUC.NewMockCatalogUsecase(t),
		tokens:    mockSvc.NewMockTokenService(t),
	}
	s.e.Validator = validator.New()
	s.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	if cfg == nil {
		cfg = &config.Config{}
	}
	r := NewRouter(RouterParams{
		CartHandler:    handler.NewCartHandler(handler.CartHandlerParams{CartUC: s.cartUC, Logger: logger}),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: s.orderUC, Logger: logger}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: s.catalogUC}),
		AuthMiddleware: middleware.NewAuthMiddleware(s.tokens, logger),
		Metrics:        recorder,
		Config:         cfg,
	})
	r.RegisterRoutes(s.e)

	return s
}

// signIn makes token authenticate as userID with the given roles.
func (s *testServer) signIn(token string, userID uuid.UUID, roles ...string) {
	s.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{UserID: userID, Roles: roles}, nil).Maybe()
}

func (s *testServer) do(t *testing.T, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, *envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	env := &envelope{}
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), env), rec.Body.String())
	}

	return rec, env
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func guest(token string) map[string]string {
	return map[string]string{"X-Session-Token": token}
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec, env := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestMetricsRoute(t *testing.T) {
	recorder := metrics.NewRecorder("test")
	recorder.CartItemAdded(true)

	enabled := newTestServer(t, &config.Config{Metrics: &config.MetricsConfig{Enabled: true}}, recorder)
	rec, _ := enabled.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_cart_items_added_total")

	disabled := newTestServer(t, &config.Config{Metrics: &config.MetricsConfig{Enabled: false}}, recorder)
	rec, _ = disabled.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart_AddItemAsGuest(t *testing.T) {
	s := newTestServer(t, nil, nil)
	productID := uuid.New()

	s.cartUC.EXPECT().
		AddItem(mock.Anything, mock.MatchedBy(func(in *usecase.AddCartItemInput) bool {
			return in.Owner == entity.SessionOwner("guest-1") && in.ProductID == productID && in.Quantity == 3 && in.Price == nil
		})).
		Return(&usecase.AddCartItemOutput{
			Line: &entity.CartLine{ID: uuid.New(), ProductID: productID, Quantity: 3, Price: money("20")},
		}, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"`+productID.String()+`","quantity":3}`, guest("guest-1"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body handler.AddCartItemResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.False(t, body.Merged)
	assert.Equal(t, "20.00", body.Line.Price)
	assert.Equal(t, "60.00", body.Line.LineTotal)
}

func TestCart_AddItemMergedAsUser(t *testing.T) {
	s := newTestServer(t, nil, nil)
	userID := uuid.New()
	s.signIn("user-token", userID, entity.RoleCustomer.String())

	s.cartUC.EXPECT().
		AddItem(mock.Anything, mock.MatchedBy(func(in *usecase.AddCartItemInput) bool {
			return in.Owner == entity.UserOwner(userID) && in.Price != nil && in.Price.Equal(money("12.5"))
		})).
		Return(&usecase.AddCartItemOutput{
			Line:   &entity.CartLine{ID: uuid.New(), Quantity: 3, Price: money("12.5")},
			Merged: true,
		}, nil)

	headers := bearer("user-token")
	headers["X-Session-Token"] = "ignored-when-signed-in"
	rec, env := s.do(t, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"`+uuid.NewString()+`","quantity":2,"price":"12.5"}`, headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body handler.AddCartItemResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.True(t, body.Merged)
	assert.Equal(t, "37.50", body.Line.LineTotal)
}

func TestCart_AddItemRejectsBadInput(t *testing.T) {
	s := newTestServer(t, nil, nil)

	t.Run("no owner", func(t *testing.T) {
		rec, env := s.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+uuid.NewString()+`","quantity":1}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_CART_OWNER", env.Error.Code)
	})

	t.Run("zero quantity", func(t *testing.T) {
		rec, env := s.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+uuid.NewString()+`","quantity":0}`, guest("g"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "quantity")
	})

	t.Run("quantity above line limit", func(t *testing.T) {
		rec, env := s.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+uuid.NewString()+`","quantity":10001}`, guest("g"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "quantity")
	})

	t.Run("negative price", func(t *testing.T) {
		rec, env := s.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+uuid.NewString()+`","quantity":1,"price":"-1"}`, guest("g"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		s.tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()

		rec, env := s.do(t, http.MethodPost, "/api/v1/cart/items", `{}`, bearer("expired"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})
}

func TestCart_UpdateAndRemoveItem(t *testing.T) {
	s := newTestServer(t, nil, nil)
	owner := entity.SessionOwner("g")
	lineID := uuid.New()

	s.cartUC.EXPECT().UpdateQuantity(mock.Anything, owner, lineID, 0).
		Return(nil, domainerrors.ErrInvalidQuantity.WithDetails("got 0"))
	rec, env := s.do(t, http.MethodPatch, "/api/v1/cart/items/"+lineID.String(), `{"quantity":0}`, guest("g"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUANTITY", env.Error.Code)

	s.cartUC.EXPECT().UpdateQuantity(mock.Anything, owner, lineID, 4).
		Return(&entity.CartLine{ID: lineID, Quantity: 4, Price: money("2.50")}, nil)
	rec, env = s.do(t, http.MethodPatch, "/api/v1/cart/items/"+lineID.String(), `{"quantity":4}`, guest("g"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"line_total":"10.00"`)

	s.cartUC.EXPECT().RemoveItem(mock.Anything, owner, lineID).Return(domainerrors.ErrCartLineNotFound)
	rec, env = s.do(t, http.MethodDelete, "/api/v1/cart/items/"+lineID.String(), "", guest("g"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CART_LINE_NOT_FOUND", env.Error.Code)

	rec, _ = s.do(t, http.MethodDelete, "/api/v1/cart/items/not-a-uuid", "", guest("g"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	s.cartUC.EXPECT().ClearCart(mock.Anything, owner).Return(nil)
	rec, _ = s.do(t, http.MethodDelete, "/api/v1/cart", "", guest("g"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCart_GetCart(t *testing.T) {
	s := newTestServer(t, nil, nil)
	owner := entity.SessionOwner("g")
	line := &entity.CartLine{ID: uuid.New(), Owner: owner, Quantity: 3, Price: money("20")}

	s.cartUC.EXPECT().GetCart(mock.Anything, owner).Return(&entity.Cart{
		Owner: owner,
		Lines: []*entity.CartLineView{{CartLine: line, Total: line.LineTotal(), Available: false}},
	}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/cart", "", guest("g"))
	require.Equal(t, http.StatusOK, rec.Code)

	var cart handler.CartResponse
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, "60.00", cart.Subtotal)
	assert.Equal(t, 3, cart.ItemCount)
	require.Len(t, cart.Lines, 1)
	require.NotNil(t, cart.Lines[0].Available)
	assert.False(t, *cart.Lines[0].Available)
}

func TestCart_MergeGuestCart(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec, _ := s.do(t, http.MethodPost, "/api/v1/cart/merge", "", guest("g"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	userID := uuid.New()
	s.signIn("user-token", userID)

	rec, env := s.do(t, http.MethodPost, "/api/v1/cart/merge", "", bearer("user-token"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CART_OWNER", env.Error.Code)

	s.cartUC.EXPECT().MergeGuestCart(mock.Anything, "g", userID).Return(&usecase.MergeCartOutput{
		MovedLines:  1,
		MergedLines: 2,
		Cart:        &entity.Cart{Owner: entity.UserOwner(userID)},
	}, nil)

	headers := bearer("user-token")
	headers["X-Session-Token"] = "g"
	rec, env = s.do(t, http.MethodPost, "/api/v1/cart/merge", "", headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(env.Data), `"merged_lines":2`)
}

func newPlacedOrder(customerID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:             uuid.New(),
		OrderNumber:    "ORD-20240309-0000CAFE",
		CustomerID:     customerID,
		Status:         entity.OrderStatusPending,
		PaymentStatus:  entity.PaymentStatusPending,
		Subtotal:       money("60"),
		TaxAmount:      money("4.8"),
		ShippingAmount: money("5.99"),
		DiscountAmount: money("10"),
		Total:          money("60.79"),
		Currency:       "USD",
		Items: []*entity.OrderItem{
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Mug", SKU: "MUG", Quantity: 3, Price: money("20"), Total: money("60")},
		},
	}
}

func TestOrders_Checkout(t *testing.T) {
	s := newTestServer(t, nil, nil)
	userID := uuid.New()
	s.signIn("user-token", userID, entity.RoleCustomer.String())

	s.orderUC.EXPECT().
		Checkout(mock.Anything, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
			return in.CustomerID == userID && in.Owner == entity.UserOwner(userID) &&
				in.TaxAmount.Equal(money("4.80")) && in.DiscountAmount.Equal(money("10"))
		})).
		Return(newPlacedOrder(userID), nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/checkout",
		`{"tax_amount":"4.80","shipping_amount":"5.99","discount_amount":"10.00","payment_method":"card"}`, bearer("user-token"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order handler.OrderResponse
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, "60.79", order.Total)
	assert.Equal(t, "4.80", order.TaxAmount)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "60.00", order.Items[0].Total)
}

func TestOrders_CheckoutInsufficientStock(t *testing.T) {
	s := newTestServer(t, nil, nil)
	userID := uuid.New()
	s.signIn("user-token", userID)
	productID := uuid.New()

	s.orderUC.EXPECT().Checkout(mock.Anything, mock.Anything).Return(nil, &domainerrors.InsufficientStockError{
		LineIndex: 1,
		ProductID: productID,
		SKU:       "MUG",
		Requested: 2,
		Available: 1,
	})

	rec, env := s.do(t, http.MethodPost, "/api/v1/checkout", `{}`, bearer("user-token"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)

	details, ok := env.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1, details["line_index"], 0)
	assert.Equal(t, productID.String(), details["product_id"])
	assert.InDelta(t, 1, details["available"], 0)
}

func TestOrders_CheckoutRequiresAuth(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/checkout", `{}`, guest("g"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
}

func TestOrders_GetOrderOwnership(t *testing.T) {
	s := newTestServer(t, nil, nil)
	owner, other, admin := uuid.New(), uuid.New(), uuid.New()
	s.signIn("owner", owner)
	s.signIn("other", other)
	s.signIn("admin", admin, entity.RoleAdmin.String())

	order := newPlacedOrder(owner)
	s.orderUC.EXPECT().GetOrder(mock.Anything, order.ID).Return(order, nil)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/orders/"+order.ID.String(), "", bearer("owner"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := s.do(t, http.MethodGet, "/api/v1/orders/"+order.ID.String(), "", bearer("other"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/orders/"+order.ID.String(), "", bearer("admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrders_ListOrders(t *testing.T) {
	s := newTestServer(t, nil, nil)
	userID := uuid.New()
	s.signIn("user-token", userID)

	s.orderUC.EXPECT().ListCustomerOrders(mock.Anything, userID, 5, 10).Return(&usecase.OrderListOutput{
		Orders: []*entity.Order{newPlacedOrder(userID)},
		Total:  11,
		Limit:  5,
		Offset: 10,
	}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/orders?limit=5&offset=10", "", bearer("user-token"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, int64(11), env.Meta.Pagination.Total)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/orders?limit=ten", "", bearer("user-token"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminOrders_RequireAdminRole(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.signIn("customer", uuid.New(), entity.RoleCustomer.String())

	rec, env := s.do(t, http.MethodPost, "/api/v1/admin/orders", `{}`, bearer("customer"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestAdminOrders_PlaceOrder(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.signIn("admin", uuid.New(), entity.RoleAdmin.String())
	customerID := uuid.New()
	productID := uuid.New()

	s.orderUC.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.CustomerID == customerID && len(in.Lines) == 1 &&
				in.Lines[0].ProductID == productID && in.Lines[0].Attributes["size"] == "L" &&
				in.OrderNumber == "ORD-MANUAL-1"
		})).
		Return(newPlacedOrder(customerID), nil)

	body := `{"customer_id":"` + customerID.String() + `","order_number":"ORD-MANUAL-1",` +
		`"lines":[{"product_id":"` + productID.String() + `","quantity":3,"attributes":{"size":"L"}}]}`
	rec, _ := s.do(t, http.MethodPost, "/api/v1/admin/orders", body, bearer("admin"))
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := s.do(t, http.MethodPost, "/api/v1/admin/orders", `{"customer_id":"`+customerID.String()+`","lines":[]}`, bearer("admin"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAdminOrders_StatusAndAmounts(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.signIn("admin", uuid.New(), entity.RoleAdmin.String())
	order := newPlacedOrder(uuid.New())

	s.orderUC.EXPECT().
		UpdateOrderStatus(mock.Anything, order.ID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusShipped, TrackingNumber: "1Z"}).
		Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("pending -> shipped"))
	rec, env := s.do(t, http.MethodPut, "/api/v1/admin/orders/"+order.ID.String()+"/status",
		`{"status":"shipped","tracking_number":"1Z"}`, bearer("admin"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
	assert.Equal(t, "pending -> shipped", env.Error.Details)

	s.orderUC.EXPECT().UpdatePaymentStatus(mock.Anything, order.ID, entity.PaymentStatusPaid).Return(order, nil)
	rec, _ = s.do(t, http.MethodPut, "/api/v1/admin/orders/"+order.ID.String()+"/payment-status",
		`{"payment_status":"paid"}`, bearer("admin"))
	assert.Equal(t, http.StatusOK, rec.Code)

	s.orderUC.EXPECT().
		AdjustOrderAmounts(mock.Anything, order.ID, mock.MatchedBy(func(in *usecase.AdjustAmountsInput) bool {
			return in.TaxAmount == nil && in.DiscountAmount != nil && in.DiscountAmount.Equal(money("50"))
		})).
		Return(order, nil)
	rec, _ = s.do(t, http.MethodPut, "/api/v1/admin/orders/"+order.ID.String()+"/amounts",
		`{"discount_amount":"50"}`, bearer("admin"))
	assert.Equal(t, http.StatusOK, rec.Code)

	s.orderUC.EXPECT().RecalculateTotal(mock.Anything, order.ID).Return(nil, domainerrors.ErrOrderNotFound)
	rec, env = s.do(t, http.MethodPost, "/api/v1/admin/orders/"+order.ID.String()+"/recalculate", "", bearer("admin"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)
}

func TestCatalog_PriceAndAvailability(t *testing.T) {
	s := newTestServer(t, nil, nil)
	productID, variantID := uuid.New(), uuid.New()

	s.catalogUC.EXPECT().ResolvePrice(mock.Anything, productID, &variantID).Return(money("22.5"), nil)
	rec, env := s.do(t, http.MethodGet, "/api/v1/catalog/products/"+productID.String()+"/price?variant_id="+variantID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var price handler.PriceResponse
	require.NoError(t, json.Unmarshal(env.Data, &price))
	assert.Equal(t, "22.50", price.Price)

	s.catalogUC.EXPECT().ResolveAvailability(mock.Anything, productID, (*uuid.UUID)(nil), 6).Return(false, nil)
	rec, env = s.do(t, http.MethodGet, "/api/v1/catalog/products/"+productID.String()+"/availability?quantity=6", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"available":false`)

	missing := uuid.New()
	s.catalogUC.EXPECT().ResolvePrice(mock.Anything, missing, (*uuid.UUID)(nil)).Return(decimal.Zero, domainerrors.ErrProductNotFound)
	rec, env = s.do(t, http.MethodGet, "/api/v1/catalog/products/"+missing.String()+"/price", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/catalog/products/"+productID.String()+"/price?variant_id=nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
