package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dispatchhttp "fooddispatch/internal/adapters/in/http"
	"fooddispatch/internal/core/application/usecases/commands"
	"fooddispatch/internal/core/application/usecases/queries"
	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/menu"
	"fooddispatch/internal/core/domain/model/notification"
	"fooddispatch/internal/core/domain/model/order"
	"fooddispatch/internal/core/ports"
	"fooddispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderRepo implements ports.OrderRepository with pluggable behavior.
type stubOrderRepo struct {
	addFn          func(ctx context.Context, aggregate *order.Order) error
	updateFn       func(ctx context.Context, aggregate *order.Order) error
	getFn          func(ctx context.Context, id kernel.UUID) (*order.Order, error)
	getForUpdateFn func(ctx context.Context, id kernel.UUID) (*order.Order, error)
	claimFn        func(ctx context.Context, orderID, courierID kernel.UUID) error
}

func (s *stubOrderRepo) Add(ctx context.Context, aggregate *order.Order) error {
	if s.addFn == nil {
		return nil
	}
	return s.addFn(ctx, aggregate)
}

func (s *stubOrderRepo) Update(ctx context.Context, aggregate *order.Order) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, aggregate)
}

func (s *stubOrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderRepo) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.getForUpdateFn(ctx, id)
}

func (s *stubOrderRepo) GetAllPendingUnassigned(_ context.Context) ([]*order.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) Claim(ctx context.Context, orderID, courierID kernel.UUID) error {
	return s.claimFn(ctx, orderID, courierID)
}

// stubNotificationRepo ignores outbox writes.
type stubNotificationRepo struct{}

func (s *stubNotificationRepo) Add(_ context.Context, _ *notification.Notification) error {
	return nil
}

func (s *stubNotificationRepo) GetUnsent(_ context.Context, _ int) ([]*notification.Notification, error) {
	return nil, nil
}

func (s *stubNotificationRepo) MarkSent(_ context.Context, _ kernel.UUID) error {
	return nil
}

// stubUoW hands out the stub repositories without real transactions.
type stubUoW struct {
	orders *stubOrderRepo
}

func (s *stubUoW) Begin(_ context.Context) error    { return nil }
func (s *stubUoW) Commit(_ context.Context) error   { return nil }
func (s *stubUoW) Rollback(_ context.Context) error { return nil }

func (s *stubUoW) OrderRepository() ports.OrderRepository {
	return s.orders
}

func (s *stubUoW) NotificationRepository() ports.NotificationRepository {
	return &stubNotificationRepo{}
}

type stubUoWFactory struct {
	orders *stubOrderRepo
}

func (s *stubUoWFactory) Create() commands.UoW {
	return &stubUoW{orders: s.orders}
}

type stubOrderUoWFactory struct {
	orders *stubOrderRepo
}

func (s *stubOrderUoWFactory) Create() commands.OrderUoW {
	return &stubUoW{orders: s.orders}
}

// stubCatalog resolves every id at a fixed price.
type stubCatalog struct {
	missing map[kernel.UUID]bool
}

func (s *stubCatalog) ResolveMenuItems(
	_ context.Context, ids []kernel.UUID,
) (map[kernel.UUID]menu.Item, error) {
	resolved := make(map[kernel.UUID]menu.Item, len(ids))
	for _, id := range ids {
		if s.missing[id] {
			continue
		}
		item, err := menu.NewItem(id, kernel.NewUUID(), "margherita", kernel.MustMoneyFromCents(599))
		if err != nil {
			return nil, err
		}
		resolved[id] = item
	}
	return resolved, nil
}

func newTestServer(orders *stubOrderRepo, catalog ports.MenuCatalog) *dispatchhttp.Server {
	if catalog == nil {
		catalog = &stubCatalog{}
	}
	return dispatchhttp.NewServer(
		commands.NewCreateOrderCommandHandler(&stubOrderUoWFactory{orders: orders}, catalog),
		commands.NewCancelOrderCommandHandler(&stubUoWFactory{orders: orders}),
		commands.NewClaimJobCommandHandler(&stubUoWFactory{orders: orders}),
		commands.NewConfirmDeliveryCommandHandler(&stubUoWFactory{orders: orders}),
		commands.NewConfirmReceiptCommandHandler(&stubUoWFactory{orders: orders}),
		queries.GetAvailableJobsQueryHandler{},
		queries.GetCustomerOrdersQueryHandler{},
		queries.GetCourierDeliveriesQueryHandler{},
	)
}

func doRequest(
	t *testing.T, server *dispatchhttp.Server,
	method, target, userID, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set(dispatchhttp.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func pendingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), 1, kernel.MustMoneyFromCents(599))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestCreateOrder_Success(t *testing.T) {
	server := newTestServer(&stubOrderRepo{}, nil)
	customerID := kernel.NewUUID()
	body := `{"items":[{"menu_item_id":"` + kernel.NewUUID().String() + `","quantity":2}]}`

	rec := doRequest(t, server, http.MethodPost, "/api/v1/orders", customerID.String(), body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dispatchhttp.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, customerID.String(), resp.CustomerID)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, int64(1198), resp.TotalPriceCents)
	assert.Len(t, resp.Items, 1)
}

func TestCreateOrder_MissingIdentity_Unauthorized(t *testing.T) {
	server := newTestServer(&stubOrderRepo{}, nil)
	body := `{"items":[{"menu_item_id":"` + kernel.NewUUID().String() + `","quantity":1}]}`

	rec := doRequest(t, server, http.MethodPost, "/api/v1/orders", "", body)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrder_ZeroQuantity_BadRequestWithIssues(t *testing.T) {
	server := newTestServer(&stubOrderRepo{}, nil)
	body := `{"items":[{"menu_item_id":"` + kernel.NewUUID().String() + `","quantity":0}]}`

	rec := doRequest(t, server, http.MethodPost, "/api/v1/orders", kernel.NewUUID().String(), body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dispatchhttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Issues)
}

func TestCreateOrder_UnknownMenuItem_BadRequest(t *testing.T) {
	ghost := kernel.NewUUID()
	server := newTestServer(&stubOrderRepo{}, &stubCatalog{missing: map[kernel.UUID]bool{ghost: true}})
	body := `{"items":[{"menu_item_id":"` + ghost.String() + `","quantity":1}]}`

	rec := doRequest(t, server, http.MethodPost, "/api/v1/orders", kernel.NewUUID().String(), body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dispatchhttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Issues, 1)
	assert.Contains(t, resp.Issues[0], ghost.String())
}

func TestClaimJob_Success(t *testing.T) {
	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	claimed := pendingOrder(t, customerID)
	require.NoError(t, claimed.Assign(courierID))

	repo := &stubOrderRepo{
		claimFn: func(_ context.Context, _, _ kernel.UUID) error { return nil },
		getFn: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return claimed, nil
		},
	}
	server := newTestServer(repo, nil)

	rec := doRequest(t, server, http.MethodPost,
		"/api/v1/orders/"+claimed.ID().String()+"/claim", courierID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dispatchhttp.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Delivering", resp.Status)
	require.NotNil(t, resp.CourierID)
	assert.Equal(t, courierID.String(), *resp.CourierID)
}

func TestClaimJob_AlreadyClaimed_Conflict(t *testing.T) {
	orderID := kernel.NewUUID()
	repo := &stubOrderRepo{
		claimFn: func(_ context.Context, id, _ kernel.UUID) error {
			return errs.NewJobUnavailableError(id.String())
		},
	}
	server := newTestServer(repo, nil)

	rec := doRequest(t, server, http.MethodPost,
		"/api/v1/orders/"+orderID.String()+"/claim", kernel.NewUUID().String(), "")

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestClaimJob_UnknownOrder_NotFound(t *testing.T) {
	repo := &stubOrderRepo{
		claimFn: func(_ context.Context, id, _ kernel.UUID) error {
			return errs.NewObjectNotFoundError("order", id.String())
		},
	}
	server := newTestServer(repo, nil)

	rec := doRequest(t, server, http.MethodPost,
		"/api/v1/orders/"+kernel.NewUUID().String()+"/claim", kernel.NewUUID().String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClaimJob_MalformedOrderID_BadRequest(t *testing.T) {
	server := newTestServer(&stubOrderRepo{}, nil)

	rec := doRequest(t, server, http.MethodPost,
		"/api/v1/orders/not-a-uuid/claim", kernel.NewUUID().String(), "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrder_NotOwner_Forbidden(t *testing.T) {
	owned := pendingOrder(t, kernel.NewUUID())
	repo := &stubOrderRepo{
		getForUpdateFn: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return owned, nil
		},
	}
	server := newTestServer(repo, nil)

	rec := doRequest(t, server, http.MethodPost,
		"/api/v1/orders/"+owned.ID().String()+"/cancel", kernel.NewUUID().String(), "")

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCancelOrder_Success(t *testing.T) {
	customerID := kernel.NewUUID()
	owned := pendingOrder(t, customerID)
	repo := &stubOrderRepo{
		getForUpdateFn: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return owned, nil
		},
	}
	server := newTestServer(repo, nil)

	rec := doRequest(t, server, http.MethodPost,
		"/api/v1/orders/"+owned.ID().String()+"/cancel", customerID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dispatchhttp.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Cancelled", resp.Status)
}

func TestConfirmReceipt_PendingOrder_Conflict(t *testing.T) {
	customerID := kernel.NewUUID()
	owned := pendingOrder(t, customerID)
	repo := &stubOrderRepo{
		getForUpdateFn: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return owned, nil
		},
	}
	server := newTestServer(repo, nil)

	rec := doRequest(t, server, http.MethodPost,
		"/api/v1/orders/"+owned.ID().String()+"/confirm-receipt", customerID.String(), "")

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestConfirmDelivery_WrongCourier_Forbidden(t *testing.T) {
	claimed := pendingOrder(t, kernel.NewUUID())
	require.NoError(t, claimed.Assign(kernel.NewUUID()))
	repo := &stubOrderRepo{
		getForUpdateFn: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return claimed, nil
		},
	}
	server := newTestServer(repo, nil)

	rec := doRequest(t, server, http.MethodPost,
		"/api/v1/orders/"+claimed.ID().String()+"/confirm-delivery", kernel.NewUUID().String(), "")

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestConfirmHandshake_BothParties_Delivered(t *testing.T) {
	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	claimed := pendingOrder(t, customerID)
	require.NoError(t, claimed.Assign(courierID))
	repo := &stubOrderRepo{
		getForUpdateFn: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return claimed, nil
		},
	}
	server := newTestServer(repo, nil)

	rec := doRequest(t, server, http.MethodPost,
		"/api/v1/orders/"+claimed.ID().String()+"/confirm-delivery", courierID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, server, http.MethodPost,
		"/api/v1/orders/"+claimed.ID().String()+"/confirm-receipt", customerID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dispatchhttp.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Delivered", resp.Status)
	assert.True(t, resp.DriverConfirmed)
	assert.True(t, resp.CustomerConfirmed)
}
