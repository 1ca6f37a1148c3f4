package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/busmanager/backend/internal/api"
	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/mocks"
	"github.com/busmanager/backend/internal/service"
	"github.com/busmanager/backend/internal/storage"
)

const testAPIKey = "test-api-key"

type jobRunnerStub struct {
	ran []string
	err error
}

func (j *jobRunnerStub) run(name string) error {
	j.ran = append(j.ran, name)
	return j.err
}

func (j *jobRunnerStub) MarkOverdueInvoices(context.Context) error { return j.run("mark-overdue-invoices") }

func (j *jobRunnerStub) LowStockAlerts(context.Context) error { return j.run("low-stock-alerts") }

func (j *jobRunnerStub) BusTaxAlerts(context.Context) error { return j.run("bus-tax-alerts") }

func (j *jobRunnerStub) GenerateScheduledTrips(context.Context) error {
	return j.run("generate-scheduled-trips")
}

type testAPI struct {
	srv    *httptest.Server
	tokens *service.TokenManager
	users  *mocks.MockUserRepository
	buses  *mocks.MockBusRepository
	stock  *mocks.MockStockRepository
	jobs   *jobRunnerStub
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	users := mocks.NewMockUserRepository(ctrl)
	buses := mocks.NewMockBusRepository(ctrl)
	stock := mocks.NewMockStockRepository(ctrl)
	jobs := &jobRunnerStub{}

	tokens := service.NewTokenManager("test-secret", time.Hour)

	uploads, err := storage.NewLocalStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	h := api.NewHandler(
		service.NewAuthService(users, tokens),
		service.NewBusService(buses, service.NopProducer{}),
		nil,
		nil,
		nil,
		nil,
		service.NewStockService(stock, service.NopProducer{}),
		nil,
		nil,
		nil,
		nil,
		uploads,
		jobs,
	)

	mw := api.NewMiddleware(tokens, true, testAPIKey)

	srv := httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(srv.Close)

	return &testAPI{
		srv:    srv,
		tokens: tokens,
		users:  users,
		buses:  buses,
		stock:  stock,
		jobs:   jobs,
	}
}

func (a *testAPI) issueToken(t *testing.T, caller entity.Caller) string {
	t.Helper()

	token, err := a.tokens.Issue(caller)
	require.NoError(t, err)

	return token
}

func (a *testAPI) doJSON(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, a.srv.URL+path, &buf)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))

	return v
}

func TestHealthHandler(t *testing.T) {
	a := newTestAPI(t)

	resp := a.doJSON(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	health := decodeJSON[api.HealthResponse](t, resp)
	require.Equal(t, "ok", health.Status)
}

func TestBearerAuth(t *testing.T) {
	a := newTestAPI(t)

	t.Run("missing token", func(t *testing.T) {
		resp := a.doJSON(t, http.MethodGet, "/api/buses", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := a.doJSON(t, http.MethodGet, "/api/buses", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := service.NewTokenManager("other-secret", time.Hour)

		token, err := other.Issue(entity.Caller{
			UserID:    uuid.Must(uuid.NewV4()),
			ProfileID: uuid.Must(uuid.NewV4()),
			Role:      entity.RoleAdmin,
		})
		require.NoError(t, err)

		resp := a.doJSON(t, http.MethodGet, "/api/buses", token, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestCreateBus(t *testing.T) {
	a := newTestAPI(t)

	admin := entity.Caller{
		UserID:    uuid.Must(uuid.NewV4()),
		ProfileID: uuid.Must(uuid.NewV4()),
		Role:      entity.RoleAdmin,
	}

	busID := uuid.Must(uuid.NewV4())

	a.buses.EXPECT().
		CreateBus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b entity.Bus) (entity.Bus, error) {
			require.Equal(t, "KA-01-AB-1234", b.RegistrationNumber)
			require.Equal(t, entity.BusStatusActive, b.Status)
			require.Equal(t, entity.OwnershipOwned, b.OwnershipType)

			b.ID = busID
			b.CreatedAt = time.Now()
			b.UpdatedAt = b.CreatedAt

			return b, nil
		})

	resp := a.doJSON(t, http.MethodPost, "/api/buses", a.issueToken(t, admin), api.BusRequest{
		RegistrationNumber: "KA-01-AB-1234",
		BusName:            "Morning Express",
		Capacity:           45,
		Status:             "active",
		OwnershipType:      "owned",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	bus := decodeJSON[api.BusResponse](t, resp)
	require.Equal(t, busID, bus.ID)
	require.Equal(t, "KA-01-AB-1234", bus.RegistrationNumber)
	require.Equal(t, "Morning Express", bus.BusName)
	require.Equal(t, "active", bus.Status)
}

func TestCreateBus_DriverForbidden(t *testing.T) {
	a := newTestAPI(t)

	driver := entity.Caller{
		UserID:    uuid.Must(uuid.NewV4()),
		ProfileID: uuid.Must(uuid.NewV4()),
		Role:      entity.RoleDriver,
	}

	resp := a.doJSON(t, http.MethodPost, "/api/buses", a.issueToken(t, driver), api.BusRequest{
		RegistrationNumber: "KA-01-AB-1234",
		Status:             "active",
		OwnershipType:      "owned",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBus_NotFound(t *testing.T) {
	a := newTestAPI(t)

	admin := entity.Caller{
		UserID:    uuid.Must(uuid.NewV4()),
		ProfileID: uuid.Must(uuid.NewV4()),
		Role:      entity.RoleAdmin,
	}

	id := uuid.Must(uuid.NewV4())

	a.buses.EXPECT().
		Bus(gomock.Any(), id).
		Return(entity.Bus{}, entity.ErrNotFound)

	resp := a.doJSON(t, http.MethodGet, "/api/buses/"+id.String(), a.issueToken(t, admin), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBuses_Filters(t *testing.T) {
	a := newTestAPI(t)

	driver := entity.Caller{
		UserID:    uuid.Must(uuid.NewV4()),
		ProfileID: uuid.Must(uuid.NewV4()),
		Role:      entity.RoleDriver,
	}

	a.buses.EXPECT().
		Buses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.BusFilter) ([]entity.Bus, int, error) {
			require.EqualValues(t, 10, f.Limit)
			require.EqualValues(t, 20, f.Offset)
			require.NotNil(t, f.Status)
			require.Equal(t, entity.BusStatusActive, *f.Status)

			return []entity.Bus{{ID: uuid.Must(uuid.NewV4()), RegistrationNumber: "KA-01-AB-1234", Status: entity.BusStatusActive}}, 1, nil
		})

	resp := a.doJSON(t, http.MethodGet, "/api/buses?limit=10&offset=20&status=active", a.issueToken(t, driver), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeJSON[api.BusListResponse](t, resp)
	require.Equal(t, 1, list.Total)
	require.Len(t, list.Buses, 1)
	require.Equal(t, "KA-01-AB-1234", list.Buses[0].RegistrationNumber)
}

func TestListFilters_UnknownEnum(t *testing.T) {
	a := newTestAPI(t)

	admin := entity.Caller{
		UserID:    uuid.Must(uuid.NewV4()),
		ProfileID: uuid.Must(uuid.NewV4()),
		Role:      entity.RoleAdmin,
	}
	token := a.issueToken(t, admin)

	// Bad enum filters are rejected before any query runs, so no repository
	// expectations are set.
	for _, path := range []string{
		"/api/invoices?status=bogus",
		"/api/invoices?direction=sideways",
		"/api/buses?status=bogus",
		"/api/buses?ownership=leased",
	} {
		resp := a.doJSON(t, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestAdjustStockItem(t *testing.T) {
	a := newTestAPI(t)

	driver := entity.Caller{
		UserID:    uuid.Must(uuid.NewV4()),
		ProfileID: uuid.Must(uuid.NewV4()),
		Role:      entity.RoleDriver,
	}

	itemID := uuid.Must(uuid.NewV4())

	a.stock.EXPECT().
		AdjustItem(gomock.Any(), itemID, entity.StockTransactionRemove, 3, "used on trip", driver.ProfileID).
		Return(
			entity.StockItem{ID: itemID, ItemName: "Engine oil", Quantity: 2, LowStockThreshold: 5},
			entity.StockTransaction{StockItemID: itemID, Type: entity.StockTransactionRemove, QuantityChange: -3},
			nil,
		)

	resp := a.doJSON(t, http.MethodPost, "/api/stock/"+itemID.String()+"/adjust", a.issueToken(t, driver), api.AdjustStockRequest{
		Type:   "remove",
		Change: 3,
		Notes:  "used on trip",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	item := decodeJSON[api.StockItemResponse](t, resp)
	require.Equal(t, 2, item.Quantity)
	require.True(t, item.LowStock)
}

func TestAdjustStockItem_Insufficient(t *testing.T) {
	a := newTestAPI(t)

	driver := entity.Caller{
		UserID:    uuid.Must(uuid.NewV4()),
		ProfileID: uuid.Must(uuid.NewV4()),
		Role:      entity.RoleDriver,
	}

	itemID := uuid.Must(uuid.NewV4())

	a.stock.EXPECT().
		AdjustItem(gomock.Any(), itemID, entity.StockTransactionRemove, 50, "", driver.ProfileID).
		Return(entity.StockItem{}, entity.StockTransaction{}, fmt.Errorf("adjust: %w", entity.ErrInsufficientStock))

	resp := a.doJSON(t, http.MethodPost, "/api/stock/"+itemID.String()+"/adjust", a.issueToken(t, driver), api.AdjustStockRequest{
		Type:   "remove",
		Change: 50,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	a := newTestAPI(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}
	profile := entity.Profile{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   user.ID,
		FullName: "Admin User",
	}

	t.Run("valid credentials", func(t *testing.T) {
		a.users.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
		a.users.EXPECT().ProfileByUserID(gomock.Any(), user.ID).Return(profile, nil)
		a.users.EXPECT().RoleByUserID(gomock.Any(), user.ID).Return(entity.RoleAdmin, nil)

		resp := a.doJSON(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
			Email:    user.Email,
			Password: "correct horse",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		session := decodeJSON[api.SessionResponse](t, resp)
		require.Equal(t, user.ID, session.UserID)
		require.Equal(t, "admin", session.Role)

		caller, err := a.tokens.Verify(session.Token)
		require.NoError(t, err)
		require.Equal(t, user.ID, caller.UserID)
		require.Equal(t, profile.ID, caller.ProfileID)
		require.Equal(t, entity.RoleAdmin, caller.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		a.users.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)

		resp := a.doJSON(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
			Email:    user.Email,
			Password: "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRunJob(t *testing.T) {
	a := newTestAPI(t)

	t.Run("missing api key", func(t *testing.T) {
		resp := a.doJSON(t, http.MethodPost, "/api/private/v1/jobs/low-stock-alerts", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown job", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, a.srv.URL+"/api/private/v1/jobs/no-such-job", nil)
		require.NoError(t, err)
		req.Header.Set("X-Api-Key", testAPIKey)

		resp, err := a.srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("runs the job", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, a.srv.URL+"/api/private/v1/jobs/low-stock-alerts", nil)
		require.NoError(t, err)
		req.Header.Set("X-Api-Key", testAPIKey)

		resp, err := a.srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, a.jobs.ran, "low-stock-alerts")
	})
}
