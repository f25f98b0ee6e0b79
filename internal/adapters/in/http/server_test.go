package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	rentalhttp "rental/internal/adapters/in/http"
	"rental/internal/adapters/out/inmem"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *services.ReservationEngine) {
	t.Helper()

	sedan, err := vehicle.NewVehicle(kernel.NewUUID(), vehicle.Sedan, 12000)
	require.NoError(t, err)
	rate, err := kernel.MoneyFromString("49.99")
	require.NoError(t, err)

	archive := inmem.NewOrderArchive()
	engine, err := services.NewReservationEngine(
		map[vehicle.Category][]*vehicle.Vehicle{vehicle.Sedan: {sedan}},
		services.MustNewRateTable(map[vehicle.Category]kernel.Money{vehicle.Sedan: rate}),
		inmem.NewUUIDGenerator(), inmem.NewSystemClock(), archive)
	require.NoError(t, err)

	server := rentalhttp.NewServer(
		commands.NewReserveCommandHandler(engine),
		commands.NewStartRentalCommandHandler(engine),
		commands.NewCancelCommandHandler(engine),
		commands.NewReturnVehicleCommandHandler(engine),
		queries.NewGetActiveOrdersQueryHandler(engine),
		queries.NewGetFleetStatusQueryHandler(engine),
		queries.NewGetOrderHistoryQueryHandler(engine, archive),
		engine,
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, engine
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_ReservationFlow(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/reservations", `{"category":"Sedan","days":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created rentalhttp.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Reserved", created.Status)
	assert.Equal(t, "Sedan", created.Category)
	assert.Equal(t, 5, created.Days)
	assert.Equal(t, "249.95", created.Total)

	rec = doJSON(e, http.MethodPost, "/api/v1/reservations/"+created.ID+"/start", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/reservations/"+created.ID+"/return", `{"mileage":12600}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var returned rentalhttp.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &returned))
	assert.Equal(t, 12600, returned.Mileage)

	rec = doJSON(e, http.MethodGet, "/api/v1/orders/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []rentalhttp.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "Completed", history[0].Status)
}

func TestServer_ErrorMapping(t *testing.T) {
	t.Run("should return 400 for unknown category", func(t *testing.T) {
		e, _ := newTestServer(t)
		rec := doJSON(e, http.MethodPost, "/api/v1/reservations", `{"category":"Tank","days":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 400 for malformed order id", func(t *testing.T) {
		e, _ := newTestServer(t)
		rec := doJSON(e, http.MethodPost, "/api/v1/reservations/not-a-uuid/start", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 404 for unknown order", func(t *testing.T) {
		e, _ := newTestServer(t)
		rec := doJSON(e, http.MethodPost, "/api/v1/reservations/"+kernel.NewUUID().String()+"/cancel", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 409 when category is exhausted", func(t *testing.T) {
		e, _ := newTestServer(t)
		rec := doJSON(e, http.MethodPost, "/api/v1/reservations", `{"category":"Sedan","days":1}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(e, http.MethodPost, "/api/v1/reservations", `{"category":"Sedan","days":1}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should return 409 for illegal transition", func(t *testing.T) {
		e, engine := newTestServer(t)
		o, err := engine.Reserve(vehicle.Sedan, time.Now(), 1)
		require.NoError(t, err)
		_, err = engine.StartRental(o.ID())
		require.NoError(t, err)

		rec := doJSON(e, http.MethodPost, "/api/v1/reservations/"+o.ID().String()+"/cancel", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
