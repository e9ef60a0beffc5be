package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/service"
	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/service/servicetest"
)

func newTestApp(t *testing.T, opts service.Options) (*fiber.App, *servicetest.MemStore) {
	t.Helper()
	store := servicetest.NewMemStore()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	Register(app, service.New(store, opts))
	return app, store
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func seed(t *testing.T, store *servicetest.MemStore) (unit domain.ConsumerUnit, dep domain.Dependency, dev domain.Device) {
	t.Helper()
	ctx := context.Background()
	unit = domain.ConsumerUnit{Name: "Apartamento"}
	require.NoError(t, store.CreateConsumerUnit(ctx, &unit))
	dep = domain.Dependency{Name: "Quarto", ConsumerUnitID: unit.ID}
	require.NoError(t, store.CreateDependency(ctx, &dep))
	dev = domain.Device{Name: "Ventilador", Consumption: 0.1, DailyUsage: 8, Kind: "climatizacao", DependencyID: dep.ID, ConsumerUnitID: unit.ID}
	require.NoError(t, store.CreateDevice(ctx, &dev))
	return unit, dep, dev
}

func TestCalculateEndpoint(t *testing.T) {
	app, store := newTestApp(t, service.Options{})
	_, _, dev := seed(t, store)
	tariff := domain.Tariff{Name: "verde", DailyRate: 0.5, MonthlyRate: 0.45, AnnualRate: 0.4}
	require.NoError(t, store.CreateTariff(context.Background(), &tariff))

	body := `{"tipo_consumidor_id": 1, "unidade_consumidora_id": 1, "dependencias_ids": [2],
		"dispositivos": [{"id": ` + jsonInt(dev.ID) + `}], "bandeira_id": ` + jsonInt(tariff.ID) + `, "periodo": "mensal"}`
	code, out := do(t, app, fiber.MethodPost, "/calcular/calcular", body)
	require.Equal(t, fiber.StatusOK, code, out)

	var res domain.CalculationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 24.0, res.TotalConsumption, 1e-9)
	assert.InDelta(t, 10.8, res.TotalCost, 1e-9)
	assert.Contains(t, out, `"consumo_total"`)
	assert.Contains(t, out, `"custo_total"`)
}

func TestCalculateInvalidPeriodIs400(t *testing.T) {
	app, _ := newTestApp(t, service.Options{})

	code, out := do(t, app, fiber.MethodPost, "/calcular/calcular", `{"dispositivos": [], "bandeira_id": 1, "periodo": "quinzenal"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.JSONEq(t, `{"detail": "Período inválido"}`, out)
}

func TestCalculateMalformedBodyIs422(t *testing.T) {
	app, _ := newTestApp(t, service.Options{})

	code, _ := do(t, app, fiber.MethodPost, "/calcular/calcular", `{"periodo": `)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestCloudEndpointsUnavailable(t *testing.T) {
	app, _ := newTestApp(t, service.Options{})

	code, _ := do(t, app, fiber.MethodPost, "/calcular/relatorio", `{"periodo": "diario"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, code)

	code, _ = do(t, app, fiber.MethodGet, "/calcular/historico/unidade-consumidora/1", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
}

func TestDependencyCRUD(t *testing.T) {
	app, store := newTestApp(t, service.Options{})
	unit, _, _ := seed(t, store)

	code, out := do(t, app, fiber.MethodPost, "/dependencias", `{"nome": "Sala", "unidade_consumidora_id": `+jsonInt(unit.ID)+`}`)
	require.Equal(t, fiber.StatusOK, code, out)
	var created domain.Dependency
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.NotZero(t, created.ID)
	id := jsonInt(created.ID)

	code, out = do(t, app, fiber.MethodGet, "/dependencias/unidade-consumidora/"+jsonInt(unit.ID), "")
	require.Equal(t, fiber.StatusOK, code)
	var list struct {
		Dependencias []domain.Dependency `json:"dependencias"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list.Dependencias, 2)

	code, out = do(t, app, fiber.MethodPatch, "/dependencias/"+id, `{"nome": "Sala de estar"}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, out, `"nome":"Sala de estar"`)
	assert.Equal(t, unit.ID, store.Dependencies[created.ID].ConsumerUnitID)

	code, out = do(t, app, fiber.MethodGet, "/dependencias/"+id, "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, out, "Sala de estar")

	code, out = do(t, app, fiber.MethodDelete, "/dependencias/"+id, "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, out, "Sala de estar")
	assert.NotContains(t, store.Dependencies, created.ID)
}

func TestDependencyAbsentIsNull(t *testing.T) {
	app, _ := newTestApp(t, service.Options{})

	for _, tc := range []struct{ method, body string }{
		{fiber.MethodGet, ""},
		{fiber.MethodPatch, `{"nome": "x"}`},
		{fiber.MethodDelete, ""},
	} {
		code, out := do(t, app, tc.method, "/dependencias/404", tc.body)
		assert.Equal(t, fiber.StatusOK, code, tc.method)
		assert.Equal(t, "null", out, tc.method)
	}

	code, out := do(t, app, fiber.MethodGet, "/dependencias/unidade-consumidora/404", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"dependencias": []}`, out)
}

func TestDeviceCRUD(t *testing.T) {
	app, store := newTestApp(t, service.Options{})
	unit, dep, dev := seed(t, store)

	body := `{"nome": "Geladeira", "consumo": 0.15, "uso_diario": 24, "tipo": "cozinha",
		"dependencia_id": ` + jsonInt(dep.ID) + `, "unidade_consumidora_id": ` + jsonInt(unit.ID) + `}`
	code, out := do(t, app, fiber.MethodPost, "/dispositivos", body)
	require.Equal(t, fiber.StatusOK, code, out)
	var created domain.Device
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, 24.0, created.DailyUsage)

	var list struct {
		Dispositivos []domain.Device `json:"dispositivos"`
	}
	code, out = do(t, app, fiber.MethodGet, "/dispositivos/unidades-consumidoras/"+jsonInt(unit.ID), "")
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list.Dispositivos, 2)

	code, out = do(t, app, fiber.MethodGet, "/dispositivos/dependencias/"+jsonInt(dep.ID), "")
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list.Dispositivos, 2)

	code, out = do(t, app, fiber.MethodPatch, "/dispositivos/"+jsonInt(dev.ID),
		`{"nome": "Ventilador de teto", "consumo": 0.08, "uso_diario": 10, "tipo": "quarto"}`)
	require.Equal(t, fiber.StatusOK, code)
	var updated domain.Device
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, domain.Device{
		ID: dev.ID, Name: "Ventilador de teto", Consumption: 0.08, DailyUsage: 10, Kind: "quarto",
		DependencyID: dep.ID, ConsumerUnitID: unit.ID,
	}, updated)

	code, _ = do(t, app, fiber.MethodDelete, "/dispositivos/"+jsonInt(dev.ID), "")
	require.Equal(t, fiber.StatusOK, code)
	code, out = do(t, app, fiber.MethodGet, "/dispositivos/"+jsonInt(dev.ID), "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "null", out)
}

func TestDeviceAbsentIsNull(t *testing.T) {
	app, _ := newTestApp(t, service.Options{})

	code, out := do(t, app, fiber.MethodPatch, "/dispositivos/77", `{"nome": "x", "consumo": 1, "uso_diario": 1, "tipo": "y"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "null", out)

	code, out = do(t, app, fiber.MethodDelete, "/dispositivos/77", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "null", out)

	code, out = do(t, app, fiber.MethodGet, "/dispositivos/dependencias/77", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"dispositivos": []}`, out)
}

func TestNonNumericIDIs422(t *testing.T) {
	app, _ := newTestApp(t, service.Options{})

	code, out := do(t, app, fiber.MethodGet, "/dispositivos/abc", "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Contains(t, out, "detail")
}

func TestStoreErrorIs500(t *testing.T) {
	app, store := newTestApp(t, service.Options{})
	store.Err = errors.New("connection reset")

	code, out := do(t, app, fiber.MethodGet, "/dependencias/1", "")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.JSONEq(t, `{"detail": "connection reset"}`, out)
}

func TestTariffEndpoints(t *testing.T) {
	app, _ := newTestApp(t, service.Options{})

	code, out := do(t, app, fiber.MethodPost, "/bandeiras", `{"nome": "verde", "tarifa_diaria": 0.5, "tarifa_mensal": 0.45, "tarifa_anual": 0.4}`)
	require.Equal(t, fiber.StatusOK, code, out)
	var created domain.Tariff
	require.NoError(t, json.Unmarshal([]byte(out), &created))

	code, out = do(t, app, fiber.MethodPatch, "/bandeiras/"+jsonInt(created.ID), `{"nome": "vermelha", "tarifa_diaria": 0.9, "tarifa_mensal": 0.8, "tarifa_anual": 0.7}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, out, "vermelha")

	code, out = do(t, app, fiber.MethodGet, "/bandeiras/"+jsonInt(created.ID), "")
	require.Equal(t, fiber.StatusOK, code)
	var got domain.Tariff
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 0.8, got.MonthlyRate)

	code, out = do(t, app, fiber.MethodGet, "/bandeiras", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, out, `"bandeiras":[`)
}

func TestCatalogEndpoints(t *testing.T) {
	app, _ := newTestApp(t, service.Options{})

	code, out := do(t, app, fiber.MethodPost, "/tipos-consumidor", `{"nome": "residencial"}`)
	require.Equal(t, fiber.StatusOK, code, out)
	var ct domain.ConsumerType
	require.NoError(t, json.Unmarshal([]byte(out), &ct))

	code, out = do(t, app, fiber.MethodPost, "/unidades-consumidoras", `{"nome": "Casa", "tipo_consumidor_id": `+jsonInt(ct.ID)+`}`)
	require.Equal(t, fiber.StatusOK, code, out)
	var unit domain.ConsumerUnit
	require.NoError(t, json.Unmarshal([]byte(out), &unit))
	require.NotNil(t, unit.ConsumerTypeID)
	assert.Equal(t, ct.ID, *unit.ConsumerTypeID)

	code, out = do(t, app, fiber.MethodGet, "/unidades-consumidoras/"+jsonInt(unit.ID), "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, out, "Casa")

	code, out = do(t, app, fiber.MethodGet, "/tipos-consumidor", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, out, "residencial")
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
