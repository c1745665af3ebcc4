package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-energy-forecast/internal/api/models"
	"ai-energy-forecast/internal/forecast"
	"ai-energy-forecast/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, err := forecast.New(model.DefaultConstants())
	require.NoError(t, err)

	scenarioHandler := NewScenarioHandler(engine)
	curvesHandler := NewCurvesHandler(engine)
	matrixHandler := NewMatrixHandler(engine)

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/scenario", scenarioHandler.RunScenario)
	api.POST("/scenario/compare", scenarioHandler.Compare)
	api.GET("/curves", curvesHandler.GetCurves)
	api.POST("/matrix", matrixHandler.BuildMatrix)
	api.GET("/mixes", matrixHandler.ListMixes)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRunScenarioEndpoint(t *testing.T) {
	router := newRouter(t)

	w := postJSON(t, router, "/api/v1/scenario", models.ScenarioRequest{
		Watts:     100e9,
		Year:      2030,
		EnergyMix: map[string]float64{"solar": 0.3, "gas": 0.7},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ScenarioResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2030, resp.Year)
	assert.Greater(t, resp.Compute.UnitCount, 0.0)
	assert.Equal(t, 50000.0, resp.Infrastructure.Transformers)
	assert.InDelta(t, 0.3, resp.EnergyMix["solar"], 1e-12)
}

func TestRunScenarioInvalidInput(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name string
		req  models.ScenarioRequest
	}{
		{
			name: "negative watts",
			req: models.ScenarioRequest{
				Watts:     -1,
				Year:      2030,
				EnergyMix: map[string]float64{"gas": 1},
			},
		},
		{
			name: "year below baseline",
			req: models.ScenarioRequest{
				Watts:     1e9,
				Year:      2020,
				EnergyMix: map[string]float64{"gas": 1},
			},
		},
		{
			name: "negative mix share",
			req: models.ScenarioRequest{
				Watts:     1e9,
				Year:      2030,
				EnergyMix: map[string]float64{"gas": -1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/v1/scenario", tt.req)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
		})
	}
}

func TestCompareEndpoint(t *testing.T) {
	router := newRouter(t)

	w := postJSON(t, router, "/api/v1/scenario/compare", models.CompareRequest{
		Base: models.ScenarioRequest{
			Watts:     100e9,
			Year:      2030,
			EnergyMix: map[string]float64{"solar": 0.5, "gas": 0.5},
		},
		Variations: []models.ScenarioVariation{
			{
				Name: "pure gas",
				Scenario: models.ScenarioRequest{
					Watts:     100e9,
					Year:      2030,
					EnergyMix: map[string]float64{"gas": 1},
				},
			},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comparison, 2)
	assert.Equal(t, "base", resp.Comparison[0].Name)
	assert.Equal(t, "pure gas", resp.Comparison[1].Name)
	assert.Equal(t, 0.0, resp.Comparison[1].Scenario.Infrastructure.PVModules)
}

func TestCurvesEndpoint(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/curves?from=2025&to=2030", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CurvesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Points, 6)
	assert.Equal(t, 2025, resp.Points[0].Year)
	assert.Equal(t, 1000.0, resp.Points[0].WattsPerUnit)
	assert.Equal(t, 24000.0, resp.Points[0].CostPerUnit)
	assert.Equal(t, 1.35, resp.Points[0].ComputeDensity)
}

func TestCurvesEndpointBadRange(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/curves?from=2030&to=2025", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatrixEndpoint(t *testing.T) {
	router := newRouter(t)

	w := postJSON(t, router, "/api/v1/matrix", models.MatrixRequest{
		PowersGW: []float64{100},
		Years:    []int{2030},
		Mixes: []models.NamedMix{
			{Name: "Pure Gas", Mix: map[string]float64{"gas": 1}},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MatrixResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Pure Gas", resp.Rows[0].MixName)
	assert.Equal(t, 0.0, resp.Rows[0].PVModules)
}

func TestListMixes(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/mixes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pure Solar")
	assert.Contains(t, w.Body.String(), "Balanced")
}
