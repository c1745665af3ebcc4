package handlers

import (
	"errors"
	"net/http"

	"ai-energy-forecast/internal/api/models"
	"ai-energy-forecast/internal/forecast"
	"ai-energy-forecast/internal/model"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles scenario evaluation requests.
type ScenarioHandler struct {
	engine *forecast.Engine
}

// NewScenarioHandler creates a scenario handler over a shared engine.
func NewScenarioHandler(engine *forecast.Engine) *ScenarioHandler {
	return &ScenarioHandler{engine: engine}
}

// RunScenario handles POST /api/v1/scenario.
func (h *ScenarioHandler) RunScenario(c *gin.Context) {
	var req models.ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	s, err := h.run(req)
	if err != nil {
		respondModelError(c, err)
		return
	}

	resp := models.FromScenario(s)
	if c.Query("summary") == "true" {
		resp.Summary = forecast.Summary(s)
	}
	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/v1/scenario/compare.
func (h *ScenarioHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	results := make([]models.ComparisonResult, 0, len(req.Variations)+1)

	base, err := h.run(req.Base)
	if err != nil {
		respondModelError(c, err)
		return
	}
	results = append(results, models.ComparisonResult{
		Name:     "base",
		Scenario: models.FromScenario(base),
	})

	for _, v := range req.Variations {
		s, err := h.run(v.Scenario)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_VARIATION", v.Name+": "+err.Error())
			return
		}
		results = append(results, models.ComparisonResult{
			Name:     v.Name,
			Scenario: models.FromScenario(s),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: results})
}

func (h *ScenarioHandler) run(req models.ScenarioRequest) (model.Scenario, error) {
	utilization := forecast.DefaultUtilization
	if req.Utilization != nil {
		utilization = *req.Utilization
	}
	return h.engine.RunWithUtilization(req.Watts, req.Year, model.EnergyMix(req.EnergyMix), utilization)
}

func respondModelError(c *gin.Context, err error) {
	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		code = "INVALID_INPUT"
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrZeroPower):
		code = "ZERO_POWER"
		status = http.StatusBadRequest
	}
	respondError(c, status, code, err.Error())
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
