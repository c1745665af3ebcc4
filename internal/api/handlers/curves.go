package handlers

import (
	"net/http"
	"strconv"

	"ai-energy-forecast/internal/api/models"
	"ai-energy-forecast/internal/forecast"

	"github.com/gin-gonic/gin"
)

// CurvesHandler serves efficiency-curve samples.
type CurvesHandler struct {
	engine *forecast.Engine
}

func NewCurvesHandler(engine *forecast.Engine) *CurvesHandler {
	return &CurvesHandler{engine: engine}
}

// GetCurves handles GET /api/v1/curves?from=2025&to=2040.
func (h *CurvesHandler) GetCurves(c *gin.Context) {
	constants := h.engine.Constants()

	from := constants.Curves.StartYear
	to := constants.Curves.HorizonYear
	var err error
	if v := c.Query("from"); v != "" {
		if from, err = strconv.Atoi(v); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "from must be an integer year")
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = strconv.Atoi(v); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "to must be an integer year")
			return
		}
	}
	if from < constants.BaseYear || to < from {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "year range must satisfy base_year <= from <= to")
		return
	}

	curves := h.engine.Curves()
	points := make([]models.CurvePoint, 0, to-from+1)
	for year := from; year <= to; year++ {
		points = append(points, models.CurvePoint{
			Year:           year,
			ComputeDensity: curves.ComputeDensity(year),
			WattsPerUnit:   curves.PowerPerUnit(year),
			CostPerUnit:    curves.CostPerUnit(year),
		})
	}

	c.JSON(http.StatusOK, models.CurvesResponse{Points: points})
}
