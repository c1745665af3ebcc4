package handlers

import (
	"net/http"

	"ai-energy-forecast/internal/analysis"
	"ai-energy-forecast/internal/api/models"
	"ai-energy-forecast/internal/forecast"
	"ai-energy-forecast/internal/model"

	"github.com/gin-gonic/gin"
)

// MatrixHandler serves scenario sweeps.
type MatrixHandler struct {
	engine *forecast.Engine
}

func NewMatrixHandler(engine *forecast.Engine) *MatrixHandler {
	return &MatrixHandler{engine: engine}
}

// BuildMatrix handles POST /api/v1/matrix.
func (h *MatrixHandler) BuildMatrix(c *gin.Context) {
	var req models.MatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	spec := analysis.DefaultMatrixSpec()
	if len(req.PowersGW) > 0 {
		spec.PowersGW = req.PowersGW
	}
	if len(req.Years) > 0 {
		spec.Years = req.Years
	}
	if len(req.Mixes) > 0 {
		presets := make([]analysis.MixPreset, 0, len(req.Mixes))
		for _, m := range req.Mixes {
			presets = append(presets, analysis.MixPreset{
				Name: m.Name,
				Mix:  model.EnergyMix(m.Mix),
			})
		}
		spec.Presets = presets
	}

	rows, err := analysis.BuildMatrix(h.engine, spec)
	if err != nil {
		respondModelError(c, err)
		return
	}
	if req.SortByFeasibility {
		analysis.SortByFeasibility(rows)
	}

	out := make([]models.MatrixRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.MatrixRow{
			PowerGW:             r.PowerGW,
			Year:                r.Year,
			MixName:             r.MixName,
			UnitCount:           r.UnitCount,
			TotalThroughput:     r.TotalThroughput,
			CapExUSD:            r.CapExUSD,
			CapExPerWatt:        r.CapExPerWatt,
			PctWorldElectricity: r.PctWorldElectricity,
			PctWorldGDP:         r.PctWorldGDP,
			Transformers:        r.Transformers,
			PVModules:           r.PVModules,
			Turbines:            r.Turbines,
			AnnualTokens:        r.AnnualTokens,
			Feasibility:         r.Feasibility,
		})
	}

	c.JSON(http.StatusOK, models.MatrixResponse{Rows: out})
}

// ListMixes handles GET /api/v1/mixes.
func (h *MatrixHandler) ListMixes(c *gin.Context) {
	presets := analysis.DefaultMixPresets()
	out := make([]models.MixInfo, 0, len(presets))
	for _, p := range presets {
		out = append(out, models.MixInfo{Name: p.Name, Mix: p.Mix})
	}
	c.JSON(http.StatusOK, gin.H{"mixes": out})
}

// GetConstants handles GET /api/v1/constants.
func (h *MatrixHandler) GetConstants(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Constants())
}
