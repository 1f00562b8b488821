package controller

import (
	"net/http"
	"time"

	"farmassist/internal/modules/weather/types"
	"farmassist/internal/utils"
)

type forecastResponse struct {
	Today     string       `json:"today"`
	Source    string       `json:"source"`
	UpdatedAt *time.Time   `json:"updatedAt,omitempty"`
	Days      types.Series `json:"days"`
}

type classifyResponse struct {
	SprayCategory types.SprayCategory `json:"sprayCategory"`
}

func (c *weatherControllerImpl) handleForecast(w http.ResponseWriter, r *http.Request) {
	days, err := parseForecastQuery(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	series := c.forecast.Current()
	if len(series) > days {
		series = series[:days]
	}
	source, updatedAt := c.forecast.Info()

	resp := forecastResponse{
		Today:  c.forecast.Today().Format(types.DateLayout),
		Source: source,
		Days:   series,
	}
	if !updatedAt.IsZero() {
		resp.UpdatedAt = &updatedAt
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

func (c *weatherControllerImpl) handleClassify(w http.ResponseWriter, r *http.Request) {
	var snap types.Snapshot
	if err := utils.DecodeJSON(r, &snap); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := snap.Validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, classifyResponse{SprayCategory: types.Classify(snap)})
}
