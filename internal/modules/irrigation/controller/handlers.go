package controller

import (
	"log/slog"
	"net/http"

	"farmassist/internal/modules/i18n/labels"
	"farmassist/internal/modules/irrigation/service"
	"farmassist/internal/modules/irrigation/types"
	"farmassist/internal/utils"
)

type recommendRequest struct {
	Crop        string `json:"crop"`
	Soil        string `json:"soil"`
	LastWatered string `json:"lastWatered"`
}

type recommendResponse struct {
	types.Decision
	Lang    labels.Lang `json:"lang"`
	Message string      `json:"message"`
}

type option struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	ThresholdDays int    `json:"thresholdDays,omitempty"`
}

type optionsResponse struct {
	Lang  labels.Lang `json:"lang"`
	Crops []option    `json:"crops"`
	Soils []option    `json:"soils"`
}

func (c *irrigationControllerImpl) handleRecommend(w http.ResponseWriter, r *http.Request) {
	lang, err := requestLang(r, c.defaultLang)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req recommendRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	q, err := parseQuery(req)
	if err != nil {
		writeAdvisorError(w, err)
		return
	}

	decision, err := c.advisor.Recommend(q)
	if err != nil {
		writeAdvisorError(w, err)
		return
	}

	msg, err := c.catalog.Lookup(lang, reasonKeys[decision.Reason])
	if err != nil {
		slog.Error("irrigation: reason label missing", "reason", decision.Reason, "lang", lang, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to localize reason")
		return
	}
	utils.WriteJSON(w, http.StatusOK, recommendResponse{Decision: decision, Lang: lang, Message: msg})
}

func (c *irrigationControllerImpl) handleOptions(w http.ResponseWriter, r *http.Request) {
	lang, err := requestLang(r, c.defaultLang)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := optionsResponse{Lang: lang}
	for _, crop := range types.Crops {
		label, err := c.catalog.Lookup(lang, cropKeys[crop])
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Crops = append(resp.Crops, option{ID: string(crop), Label: label})
	}
	for _, soil := range types.Soils {
		label, err := c.catalog.Lookup(lang, soilKeys[soil])
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Soils = append(resp.Soils, option{ID: string(soil), Label: label, ThresholdDays: service.SoilThreshold(soil)})
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}
