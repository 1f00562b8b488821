package controller

import (
	"errors"
	"net/http"

	"farmassist/internal/modules/i18n/labels"
	"farmassist/internal/modules/irrigation/types"
	"farmassist/internal/utils"
)

var reasonKeys = map[types.Reason]labels.Key{
	types.RainExpected:       labels.ReasonRainExpected,
	types.MoistureSufficient: labels.ReasonMoistureSufficient,
	types.HotDryConditions:   labels.ReasonHotDry,
}

var cropKeys = map[types.Crop]labels.Key{
	types.Wheat:     labels.CropWheat,
	types.Rice:      labels.CropRice,
	types.Maize:     labels.CropMaize,
	types.Cotton:    labels.CropCotton,
	types.Sugarcane: labels.CropSugarcane,
}

var soilKeys = map[types.Soil]labels.Key{
	types.Sandy: labels.SoilSandy,
	types.Loam:  labels.SoilLoam,
	types.Clay:  labels.SoilClay,
}

func requestLang(r *http.Request, fallback labels.Lang) (labels.Lang, error) {
	if s := r.URL.Query().Get("lang"); s != "" {
		return labels.ParseLang(s)
	}
	return labels.Negotiate(r.Header.Get("Accept-Language"), fallback), nil
}

func parseQuery(req recommendRequest) (types.Query, error) {
	crop, err := types.ParseCrop(req.Crop)
	if err != nil {
		return types.Query{}, err
	}
	soil, err := types.ParseSoil(req.Soil)
	if err != nil {
		return types.Query{}, err
	}
	lastWatered, err := types.ParseDate(req.LastWatered)
	if err != nil {
		return types.Query{}, err
	}
	return types.Query{Crop: crop, Soil: soil, LastWatered: lastWatered}, nil
}

// writeAdvisorError maps advisor errors to HTTP statuses.
func writeAdvisorError(w http.ResponseWriter, err error) {
	var dataErr *types.InsufficientDataError
	var dateErr *types.InvalidDateError
	switch {
	case errors.As(err, &dataErr):
		utils.WriteError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &dateErr), errors.Is(err, types.ErrInvalidQuery):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
