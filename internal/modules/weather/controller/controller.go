package controller

import (
	"net/http"
	"time"

	"farmassist/internal/modules/weather/types"
)

// ForecastReader is the read side of the forecast store.
type ForecastReader interface {
	Current() types.Series
	Today() time.Time
	Info() (source string, updatedAt time.Time)
}

type WeatherController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type weatherControllerImpl struct {
	forecast ForecastReader
}

func NewWeatherController(forecast ForecastReader) WeatherController {
	return &weatherControllerImpl{forecast: forecast}
}

func (c *weatherControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/forecast", c.handleForecast)
	mux.HandleFunc("POST /api/v1/spraying/classify", c.handleClassify)
}
