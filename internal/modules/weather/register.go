package weather

import (
	"net/http"

	"farmassist/internal/modules/weather/controller"
	"farmassist/internal/modules/weather/service"
)

func RegisterFeature(mux *http.ServeMux, store *service.Store) {
	weatherController := controller.NewWeatherController(store)
	weatherController.RegisterRoutes(mux)
}
