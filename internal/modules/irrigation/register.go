package irrigation

import (
	"net/http"

	"farmassist/internal/modules/i18n/labels"
	"farmassist/internal/modules/irrigation/controller"
	"farmassist/internal/modules/irrigation/service"
)

func RegisterFeature(mux *http.ServeMux, advisor *service.Advisor, catalog *labels.Catalog, defaultLang labels.Lang) {
	irrigationController := controller.NewIrrigationController(advisor, catalog, defaultLang)
	irrigationController.RegisterRoutes(mux)
}
