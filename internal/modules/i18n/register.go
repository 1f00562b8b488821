package i18n

import (
	"net/http"

	"farmassist/internal/modules/i18n/controller"
	"farmassist/internal/modules/i18n/labels"
)

func RegisterFeature(mux *http.ServeMux, catalog *labels.Catalog, defaultLang labels.Lang) {
	labelsController := controller.NewLabelsController(catalog, defaultLang)
	labelsController.RegisterRoutes(mux)
}
