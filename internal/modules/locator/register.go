package locator

import (
	"net/http"

	"farmassist/internal/modules/locator/controller"
	"farmassist/internal/modules/locator/service"
)

func RegisterFeature(mux *http.ServeMux, svc *service.Service) {
	locatorController := controller.NewLocatorController(svc)
	locatorController.RegisterRoutes(mux)
}
