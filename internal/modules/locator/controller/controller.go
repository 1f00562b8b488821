package controller

import (
	"net/http"

	"farmassist/internal/modules/locator/types"
)

// PointsService is the read side of the point catalog.
type PointsService interface {
	Search(query string, category types.Category) []types.Point
	Get(id string) (types.Point, bool)
}

type LocatorController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type locatorControllerImpl struct {
	service PointsService
}

func NewLocatorController(service PointsService) LocatorController {
	return &locatorControllerImpl{service: service}
}

func (c *locatorControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/points", c.handlePoints)
	mux.HandleFunc("GET /api/v1/points/{id}", c.handlePoint)
	mux.HandleFunc("GET /api/v1/pins", c.handlePins)
}
