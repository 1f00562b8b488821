package controller

import (
	"net/http"

	"farmassist/internal/modules/i18n/labels"
)

type LabelsController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type labelsControllerImpl struct {
	catalog     *labels.Catalog
	defaultLang labels.Lang
}

func NewLabelsController(catalog *labels.Catalog, defaultLang labels.Lang) LabelsController {
	return &labelsControllerImpl{catalog: catalog, defaultLang: defaultLang}
}

func (c *labelsControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/labels", c.handleLabels)
}
