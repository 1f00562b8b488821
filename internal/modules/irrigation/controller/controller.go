package controller

import (
	"net/http"

	"farmassist/internal/modules/i18n/labels"
	"farmassist/internal/modules/irrigation/types"
)

type Recommender interface {
	Recommend(q types.Query) (types.Decision, error)
}

type IrrigationController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type irrigationControllerImpl struct {
	advisor     Recommender
	catalog     *labels.Catalog
	defaultLang labels.Lang
}

func NewIrrigationController(advisor Recommender, catalog *labels.Catalog, defaultLang labels.Lang) IrrigationController {
	return &irrigationControllerImpl{advisor: advisor, catalog: catalog, defaultLang: defaultLang}
}

func (c *irrigationControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/irrigation/recommend", c.handleRecommend)
	mux.HandleFunc("GET /api/v1/irrigation/options", c.handleOptions)
}
