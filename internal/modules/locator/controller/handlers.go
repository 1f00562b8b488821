package controller

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"farmassist/internal/modules/locator/service"
	"farmassist/internal/modules/locator/types"
	"farmassist/internal/utils"
)

type pointView struct {
	ID          string                `json:"id"`
	Name        types.Text            `json:"name"`
	Address     types.Text            `json:"address"`
	Category    types.Category        `json:"category"`
	Coordinates types.Coordinates     `json:"coordinates"`
	PinColor    string                `json:"pinColor"`
	Shop        *types.ShopDetails    `json:"shop,omitempty"`
	College     *types.CollegeDetails `json:"college,omitempty"`
}

type pinView struct {
	Category types.Category `json:"category"`
	Color    string         `json:"color"`
}

func toView(p types.Point) pointView {
	v := pointView{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Category:    p.Category,
		Coordinates: p.Coordinates,
		PinColor:    service.PinColor(p.Category),
	}
	if d, ok := p.Shop(); ok {
		v.Shop = &d
	}
	if d, ok := p.College(); ok {
		v.College = &d
	}
	return v
}

func (c *locatorControllerImpl) handlePoints(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var category types.Category
	if s := q.Get("category"); s != "" {
		parsed, err := types.ParseCategory(s)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		category = parsed
	}

	query := q.Get("q")
	if n := utf8.RuneCountInString(query); n > service.MaxQueryRunes {
		utils.WriteError(w, http.StatusBadRequest, fmt.Sprintf("query has %d characters, max %d", n, service.MaxQueryRunes))
		return
	}

	points := c.service.Search(query, category)
	out := make([]pointView, 0, len(points))
	for _, p := range points {
		out = append(out, toView(p))
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (c *locatorControllerImpl) handlePoint(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing point id")
		return
	}
	p, ok := c.service.Get(id)
	if !ok {
		utils.WriteError(w, http.StatusNotFound, "point not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, toView(p))
}

func (c *locatorControllerImpl) handlePins(w http.ResponseWriter, r *http.Request) {
	out := make([]pinView, 0, len(types.Categories))
	for _, cat := range types.Categories {
		out = append(out, pinView{Category: cat, Color: service.PinColor(cat)})
	}
	utils.WriteJSON(w, http.StatusOK, out)
}
