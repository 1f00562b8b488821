package controller

import (
	"net/http"

	"farmassist/internal/modules/i18n/labels"
	"farmassist/internal/utils"
)

type labelsResponse struct {
	Lang   labels.Lang           `json:"lang"`
	Labels map[labels.Key]string `json:"labels"`
}

// resolveLang prefers an explicit ?lang= over Accept-Language.
func resolveLang(r *http.Request, fallback labels.Lang) (labels.Lang, error) {
	if s := r.URL.Query().Get("lang"); s != "" {
		return labels.ParseLang(s)
	}
	return labels.Negotiate(r.Header.Get("Accept-Language"), fallback), nil
}

func (c *labelsControllerImpl) handleLabels(w http.ResponseWriter, r *http.Request) {
	lang, err := resolveLang(r, c.defaultLang)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	set, err := c.catalog.Labels(lang)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, labelsResponse{Lang: lang, Labels: set})
}
