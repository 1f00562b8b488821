package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"farmassist/internal/modules/community/types"
	"farmassist/internal/utils"
)

type commentRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

func writeFeedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrPostNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrInvalidComment):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, types.ErrThreadFull):
		utils.WriteError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("community feed update failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func (c *communityControllerImpl) handleFeed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, c.feed.Posts())
}

func (c *communityControllerImpl) handleGroups(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, c.feed.Groups())
}

// counterHandler serves the like, unlike and share routes.
func counterHandler(update func(string) (types.Post, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := update(r.PathValue("id"))
		if err != nil {
			writeFeedError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, post)
	}
}

func (c *communityControllerImpl) handleComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	comment, err := c.feed.Comment(r.PathValue("id"), req.Author, req.Body)
	if err != nil {
		writeFeedError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, comment)
}
