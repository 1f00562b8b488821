package controller

import (
	"net/http"

	"farmassist/internal/modules/community/types"
)

// FeedService is the mutable community feed.
type FeedService interface {
	Posts() []types.Post
	Groups() []types.Group
	Like(id string) (types.Post, error)
	Unlike(id string) (types.Post, error)
	Share(id string) (types.Post, error)
	Comment(id, author, body string) (types.Comment, error)
}

type CommunityController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type communityControllerImpl struct {
	feed FeedService
}

func NewCommunityController(feed FeedService) CommunityController {
	return &communityControllerImpl{feed: feed}
}

func (c *communityControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/feed", c.handleFeed)
	mux.Handle("POST /api/v1/feed/{id}/like", counterHandler(c.feed.Like))
	mux.Handle("DELETE /api/v1/feed/{id}/like", counterHandler(c.feed.Unlike))
	mux.HandleFunc("POST /api/v1/feed/{id}/comments", c.handleComment)
	mux.Handle("POST /api/v1/feed/{id}/share", counterHandler(c.feed.Share))
	mux.HandleFunc("GET /api/v1/groups", c.handleGroups)
}
