package community

import (
	"net/http"

	"farmassist/internal/modules/community/controller"
	"farmassist/internal/modules/community/service"
)

func RegisterFeature(mux *http.ServeMux, feed *service.Feed) {
	communityController := controller.NewCommunityController(feed)
	communityController.RegisterRoutes(mux)
}
