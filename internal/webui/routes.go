package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"launchdash/internal/app"
)

// WebUI serves the HTML pages. Chart images are fetched from the REST API.
type WebUI struct {
	*app.Application
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
