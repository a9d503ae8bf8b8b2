package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func rateLimited(api *RestAPI, finalHandler handlerFunc) http.Handler {
	handler := http.Handler(http.HandlerFunc(finalHandler))
	if api.rateLimiter == nil {
		return handler
	}
	return api.rateLimiter.Handler(handler)
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/sites.json", rateLimited(api, api.sitesHandler))
	router.Handler(http.MethodGet, "/api/sites/:site", rateLimited(api, api.siteSummaryHandler))
	router.Handler(http.MethodGet, "/api/summary.json", rateLimited(api, api.summaryHandler))
	router.Handler(http.MethodGet, "/api/charts/success-pie.json", rateLimited(api, api.successPieHandler))
	router.Handler(http.MethodGet, "/api/charts/success-pie.svg", rateLimited(api, api.successPieSVGHandler))
	router.Handler(http.MethodGet, "/api/charts/payload-scatter.json", rateLimited(api, api.payloadScatterHandler))
	router.Handler(http.MethodGet, "/api/charts/payload-scatter.svg", rateLimited(api, api.payloadScatterSVGHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}
