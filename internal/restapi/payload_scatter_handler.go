package restapi

import (
	"bytes"
	"net/http"

	"launchdash/internal/dashboard"
	"launchdash/internal/models"
)

func (api *RestAPI) payloadScatterHandler(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := api.parseChartQuery(r, true)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	scatter := dashboard.PayloadScatter(api.Dataset(), query.Site, query.Range)
	api.sendResponse(w, r, models.NewEntryResponse(scatter))
}

func (api *RestAPI) payloadScatterSVGHandler(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := api.parseChartQuery(r, true)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	scatter := dashboard.PayloadScatter(api.Dataset(), query.Site, query.Range)

	var buf bytes.Buffer
	if err := dashboard.RenderScatter(&buf, scatter, query.Width, query.Height); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendSVG(w, r, buf.Bytes())
}
