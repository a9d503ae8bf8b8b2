package restapi

import (
	"bytes"
	"net/http"

	"launchdash/internal/dashboard"
	"launchdash/internal/models"
)

func (api *RestAPI) successPieHandler(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := api.parseChartQuery(r, false)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	pie := dashboard.SuccessPie(api.Dataset(), query.Site)
	api.sendResponse(w, r, models.NewEntryResponse(pie))
}

func (api *RestAPI) successPieSVGHandler(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := api.parseChartQuery(r, false)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	pie := dashboard.SuccessPie(api.Dataset(), query.Site)

	var buf bytes.Buffer
	if err := dashboard.RenderPie(&buf, pie, query.Width, query.Height); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendSVG(w, r, buf.Bytes())
}
