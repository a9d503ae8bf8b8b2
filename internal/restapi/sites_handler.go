package restapi

import (
	"net/http"

	"launchdash/internal/launches"
	"launchdash/internal/models"
)

func (api *RestAPI) sitesHandler(w http.ResponseWriter, r *http.Request) {
	ds := api.Dataset()

	siteList := models.SiteList{
		Sites:       ds.SiteOptions(),
		DefaultSite: launches.AllSites,
		MinPayload:  ds.MinPayload(),
		MaxPayload:  ds.MaxPayload(),
		Slider:      models.DefaultSliderConfig(),
	}

	api.sendResponse(w, r, models.NewEntryResponse(siteList))
}
