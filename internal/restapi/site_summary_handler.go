package restapi

import (
	"net/http"

	"launchdash/internal/launches"
	"launchdash/internal/models"
	"launchdash/internal/utils"
)

func (api *RestAPI) siteSummaryHandler(w http.ResponseWriter, r *http.Request) {
	site := utils.SiteFromPath(r, "site")

	if err := utils.ValidateSite(site); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"site": {err.Error()},
		})
		return
	}

	if site != launches.AllSites && !api.Dataset().HasSite(site) {
		api.sendNotFound(w, r)
		return
	}

	statistics, err := api.Dataset().Statistics()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if site == launches.AllSites {
		api.sendResponse(w, r, models.NewEntryResponse(siteSummaryFromStatistics(statistics.Overall)))
		return
	}

	for _, siteStats := range statistics.Sites {
		if siteStats.Site == site {
			api.sendResponse(w, r, models.NewEntryResponse(siteSummaryFromStatistics(siteStats)))
			return
		}
	}

	api.sendNotFound(w, r)
}
