package restapi

import (
	"net/http"

	"launchdash/internal/launches"
	"launchdash/internal/models"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	statistics, err := api.Dataset().Statistics()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	summary := models.Summary{
		Source:   api.Launches.Source(),
		LoadedAt: api.Launches.LoadedAt().UnixMilli(),
		Overall:  siteSummaryFromStatistics(statistics.Overall),
		Sites:    make([]models.SiteSummary, 0, len(statistics.Sites)),
	}
	for _, siteStats := range statistics.Sites {
		summary.Sites = append(summary.Sites, siteSummaryFromStatistics(siteStats))
	}

	api.sendResponse(w, r, models.NewEntryResponse(summary))
}

func siteSummaryFromStatistics(s launches.SiteStatistics) models.SiteSummary {
	return models.SiteSummary{
		Site:          s.Site,
		Launches:      s.Launches,
		Successes:     s.Successes,
		Failures:      s.Launches - s.Successes,
		SuccessRate:   s.SuccessRate,
		MeanPayload:   s.MeanPayload,
		MedianPayload: s.MedianPayload,
		MinPayload:    s.MinPayload,
		MaxPayload:    s.MaxPayload,
	}
}
