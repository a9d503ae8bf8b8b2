package dashboard

import (
	"fmt"
	"sort"

	"launchdash/internal/launches"
	"launchdash/internal/models"
)

const (
	LabelFailure = "Failure"
	LabelSuccess = "Success"

	ColorSuccess = "blue"
	ColorFailure = "gray"
)

var outcomeLabels = [2]string{LabelFailure, LabelSuccess}

// SuccessPie aggregates launch outcomes for the pie chart.
//
// For launches.AllSites it counts successful launches per site, ordered by
// site name. For a specific site it counts failures and successes at that site,
// ordered by class. An unknown site yields a chart with no slices.
func SuccessPie(ds *launches.Dataset, site string) models.PieChart {
	if site == launches.AllSites {
		return successesBySite(ds)
	}
	return outcomesForSite(ds, site)
}

func successesBySite(ds *launches.Dataset) models.PieChart {
	counts := make(map[string]int)
	for _, rec := range ds.Records() {
		if rec.Succeeded() {
			counts[rec.LaunchSite]++
		}
	}

	sites := make([]string, 0, len(counts))
	for site := range counts {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	slices := make([]models.PieSlice, 0, len(sites))
	for _, site := range sites {
		slices = append(slices, models.PieSlice{Label: site, Value: counts[site]})
	}

	return models.PieChart{
		Type:   models.ChartTypePie,
		Title:  "Launch Successes All Sites",
		Site:   launches.AllSites,
		Slices: withPercentages(slices),
	}
}

func outcomesForSite(ds *launches.Dataset, site string) models.PieChart {
	var counts [2]int
	for _, rec := range ds.Records() {
		if rec.LaunchSite == site {
			counts[rec.Class]++
		}
	}

	slices := make([]models.PieSlice, 0, 2)
	colors := map[string]string{LabelSuccess: ColorSuccess, LabelFailure: ColorFailure}
	for class, count := range counts {
		if count == 0 {
			continue
		}
		label := outcomeLabels[class]
		slices = append(slices, models.PieSlice{Label: label, Value: count, Color: colors[label]})
	}

	return models.PieChart{
		Type:         models.ChartTypePie,
		Title:        fmt.Sprintf("Launch Success Rate for Site: %s", site),
		Site:         site,
		Slices:       withPercentages(slices),
		ColorMap:     colors,
		TextInfo:     "percent+label",
		TextPosition: "inside",
	}
}

func withPercentages(slices []models.PieSlice) []models.PieSlice {
	total := 0
	for _, s := range slices {
		total += s.Value
	}
	if total == 0 {
		return slices
	}
	for i := range slices {
		slices[i].Percent = 100 * float64(slices[i].Value) / float64(total)
	}
	return slices
}
