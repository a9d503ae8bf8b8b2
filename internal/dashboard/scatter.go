package dashboard

import (
	"fmt"

	"launchdash/internal/launches"
	"launchdash/internal/models"
)

// ColorByBoosterLabel names the field scatter points are colored by.
const ColorByBoosterLabel = "Booster_Version_abr"

// PayloadRange is the payload selection from the range control.
type PayloadRange struct {
	Min float64
	Max float64
}

// Contains reports whether payload lies strictly inside the range. Boundary
// values are excluded, so an inverted range contains nothing.
func (r PayloadRange) Contains(payload float64) bool {
	return r.Min < payload && payload < r.Max
}

// PayloadScatter selects the launches whose payload lies strictly inside rng,
// restricted to site unless site is launches.AllSites, and describes them as a
// payload vs. outcome scatter plot.
//
// The payload axis is pinned to the closed range [rng.Min, rng.Max] when a
// single site is selected and autoscales for all sites.
func PayloadScatter(ds *launches.Dataset, site string, rng PayloadRange) models.ScatterChart {
	allSites := site == launches.AllSites

	points := make([]models.ScatterPoint, 0)
	for _, rec := range ds.Records() {
		if !allSites && rec.LaunchSite != site {
			continue
		}
		if !rng.Contains(rec.PayloadMassKg) {
			continue
		}
		points = append(points, models.ScatterPoint{
			PayloadMassKg: rec.PayloadMassKg,
			Class:         rec.Class,
			BoosterLabel:  rec.BoosterLabel,
			LaunchSite:    rec.LaunchSite,
		})
	}

	chart := models.ScatterChart{
		Type:         models.ChartTypeScatter,
		Site:         site,
		PayloadRange: models.AxisRange{Min: rng.Min, Max: rng.Max},
		ColorBy:      ColorByBoosterLabel,
		Points:       points,
		XAxis: models.Axis{
			Title: launches.ColumnPayloadMass,
		},
		YAxis: models.Axis{
			Title:      launches.ColumnClass,
			Range:      &models.AxisRange{Min: -0.5, Max: 1.5},
			TickValues: []float64{0, 1},
			TickText:   []string{LabelFailure, LabelSuccess},
		},
	}

	if allSites {
		chart.Title = "Launch Status vs. Payload All Sites"
	} else {
		chart.Title = fmt.Sprintf("Launch Status vs. Payload for Site = %s", site)
		chart.XAxis.Range = &models.AxisRange{Min: rng.Min, Max: rng.Max}
	}

	return chart
}
