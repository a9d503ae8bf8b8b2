package launches

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
)

// SiteStatistics summarises the launches of one site, or of every site when
// Site is AllSites.
type SiteStatistics struct {
	Site          string
	Launches      int
	Successes     int
	SuccessRate   float64
	MeanPayload   float64
	MedianPayload float64
	MinPayload    float64
	MaxPayload    float64
}

// Statistics holds the overall summary followed by one entry per site, sorted by name.
type Statistics struct {
	Overall SiteStatistics
	Sites   []SiteStatistics
}

// Statistics computes launch counts, success rates and payload summaries.
func (ds *Dataset) Statistics() (Statistics, error) {
	bySite := make(map[string][]LaunchRecord)
	for _, rec := range ds.records {
		bySite[rec.LaunchSite] = append(bySite[rec.LaunchSite], rec)
	}

	overall, err := summarise(AllSites, ds.records)
	if err != nil {
		return Statistics{}, err
	}

	result := Statistics{Overall: overall}

	names := make([]string, 0, len(bySite))
	for name := range bySite {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		siteStats, err := summarise(name, bySite[name])
		if err != nil {
			return Statistics{}, err
		}
		result.Sites = append(result.Sites, siteStats)
	}

	return result, nil
}

func summarise(site string, records []LaunchRecord) (SiteStatistics, error) {
	summary := SiteStatistics{Site: site, Launches: len(records)}
	if len(records) == 0 {
		return summary, nil
	}

	payloads := make(stats.Float64Data, len(records))
	for i, rec := range records {
		payloads[i] = rec.PayloadMassKg
		if rec.Succeeded() {
			summary.Successes++
		}
	}
	summary.SuccessRate = float64(summary.Successes) / float64(summary.Launches)

	var err error
	if summary.MeanPayload, err = payloads.Mean(); err != nil {
		return summary, fmt.Errorf("mean payload for %s: %w", site, err)
	}
	if summary.MedianPayload, err = payloads.Median(); err != nil {
		return summary, fmt.Errorf("median payload for %s: %w", site, err)
	}
	if summary.MinPayload, err = payloads.Min(); err != nil {
		return summary, fmt.Errorf("min payload for %s: %w", site, err)
	}
	if summary.MaxPayload, err = payloads.Max(); err != nil {
		return summary, fmt.Errorf("max payload for %s: %w", site, err)
	}

	return summary, nil
}
