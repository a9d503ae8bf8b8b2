package launches

import (
	"errors"
	"slices"

	"github.com/montanaflynn/stats"
)

// AllSites is the synthetic site selection that matches every launch site.
const AllSites = "All"

// Column names expected in the source file.
const (
	ColumnLaunchSite     = "Launch Site"
	ColumnPayloadMass    = "Payload Mass (kg)"
	ColumnClass          = "class"
	ColumnBoosterVersion = "Booster Version"
)

// LaunchRecord is one launch attempt.
type LaunchRecord struct {
	LaunchSite     string
	PayloadMassKg  float64
	Class          int
	BoosterVersion string
	BoosterLabel   string
}

// Succeeded reports whether the launch outcome class is 1.
func (r LaunchRecord) Succeeded() bool {
	return r.Class == 1
}

// Dataset is the immutable, fully resident collection of launch records.
// It is built once and shared by reference; none of its methods mutate it.
type Dataset struct {
	records    []LaunchRecord
	sites      []string
	siteIndex  map[string]struct{}
	minPayload float64
	maxPayload float64
}

// NewDataset validates records, derives each short booster label and computes
// the payload bounds and the distinct site list. The input slice is copied.
func NewDataset(records []LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{
		records:   make([]LaunchRecord, len(records)),
		siteIndex: make(map[string]struct{}),
	}
	payloads := make([]float64, len(records))

	for i, rec := range records {
		row := i + 1
		if rec.LaunchSite == "" {
			return nil, &MalformedRecordError{Row: row, Column: ColumnLaunchSite, Value: rec.LaunchSite, Reason: "launch site is empty"}
		}
		if rec.PayloadMassKg < 0 {
			return nil, &MalformedRecordError{Row: row, Column: ColumnPayloadMass, Value: formatFloat(rec.PayloadMassKg), Reason: "payload mass is negative"}
		}
		if rec.Class != 0 && rec.Class != 1 {
			return nil, &MalformedRecordError{Row: row, Column: ColumnClass, Value: formatFloat(float64(rec.Class)), Reason: "class must be 0 or 1"}
		}

		label, err := ShortBoosterLabel(rec.BoosterVersion)
		if err != nil {
			return nil, &MalformedRecordError{Row: row, Column: ColumnBoosterVersion, Value: rec.BoosterVersion, Reason: err.Error()}
		}
		rec.BoosterLabel = label

		if _, seen := ds.siteIndex[rec.LaunchSite]; !seen {
			ds.siteIndex[rec.LaunchSite] = struct{}{}
			ds.sites = append(ds.sites, rec.LaunchSite)
		}

		ds.records[i] = rec
		payloads[i] = rec.PayloadMassKg
	}

	var err error
	if ds.minPayload, err = stats.Min(payloads); err != nil {
		return nil, errors.Join(ErrEmptyDataset, err)
	}
	if ds.maxPayload, err = stats.Max(payloads); err != nil {
		return nil, errors.Join(ErrEmptyDataset, err)
	}

	return ds, nil
}

// Len returns the number of records.
func (ds *Dataset) Len() int {
	return len(ds.records)
}

// Records returns a copy of the records in source order.
func (ds *Dataset) Records() []LaunchRecord {
	return slices.Clone(ds.records)
}

// Sites returns the distinct launch sites in first-seen order.
func (ds *Dataset) Sites() []string {
	return slices.Clone(ds.sites)
}

// SiteOptions returns the dropdown options: the distinct sites followed by AllSites.
func (ds *Dataset) SiteOptions() []string {
	return append(ds.Sites(), AllSites)
}

// HasSite reports whether site occurs in the data. AllSites is not a real site.
func (ds *Dataset) HasSite(site string) bool {
	_, ok := ds.siteIndex[site]
	return ok
}

func (ds *Dataset) MinPayload() float64 {
	return ds.minPayload
}

func (ds *Dataset) MaxPayload() float64 {
	return ds.maxPayload
}
