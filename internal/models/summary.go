package models

type SiteSummary struct {
	Site          string  `json:"site"`
	Launches      int     `json:"launches"`
	Successes     int     `json:"successes"`
	Failures      int     `json:"failures"`
	SuccessRate   float64 `json:"successRate"`
	MeanPayload   float64 `json:"meanPayloadKg"`
	MedianPayload float64 `json:"medianPayloadKg"`
	MinPayload    float64 `json:"minPayloadKg"`
	MaxPayload    float64 `json:"maxPayloadKg"`
}

// Summary is the dataset statistics payload.
type Summary struct {
	Source   string        `json:"source"`
	LoadedAt int64         `json:"loadedAt"`
	Overall  SiteSummary   `json:"overall"`
	Sites    []SiteSummary `json:"sites"`
}
