package models

// SliderConfig is the payload range control layout.
type SliderConfig struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// DefaultSliderConfig matches the 0-10000 kg control in 1000 kg steps.
func DefaultSliderConfig() SliderConfig {
	return SliderConfig{Min: 0, Max: 10000, Step: 1000}
}

// SiteList is the data backing the site dropdown and payload control.
type SiteList struct {
	Sites       []string     `json:"sites"`
	DefaultSite string       `json:"defaultSite"`
	MinPayload  float64      `json:"minPayload"`
	MaxPayload  float64      `json:"maxPayload"`
	Slider      SliderConfig `json:"slider"`
}
