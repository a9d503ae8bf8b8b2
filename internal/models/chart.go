package models

const (
	ChartTypePie     = "pie"
	ChartTypeScatter = "scatter"
)

// PieSlice is one wedge of a pie chart. Percent is the share of the chart total.
type PieSlice struct {
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color,omitempty"`
}

// PieChart describes a pie chart for the rendering layer.
type PieChart struct {
	Type         string            `json:"type"`
	Title        string            `json:"title"`
	Site         string            `json:"site"`
	Slices       []PieSlice        `json:"slices"`
	ColorMap     map[string]string `json:"colorMap,omitempty"`
	TextInfo     string            `json:"textInfo,omitempty"`
	TextPosition string            `json:"textPosition,omitempty"`
}

// Total returns the sum of all slice values.
func (c PieChart) Total() int {
	total := 0
	for _, s := range c.Slices {
		total += s.Value
	}
	return total
}

// AxisRange is a closed display range.
type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Axis describes one chart axis. A nil Range means autoscale.
type Axis struct {
	Title      string     `json:"title"`
	Range      *AxisRange `json:"range"`
	TickValues []float64  `json:"tickValues,omitempty"`
	TickText   []string   `json:"tickText,omitempty"`
}

type ScatterPoint struct {
	PayloadMassKg float64 `json:"payloadMassKg"`
	Class         int     `json:"class"`
	BoosterLabel  string  `json:"boosterLabel"`
	LaunchSite    string  `json:"launchSite"`
}

// ScatterChart describes a payload vs. outcome scatter plot.
type ScatterChart struct {
	Type         string         `json:"type"`
	Title        string         `json:"title"`
	Site         string         `json:"site"`
	PayloadRange AxisRange      `json:"payloadRange"`
	ColorBy      string         `json:"colorBy"`
	Points       []ScatterPoint `json:"points"`
	XAxis        Axis           `json:"xAxis"`
	YAxis        Axis           `json:"yAxis"`
}

// BoosterLabels returns the distinct booster labels in first-seen order.
func (c ScatterChart) BoosterLabels() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, p := range c.Points {
		if !seen[p.BoosterLabel] {
			seen[p.BoosterLabel] = true
			labels = append(labels, p.BoosterLabel)
		}
	}
	return labels
}
