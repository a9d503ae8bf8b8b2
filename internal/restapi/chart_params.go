package restapi

import (
	"net/http"
	"net/url"

	"launchdash/internal/dashboard"
	"launchdash/internal/launches"
	"launchdash/internal/utils"
)

// chartQuery is the validated selection shared by the chart endpoints.
type chartQuery struct {
	Site   string
	Range  dashboard.PayloadRange
	Width  int
	Height int
}

// parseChartQuery reads site, width and height from the query string, plus
// min and max when withRange is set. Absent values default to "All", the dataset payload bounds and the
// default chart size. A site missing from the data is not an error.
func (api *RestAPI) parseChartQuery(r *http.Request, withRange bool) (chartQuery, map[string][]string) {
	query := r.URL.Query()
	ds := api.Dataset()
	fieldErrors := make(map[string][]string)

	result := chartQuery{Site: launches.AllSites}

	if raw, ok := query["site"]; ok && len(raw) > 0 {
		if err := utils.ValidateSite(raw[0]); err != nil {
			fieldErrors["site"] = append(fieldErrors["site"], err.Error())
		} else {
			result.Site = utils.SanitizeInput(raw[0])
		}
	}

	if withRange {
		result.Range.Min, fieldErrors = utils.ParseFloatParam(query, "min", ds.MinPayload(), fieldErrors)
		result.Range.Max, fieldErrors = utils.ParseFloatParam(query, "max", ds.MaxPayload(), fieldErrors)
	}

	result.Width, fieldErrors = parseDimension(query, "width", dashboard.DefaultChartWidth, fieldErrors)
	result.Height, fieldErrors = parseDimension(query, "height", dashboard.DefaultChartHeight, fieldErrors)

	if len(fieldErrors) == 0 {
		return result, nil
	}
	return result, fieldErrors
}

func parseDimension(query url.Values, key string, defaultValue int, fieldErrors map[string][]string) (int, map[string][]string) {
	before := len(fieldErrors[key])
	pixels, fieldErrors := utils.ParseIntParam(query, key, defaultValue, fieldErrors)
	if len(fieldErrors[key]) > before || pixels == defaultValue {
		return pixels, fieldErrors
	}

	if err := utils.ValidateChartDimension(pixels); err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
		return defaultValue, fieldErrors
	}
	return pixels, fieldErrors
}
