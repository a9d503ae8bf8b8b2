package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"launchdash/internal/models"
)

func TestSitesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/sites.json")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, 200, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)
	assert.NotZero(t, model.CurrentTime)

	var siteList models.SiteList
	decodeEntry(t, model, &siteList)

	assert.Equal(t, []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40", "All"}, siteList.Sites)
	assert.Equal(t, "All", siteList.DefaultSite)
	assert.Equal(t, 0.0, siteList.MinPayload)
	assert.Equal(t, 9600.0, siteList.MaxPayload)
	assert.Equal(t, models.SliderConfig{Min: 0, Max: 10000, Step: 1000}, siteList.Slider)
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/nothing-here.json")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Equal(t, "resource not found", model.Text)
}
