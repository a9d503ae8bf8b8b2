package webui

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/google/uuid"

	"launchdash/internal/launches"
	"launchdash/internal/logging"
	"launchdash/internal/models"
)

const dashboardTitle = "SpaceX Launch Records Dashboard"

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "dashboard.html"))

type dashboardPage struct {
	Title       string
	Nonce       string
	Sites       []string
	DefaultSite string
	MinPayload  float64
	MaxPayload  float64
	Slider      models.SliderConfig
}

// dashboardPolicy allows the page's own nonce-tagged script and style and
// chart images served from the same origin.
func dashboardPolicy(nonce string) string {
	return fmt.Sprintf("default-src 'none'; img-src 'self'; script-src 'nonce-%[1]s'; style-src 'nonce-%[1]s'; frame-ancestors 'none';", nonce)
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	ds := webUI.Dataset()

	page := dashboardPage{
		Title:       dashboardTitle,
		Nonce:       uuid.NewString(),
		Sites:       ds.SiteOptions(),
		DefaultSite: launches.AllSites,
		MinPayload:  ds.MinPayload(),
		MaxPayload:  ds.MaxPayload(),
		Slider:      models.DefaultSliderConfig(),
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render dashboard", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", dashboardPolicy(page.Nonce))
	_, _ = w.Write(buf.Bytes())
}
