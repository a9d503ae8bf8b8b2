package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html dashboard.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	ds := webUI.Dataset()

	switch dataType {
	case "records":
		data = ds.Records()
		title = "Launch Data - Records"
	case "sites":
		data = ds.SiteOptions()
		title = "Launch Data - Sites"
	case "summary":
		statistics, err := ds.Statistics()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data = statistics
		title = "Launch Data - Summary"
	default:
		data = map[string]string{
			"error": "Please use one of the following: records, sites, summary.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
