package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// SiteFromPath returns the launch site named by the route parameter param.
// Site names may end in ".json", which is dropped; dots inside the name are kept.
func SiteFromPath(r *http.Request, param string) string {
	site := httprouter.ParamsFromContext(r.Context()).ByName(param)
	return strings.TrimSuffix(site, ".json")
}
