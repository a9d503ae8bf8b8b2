package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestSiteFromPath(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want string
	}{
		{
			name: "Basic site",
			path: "KSC%20LC-39A",
			want: "KSC LC-39A",
		},
		{
			name: "Site with JSON extension",
			path: "CCAFS%20LC-40.json",
			want: "CCAFS LC-40",
		},
		{
			name: "Site with multiple dots",
			path: "v1.0.json",
			want: "v1.0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.HandlerFunc(http.MethodGet, "/api/test/:site", func(w http.ResponseWriter, r *http.Request) {
				result = SiteFromPath(r, "site")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/test/"+tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result, "SiteFromPath should decode the site and drop the .json suffix")
		})
	}
}

func TestSiteFromPathWithoutRouteParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/sites/", nil)
	assert.Empty(t, SiteFromPath(req, "site"))
}
