package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"launchdash/internal/app"
	"launchdash/internal/appconf"
	"launchdash/internal/launches"
	"launchdash/internal/logging"
	"launchdash/internal/models"
)

// createTestApi creates a new RestAPI backed by the launch dataset in testdata.
// Rate limiting is disabled so tests can issue any number of requests.
func createTestApi(t *testing.T) *RestAPI {
	launchConfig := launches.Config{
		DataPath: filepath.Join("../../testdata", "spacex_launch_dash.csv"),
	}
	manager, err := launches.InitManager(launchConfig)
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			Env:      appconf.EnvFlagToEnvironment("test"),
			DataPath: launchConfig.DataPath,
		},
		LaunchConfig: launchConfig,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Launches:     manager,
	}

	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)

	return api
}

func newTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(api.Handler(router))
	t.Cleanup(server.Close)
	return server
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp, body := serveApiAndRetrieveBody(t, api, endpoint)

	var response models.ResponseModel
	err := json.Unmarshal(body, &response)
	require.NoError(t, err)

	return resp, response
}

func serveApiAndRetrieveBody(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	server := newTestServer(t, api)

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

// decodeEntry re-decodes the "entry" of a response envelope into out.
func decodeEntry(t *testing.T, model models.ResponseModel, out interface{}) {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")

	raw, err := json.Marshal(data["entry"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func decodeFieldErrors(t *testing.T, body []byte) map[string][]string {
	var response struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(body, &response))
	return response.FieldErrors
}
