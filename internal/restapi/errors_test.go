package restapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/internal/app"
	"launchdash/internal/logging"
)

func TestServerErrorResponse(t *testing.T) {
	var logs bytes.Buffer
	api := &RestAPI{Application: &app.Application{
		Logger: logging.NewStructuredLogger(&logs, slog.LevelInfo),
	}}

	r := httptest.NewRequest("GET", "/api/charts/success-pie.svg", nil)
	rr := httptest.NewRecorder()

	api.serverErrorResponse(rr, r, errors.New("render failed"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response struct {
		Code        int    `json:"code"`
		CurrentTime int64  `json:"currentTime"`
		Text        string `json:"text"`
		Version     int    `json:"version"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))

	assert.Equal(t, http.StatusInternalServerError, response.Code)
	assert.Equal(t, "internal server error", response.Text)
	assert.Equal(t, 2, response.Version)
	assert.NotZero(t, response.CurrentTime)

	assert.Contains(t, logs.String(), `"error":"render failed"`)
	assert.Contains(t, logs.String(), `"path":"/api/charts/success-pie.svg"`)
}

func TestValidationErrorResponse(t *testing.T) {
	api := &RestAPI{Application: &app.Application{
		Logger: slog.Default(),
	}}

	r := httptest.NewRequest("GET", "/api/charts/payload-scatter.json?min=abc", nil)
	rr := httptest.NewRecorder()

	api.validationErrorResponse(rr, r, map[string][]string{
		"min": {`Invalid field value for field "min".`},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	fieldErrors := decodeFieldErrors(t, rr.Body.Bytes())
	assert.Equal(t, []string{`Invalid field value for field "min".`}, fieldErrors["min"])
}
