package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandlerUsesRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(InstrumentHandler)
	r.HandleFunc("/update/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/update/{id}", "418"))

	for _, p := range []string{"/update/1", "/update/2"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusTeapot, rr.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/update/{id}", "418"))
	assert.Equal(t, 2.0, after-before)
}

func TestObserveStoreRequest(t *testing.T) {
	before := testutil.ToFloat64(storeRequests.WithLabelValues("list", "error"))
	ObserveStoreRequest("list", 0, 3*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(storeRequests.WithLabelValues("list", "error"))-before)

	ObserveStoreRequest("get", http.StatusNotFound, time.Millisecond)
	assert.GreaterOrEqual(t, testutil.ToFloat64(storeRequests.WithLabelValues("get", "404")), 1.0)
}

func TestHandlerExposesPortalMetrics(t *testing.T) {
	PolicyCreated()

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "policy_portal_policies_created_total"))
	assert.True(t, strings.Contains(string(body), "go_goroutines"), "runtime collector registered")
}
