package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/insurewise/policy-portal/internal/app"
	"github.com/insurewise/policy-portal/internal/controllers"
	"github.com/insurewise/policy-portal/internal/metrics"
	"github.com/insurewise/policy-portal/internal/middleware"
)

// NewRouter mounts every page on a fresh mux. Any path that matches nothing is
// sent to the list page.
func NewRouter(a *app.App) *mux.Router {
	healthController := controllers.NewHealthController(a)
	policyController := controllers.NewPolicyController(a.PolicyService, a.Views)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger, metrics.InstrumentHandler)

	// Operational
	router.HandleFunc(Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.Handle(Metrics, metrics.Handler()).Methods(http.MethodGet)

	// Pages
	router.HandleFunc(Root, policyController.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(PolicyList, policyController.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(PolicyAdd, policyController.AddFormHandler).Methods(http.MethodGet)
	router.HandleFunc(PolicyAdd, policyController.AddSubmitHandler).Methods(http.MethodPost)
	router.HandleFunc(PolicyUpdate, policyController.UpdateFormHandler).Methods(http.MethodGet)
	router.HandleFunc(PolicyUpdate, policyController.UpdateSubmitHandler).Methods(http.MethodPost)
	router.HandleFunc(PolicyDelete, policyController.DeleteHandler).Methods(http.MethodPost)

	// mux skips router.Use middleware for unmatched requests.
	router.NotFoundHandler = middleware.RequestLogger(metrics.InstrumentHandler(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, PolicyList, http.StatusFound)
		}),
	))

	return router
}
