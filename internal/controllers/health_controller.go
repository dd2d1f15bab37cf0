package controllers

import (
	"net/http"

	"github.com/insurewise/policy-portal/internal/app"
	"github.com/insurewise/policy-portal/internal/dtos"
	"github.com/insurewise/policy-portal/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// The remote collection is the only external dependency.
	if err := c.app.PolicyService.Ping(r.Context()); err != nil {
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeStoreUnavailable,
			"Policy store unreachable",
			nil,
			err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
