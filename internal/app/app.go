package app

import (
	"github.com/insurewise/policy-portal/internal/config"
	"github.com/insurewise/policy-portal/internal/repositories"
	"github.com/insurewise/policy-portal/internal/services"
	"github.com/insurewise/policy-portal/internal/utils"
	"github.com/insurewise/policy-portal/internal/views"
)

// App struct holds references to config, services and the page renderer.
type App struct {
	Config        *config.Config
	PolicyService services.PolicyService
	Views         *views.Renderer
}

// NewApp wires the remote collection client into the policy service. There is
// no local database.
func NewApp(cfg *config.Config) *App {
	utils.Logger.Info("Initializing policy-portal App")

	repo := repositories.NewPolicyRepository(cfg.StoreURL, cfg.StoreTimeout)

	return &App{
		Config:        cfg,
		PolicyService: services.NewPolicyService(repo),
		Views:         views.NewRenderer(),
	}
}

// Close is a no-op here but included for consistency.
func (a *App) Close() {
	utils.Logger.Info("policy-portal app shutting down.")
}
