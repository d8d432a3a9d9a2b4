package api

import (
	"mobile-depot-planner/internal/api/handlers"
	"mobile-depot-planner/internal/platform/obs"
	"mobile-depot-planner/internal/ports"
	"mobile-depot-planner/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Deps are the adapters the HTTP layer runs against.
type Deps struct {
	Profiles  ports.ProfileRepository
	Publisher ports.PlanPublisher
	Search    services.SearchOptions
	// PlanLimiter throttles POST /plans; nil disables throttling.
	PlanLimiter *rate.Limiter
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	obs.RegisterDefault()
	mux := http.NewServeMux()

	profileHandler := &handlers.ProfileHandler{Repo: deps.Profiles}
	planHandler := &handlers.PlanHandler{
		Profiles:  deps.Profiles,
		Publisher: deps.Publisher,
		Search:    deps.Search,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/plans", rateLimit(deps.PlanLimiter, http.HandlerFunc(planHandler.Plan)))
	mux.HandleFunc("/profiles", profileHandler.List)
	mux.HandleFunc("/profiles/", profileHandler.Item)
	mux.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
