// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	nodeHandler *handlers.NodeHandler,
	relationshipHandler *handlers.RelationshipHandler,
	searchHandler *handlers.SearchHandler,
	modelHandler *handlers.ModelHandler,
	llmHandler *handlers.LLMHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Node upsert/delete pairs, one per registered model.
		r.Put("/persons", nodeHandler.UpsertPerson)
		r.Delete("/persons/{uid}", nodeHandler.DeletePerson)
		r.Put("/organizations", nodeHandler.UpsertOrganization)
		r.Delete("/organizations/{uid}", nodeHandler.DeleteOrganization)
		r.Put("/locations", nodeHandler.UpsertLocation)
		r.Delete("/locations/{uid}", nodeHandler.DeleteLocation)
		r.Put("/projects", nodeHandler.UpsertProject)
		r.Delete("/projects/{uid}", nodeHandler.DeleteProject)
		r.Put("/tags", nodeHandler.UpsertTag)
		r.Delete("/tags/{uid}", nodeHandler.DeleteTag)

		// Typed relationships between existing nodes.
		r.Put("/relationships", relationshipHandler.Connect)
		r.Delete("/relationships", relationshipHandler.Disconnect)

		// Graph search, traversal, and discovery.
		r.Route("/graph", func(r chi.Router) {
			r.Get("/models", modelHandler.ListModels)
			r.Get("/models/{label}", modelHandler.GetModel)
			r.Get("/overview", searchHandler.Overview)
			r.Get("/search", searchHandler.Search)
			r.Get("/search/text", searchHandler.SearchText)
			r.Get("/paths/shortest", searchHandler.ShortestPath)
			r.Get("/nodes/{uid}/neighbors", searchHandler.Neighbors)
			r.Get("/nodes/{uid}/statistics", searchHandler.Statistics)
			r.Get("/aggregate", searchHandler.Aggregate)
			r.Post("/query", searchHandler.Query)
		})

		// LLM-assisted creation and advisory endpoints.
		r.Route("/llm", func(r chi.Router) {
			r.Post("/persons", llmHandler.CreatePerson)
			r.Post("/organizations", llmHandler.CreateOrganization)
			r.Post("/nodes/{uid}/suggestions", llmHandler.SuggestRelationships)
			r.Post("/nodes/{uid}/enrichment", llmHandler.EnrichNode)
		})
	})

	return r
}
