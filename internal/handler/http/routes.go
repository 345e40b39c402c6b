package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Init assembles the router: trace-id first so every later log line carries
// it, then the audit note, panic recovery and CORS, then the route groups.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withAudit)
	router.Use(h.withRecover)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)
		r.Post("/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)

		r.Get("/questoes", h.listQuestoes)
		r.Get("/questoes/{id}", h.getQuestao)
		r.Post("/questoes/adicionar", h.addQuestao)

		r.Put("/resultados", h.saveResultado)
		r.Get("/resultados", h.listResultados)
		r.Get("/resultados/{id}", h.getResultado)

		r.Get("/logs", h.listLogs)
	})

	return router
}
