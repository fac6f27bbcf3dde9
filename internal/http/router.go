package apihttp

import (
	"net/http"

	"github.com/example/demolab/internal/handlers"
	"github.com/example/demolab/internal/rate"
	"github.com/go-chi/chi/v5"
)

// NewRouter wires routes and middlewares.
func NewRouter(dh *handlers.DemoHandler, sh *handlers.ScopeHandler, uh *handlers.UIHandler, lm *rate.LimiterMap) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger)
	r.Use(CORS)
	r.Use(RateLimit(lm))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{\"status\":\"ok\"}"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/demo", func(d chi.Router) {
			d.Post("/price", dh.Price)
			d.Post("/format", dh.Format)
			d.Post("/stats", dh.Stats)
			d.Get("/{name}/last", func(w http.ResponseWriter, r *http.Request) {
				dh.Last(w, r, chi.URLParam(r, "name"))
			})
		})
		api.Route("/scope", func(s chi.Router) {
			s.Post("/global", sh.Global)
			s.Post("/local", sh.Local)
		})
		api.Route("/ui", func(u chi.Router) {
			u.Get("/state", uh.State)
			u.Post("/animate", uh.Animate)
			u.Post("/animate/reset", uh.AnimateReset)
			u.Post("/modal/open", uh.ModalOpen)
			u.Post("/modal/close", uh.ModalClose)
			u.Post("/flip", uh.Flip)
			u.Post("/loading/start", uh.LoadingStart)
			u.Post("/loading/stop", uh.LoadingStop)
		})
	})

	return r
}
