package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/calculator", func(r chi.Router) {
		r.Get("/state", h.State)
		r.Get("/keypad", h.Keypad)

		r.Post("/digit", h.Digit)
		r.Post("/dot", h.Dot)
		r.Post("/sign", h.Sign)
		r.Post("/percent", h.Percent)
		r.Post("/operator", h.Operator)
		r.Post("/evaluate", h.Evaluate)
		r.Post("/clear", h.Clear)
		r.Post("/clear-all", h.ClearAll)
		r.Post("/clear-entry", h.ClearEntry)
		r.Post("/keys", h.Keys)

		r.Post("/chain", Chain)
	})
}
