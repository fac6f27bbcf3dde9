package handlers

import (
	"log"
	"net/http"

	"github.com/example/demolab/internal/ui"
	"github.com/example/demolab/pkg/jsonutil"
)

// UIHandler exposes the visual affordances as state-toggling endpoints.
// Each one mutates the explicit UI state and returns the fresh snapshot,
// so the page can render purely from the response.
type UIHandler struct{ UI *ui.State }

func NewUIHandler(st *ui.State) *UIHandler { return &UIHandler{UI: st} }

func (h *UIHandler) snapshot(w http.ResponseWriter) {
	jsonutil.JSON(w, http.StatusOK, h.UI.Snapshot())
}

// State handles GET /api/ui/state.
func (h *UIHandler) State(w http.ResponseWriter, r *http.Request) { h.snapshot(w) }

// Animate handles POST /api/ui/animate with field animation, one of
// bounce, spin, fade.
func (h *UIHandler) Animate(w http.ResponseWriter, r *http.Request) {
	anim, ok := ui.ParseAnimation(r.FormValue("animation"))
	if !ok {
		jsonutil.Error(w, http.StatusBadRequest, "unknown animation")
		return
	}
	h.UI.TriggerAnimation(anim)
	h.snapshot(w)
}

// AnimateReset handles POST /api/ui/animate/reset.
func (h *UIHandler) AnimateReset(w http.ResponseWriter, r *http.Request) {
	h.UI.ResetAnimation()
	h.snapshot(w)
}

// ModalOpen handles POST /api/ui/modal/open.
func (h *UIHandler) ModalOpen(w http.ResponseWriter, r *http.Request) {
	h.UI.OpenModal()
	h.snapshot(w)
}

// ModalClose handles POST /api/ui/modal/close. The optional reason field
// records how the close was requested: button, escape or overlay. Closing
// a modal that is not open does nothing.
func (h *UIHandler) ModalClose(w http.ResponseWriter, r *http.Request) {
	reason := r.FormValue("reason")
	switch reason {
	case "escape", "overlay":
	default:
		reason = "button"
	}
	if h.UI.CloseModal() {
		log.Printf("event=modal_close reason=%s", reason)
	}
	h.snapshot(w)
}

// Flip handles POST /api/ui/flip.
func (h *UIHandler) Flip(w http.ResponseWriter, r *http.Request) {
	h.UI.ToggleFlip()
	h.snapshot(w)
}

// LoadingStart handles POST /api/ui/loading/start.
func (h *UIHandler) LoadingStart(w http.ResponseWriter, r *http.Request) {
	h.UI.StartLoading()
	h.snapshot(w)
}

// LoadingStop handles POST /api/ui/loading/stop. This cancels the dot
// cycler; skipping it leaks the ticker.
func (h *UIHandler) LoadingStop(w http.ResponseWriter, r *http.Request) {
	h.UI.StopLoading()
	h.snapshot(w)
}
