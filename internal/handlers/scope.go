package handlers

import (
	"net/http"
	"time"

	"github.com/example/demolab/internal/cache"
	"github.com/example/demolab/internal/render"
	"github.com/example/demolab/internal/scope"
	"github.com/example/demolab/internal/types"
	"github.com/example/demolab/internal/ui"
	"github.com/example/demolab/pkg/jsonutil"
)

// ScopeHandler serves the two scope demonstrators against one injected
// counter. The handlers are deliberately named differently from the scope
// functions they call.
type ScopeHandler struct {
	Counter *scope.Counter
	Cache   *cache.Cache
	UI      *ui.State
}

func NewScopeHandler(c *scope.Counter, ca *cache.Cache, st *ui.State) *ScopeHandler {
	return &ScopeHandler{Counter: c, Cache: ca, UI: st}
}

func (h *ScopeHandler) respond(w http.ResponseWriter, demo, html string, result any) {
	h.Cache.Put("last:"+demo, cache.Value{HTML: html, Result: result, ComputedAt: time.Now().UTC()})
	gen := h.UI.ShowResult(demo, html, false)
	jsonutil.JSON(w, http.StatusOK, types.DemoResponse{OK: true, HTML: html, Result: result, Generation: gen})
}

// Global handles POST /api/scope/global. Every call advances the shared
// counter by one.
func (h *ScopeHandler) Global(w http.ResponseWriter, r *http.Request) {
	res := scope.RunGlobalDemo(h.Counter)
	h.respond(w, "scope-global", render.Global(res), res)
}

// Local handles POST /api/scope/local. It never mutates the counter.
func (h *ScopeHandler) Local(w http.ResponseWriter, r *http.Request) {
	res := scope.RunLocalDemo(h.Counter)
	h.respond(w, "scope-local", render.Local(res), res)
}
