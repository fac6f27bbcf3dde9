package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/example/demolab/internal/cache"
	"github.com/example/demolab/internal/calc"
	"github.com/example/demolab/internal/render"
	"github.com/example/demolab/internal/types"
	"github.com/example/demolab/internal/ui"
	"github.com/example/demolab/internal/validate"
	"github.com/example/demolab/pkg/jsonutil"
)

// DemoDeps bundles dependencies shared by the calculator demo handlers.
type DemoDeps struct {
	Cache     *cache.Cache
	UI        *ui.State
	MaxValues int
}

// DemoHandler serves the three calculator demos. Each handler reads form
// fields, validates, and on failure renders an inline error fragment with
// HTTP 200; the rendered output is the only failure channel.
type DemoHandler struct{ Deps DemoDeps }

func NewDemoHandler(deps DemoDeps) *DemoHandler { return &DemoHandler{Deps: deps} }

// fail renders an inline error into the demo's panel and responds 200.
func (h *DemoHandler) fail(w http.ResponseWriter, demo, msg string) {
	html := render.Error(msg)
	gen := h.Deps.UI.ShowResult(demo, html, true)
	jsonutil.JSON(w, http.StatusOK, types.DemoResponse{OK: false, HTML: html, Generation: gen})
}

// ok records the result as the demo's most recent computation, renders it
// into the panel (bumping the animation generation) and responds.
func (h *DemoHandler) ok(w http.ResponseWriter, demo, html string, result any, source string) {
	h.Deps.Cache.Put("last:"+demo, cache.Value{HTML: html, Result: result, ComputedAt: time.Now().UTC()})
	gen := h.Deps.UI.ShowResult(demo, html, false)
	jsonutil.JSON(w, http.StatusOK, types.DemoResponse{OK: true, HTML: html, Result: result, Source: source, Generation: gen})
}

// Price handles POST /api/demo/price with fields price, tax, quantity.
func (h *DemoHandler) Price(w http.ResponseWriter, r *http.Request) {
	priceRaw := r.FormValue("price")
	taxRaw := r.FormValue("tax")
	qtyRaw := r.FormValue("quantity")

	if !validate.Field(validate.Number, priceRaw) {
		h.fail(w, "price", "unit price must be a number")
		return
	}
	if !validate.Field(validate.Number, taxRaw) {
		h.fail(w, "price", "tax rate must be a number")
		return
	}
	if !validate.Field(validate.Number, qtyRaw) {
		h.fail(w, "price", "quantity must be a number")
		return
	}
	price, _ := strconv.ParseFloat(priceRaw, 64)
	tax, _ := strconv.ParseFloat(taxRaw, 64)
	qtyF, _ := strconv.ParseFloat(qtyRaw, 64)

	b := calc.CalculatePrice(price, tax, int(qtyF))
	h.ok(w, "price", render.Price(b), b, "")
}

// Format handles POST /api/demo/format with fields text, style. Unknown
// styles pass the text through unchanged.
func (h *DemoHandler) Format(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")
	if !validate.Field(validate.Text, text) {
		h.fail(w, "format", "enter some text to format")
		return
	}
	style := calc.ParseStyle(r.FormValue("style"))
	out := calc.FormatText(text, style)
	result := map[string]string{"input": text, "output": out, "style": style.String()}
	h.ok(w, "format", render.Format(text, out, style), result, "")
}

// Stats handles POST /api/demo/stats with field values: comma or whitespace
// separated numbers. Tokens that fail to parse are skipped; an input with no
// usable numbers yields the all-zero sentinel record, not an error.
// Identical inputs within the cache TTL are served from cache and
// coalesced via singleflight.
func (h *DemoHandler) Stats(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("values")
	nums := parseNumbers(raw)
	if len(nums) > h.Deps.MaxValues {
		h.fail(w, "stats", "too many values")
		return
	}

	key := "stats:" + canonicalKey(nums)
	val, source, err := h.Deps.Cache.GetOrCompute(r.Context(), key, func(ctx context.Context) (cache.Value, error) {
		st := calc.CalculateStats(nums)
		return cache.Value{HTML: render.Stats(st), Result: st, ComputedAt: time.Now().UTC()}, nil
	})
	if err != nil {
		// compute is pure and never errors; keep the branch for the contract
		h.fail(w, "stats", "stats computation failed")
		return
	}
	h.ok(w, "stats", val.HTML, val.Result, source)
}

// Last handles GET /api/demo/{name}/last. It reports the most recent
// computation for the named demo, or 404 once the TTL has passed.
func (h *DemoHandler) Last(w http.ResponseWriter, r *http.Request, demo string) {
	val, ok := h.Deps.Cache.Get("last:" + demo)
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "no recent result")
		return
	}
	jsonutil.JSON(w, http.StatusOK, types.LastResponse{
		Demo:       demo,
		HTML:       val.HTML,
		Result:     val.Result,
		ComputedAt: val.ComputedAt.Format(time.RFC3339),
	})
}

func parseNumbers(raw string) []float64 {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		if !validate.Field(validate.Number, f) {
			continue
		}
		n, _ := strconv.ParseFloat(f, 64)
		out = append(out, n)
	}
	return out
}

// canonicalKey builds a stable cache key from the parsed numbers so
// "1, 2" and "1 2" coalesce to the same computation.
func canonicalKey(nums []float64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatFloat(n, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
