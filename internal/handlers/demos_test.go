package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/example/demolab/internal/cache"
	"github.com/example/demolab/internal/types"
	"github.com/example/demolab/internal/ui"
)

func newDemoHandler() *DemoHandler {
	return NewDemoHandler(DemoDeps{
		Cache:     cache.New(time.Minute),
		UI:        ui.NewState(ui.Options{}),
		MaxValues: 100,
	})
}

func postForm(t *testing.T, h http.HandlerFunc, form url.Values) types.DemoResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var out types.DemoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestPrice_WritesPanelAndLast(t *testing.T) {
	h := newDemoHandler()
	out := postForm(t, h.Price, url.Values{"price": {"2.50"}, "tax": {"10"}, "quantity": {"4"}})
	if !out.OK || !strings.Contains(out.HTML, "Total: $11.00") {
		t.Fatalf("out=%+v", out)
	}
	if p := h.Deps.UI.Snapshot().Panels["price"]; !p.Visible || p.IsError {
		t.Fatalf("panel=%+v", p)
	}
	if _, ok := h.Deps.Cache.Get("last:price"); !ok {
		t.Fatalf("last result not recorded")
	}
}

func TestPrice_ErrorPanelIsMarked(t *testing.T) {
	h := newDemoHandler()
	out := postForm(t, h.Price, url.Values{"price": {"cheap"}, "tax": {"10"}, "quantity": {"4"}})
	if out.OK {
		t.Fatalf("expected validation failure")
	}
	if p := h.Deps.UI.Snapshot().Panels["price"]; !p.Visible || !p.IsError {
		t.Fatalf("panel=%+v", p)
	}
	// failed runs do not replace the most recent computation
	if _, ok := h.Deps.Cache.Get("last:price"); ok {
		t.Fatalf("error recorded as last result")
	}
}

func TestParseNumbers(t *testing.T) {
	got := parseNumbers(" 1,2\t3\n4 , nope, -5.5 ")
	want := []float64{1, 2, 3, 4, -5.5}
	if len(got) != len(want) {
		t.Fatalf("got=%v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got=%v", got)
		}
	}
	if out := parseNumbers(""); len(out) != 0 {
		t.Fatalf("empty input: %v", out)
	}
}

func TestCanonicalKey(t *testing.T) {
	a := canonicalKey([]float64{1, 2.5})
	b := canonicalKey([]float64{1, 2.50})
	if a != b || a != "1,2.5" {
		t.Fatalf("a=%q b=%q", a, b)
	}
}
