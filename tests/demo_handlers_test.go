package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/example/demolab/internal/cache"
	"github.com/example/demolab/internal/handlers"
	apihttp "github.com/example/demolab/internal/http"
	"github.com/example/demolab/internal/rate"
	"github.com/example/demolab/internal/scope"
	"github.com/example/demolab/internal/types"
	"github.com/example/demolab/internal/ui"
)

type env struct {
	ts      *httptest.Server
	counter *scope.Counter
	ui      *ui.State
}

func newEnv(t *testing.T) *env {
	t.Helper()
	c := cache.New(10 * time.Second)
	st := ui.NewState(ui.Options{LoadingInterval: 10 * time.Millisecond})
	counter := scope.NewCounter()
	dh := handlers.NewDemoHandler(handlers.DemoDeps{Cache: c, UI: st, MaxValues: 5})
	sh := handlers.NewScopeHandler(counter, c, st)
	uh := handlers.NewUIHandler(st)
	lm := rate.NewLimiterMap(10000, 10000, time.Minute)
	ts := httptest.NewServer(apihttp.NewRouter(dh, sh, uh, lm))
	t.Cleanup(func() {
		ts.Close()
		lm.Stop()
		st.Close()
	})
	return &env{ts: ts, counter: counter, ui: st}
}

func (e *env) post(t *testing.T, path string, form url.Values) types.DemoResponse {
	t.Helper()
	resp, err := http.PostForm(e.ts.URL+path, form)
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("post %s: status=%d", path, resp.StatusCode)
	}
	var out types.DemoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestPriceDemo_HappyPath(t *testing.T) {
	e := newEnv(t)
	out := e.post(t, "/api/demo/price", url.Values{
		"price": {"19.99"}, "tax": {"20"}, "quantity": {"3"},
	})
	if !out.OK {
		t.Fatalf("ok=false html=%q", out.HTML)
	}
	if !strings.Contains(out.HTML, "Total: $71.96") {
		t.Fatalf("html=%q", out.HTML)
	}
	res := out.Result.(map[string]any)
	if res["subtotal"].(float64) != 59.97 || res["total"].(float64) != 71.96 {
		t.Fatalf("result=%v", res)
	}
}

func TestPriceDemo_ValidationRendersInlineError(t *testing.T) {
	e := newEnv(t)
	for _, form := range []url.Values{
		{"price": {""}, "tax": {"20"}, "quantity": {"1"}},
		{"price": {"abc"}, "tax": {"20"}, "quantity": {"1"}},
		{"price": {"10"}, "tax": {"x"}, "quantity": {"1"}},
		{"price": {"10"}, "tax": {"20"}, "quantity": {""}},
	} {
		out := e.post(t, "/api/demo/price", form)
		if out.OK {
			t.Fatalf("expected failure for %v", form)
		}
		if !strings.Contains(out.HTML, "error") {
			t.Fatalf("no inline error fragment: %q", out.HTML)
		}
	}
}

func TestFormatDemo_StylesAndPassthrough(t *testing.T) {
	e := newEnv(t)
	out := e.post(t, "/api/demo/format", url.Values{"text": {"Hello"}, "style": {"reverse"}})
	if !out.OK || !strings.Contains(out.HTML, "olleH") {
		t.Fatalf("reverse: %+v", out)
	}

	out = e.post(t, "/api/demo/format", url.Values{"text": {"hello world"}, "style": {"capitalize"}})
	if !strings.Contains(out.HTML, "Hello world") {
		t.Fatalf("capitalize: %q", out.HTML)
	}

	// unknown style is the pass-through branch, not an error
	out = e.post(t, "/api/demo/format", url.Values{"text": {"AsIs"}, "style": {"sparkle"}})
	if !out.OK {
		t.Fatalf("unknown style should succeed")
	}
	res := out.Result.(map[string]any)
	if res["output"] != "AsIs" || res["style"] != "none" {
		t.Fatalf("result=%v", res)
	}

	out = e.post(t, "/api/demo/format", url.Values{"text": {"   "}, "style": {"uppercase"}})
	if out.OK {
		t.Fatalf("blank text should fail validation")
	}
}

func TestStatsDemo_SentinelAndCaching(t *testing.T) {
	e := newEnv(t)

	// empty input degrades to the all-zero record
	out := e.post(t, "/api/demo/stats", url.Values{"values": {""}})
	if !out.OK {
		t.Fatalf("empty input should not error")
	}
	res := out.Result.(map[string]any)
	if res["count"].(float64) != 0 || res["sum"].(float64) != 0 {
		t.Fatalf("sentinel: %v", res)
	}

	out = e.post(t, "/api/demo/stats", url.Values{"values": {"1, 2, 3, 4"}})
	if out.Source != "fresh" {
		t.Fatalf("source=%q", out.Source)
	}
	res = out.Result.(map[string]any)
	if res["sum"].(float64) != 10 || res["average"].(float64) != 2.5 || res["min"].(float64) != 1 || res["max"].(float64) != 4 {
		t.Fatalf("stats=%v", res)
	}

	// identical input (different separators) is served from cache
	out = e.post(t, "/api/demo/stats", url.Values{"values": {"1 2 3 4"}})
	if out.Source != "cache" {
		t.Fatalf("source=%q", out.Source)
	}

	// unparseable tokens are skipped
	out = e.post(t, "/api/demo/stats", url.Values{"values": {"1, x, 2"}})
	res = out.Result.(map[string]any)
	if res["count"].(float64) != 2 || res["sum"].(float64) != 3 {
		t.Fatalf("skip tokens: %v", res)
	}
}

func TestStatsDemo_TooManyValues(t *testing.T) {
	e := newEnv(t) // MaxValues=5
	out := e.post(t, "/api/demo/stats", url.Values{"values": {"1,2,3,4,5,6"}})
	if out.OK || !strings.Contains(out.HTML, "too many values") {
		t.Fatalf("cap not enforced: %+v", out)
	}
}

func TestLastEndpoint(t *testing.T) {
	e := newEnv(t)

	resp, err := http.Get(e.ts.URL + "/api/demo/price/last")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("before any run: status=%d", resp.StatusCode)
	}
	resp.Body.Close()

	e.post(t, "/api/demo/price", url.Values{"price": {"10"}, "tax": {"0"}, "quantity": {"2"}})

	resp, err = http.Get(e.ts.URL + "/api/demo/price/last")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var last types.LastResponse
	if err := json.NewDecoder(resp.Body).Decode(&last); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if last.Demo != "price" || !strings.Contains(last.HTML, "Total: $20.00") || last.ComputedAt == "" {
		t.Fatalf("last=%+v", last)
	}
}

func TestDemoRuns_BumpPanelGeneration(t *testing.T) {
	e := newEnv(t)
	form := url.Values{"price": {"1"}, "tax": {"0"}, "quantity": {"1"}}
	g1 := e.post(t, "/api/demo/price", form).Generation
	g2 := e.post(t, "/api/demo/price", form).Generation
	if g2 != g1+1 {
		t.Fatalf("identical rerun must re-animate: g1=%d g2=%d", g1, g2)
	}
}
