package main

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/demolab/internal/cache"
	"github.com/example/demolab/internal/config"
	"github.com/example/demolab/internal/handlers"
	apihttp "github.com/example/demolab/internal/http"
	"github.com/example/demolab/internal/rate"
	"github.com/example/demolab/internal/scope"
	"github.com/example/demolab/internal/ui"
)

const indexPage = `<!doctype html>
<html>
<head><title>demo lab</title></head>
<body>
<h1>demo lab</h1>
<p>Calculator, scope and UI-state demos. POST form fields to the endpoints under /api.</p>
</body>
</html>
`

func main() {
	cfg := config.Load()

	// deps
	counter := scope.NewCounter()
	c := cache.New(cfg.ResultTTL)
	uiState := ui.NewState(ui.Options{
		HideDelay:       cfg.HideDelay,
		LoadingInterval: cfg.LoadingInterval,
	})
	defer uiState.Close()

	dh := handlers.NewDemoHandler(handlers.DemoDeps{
		Cache:     c,
		UI:        uiState,
		MaxValues: cfg.MaxValues,
	})
	sh := handlers.NewScopeHandler(counter, c, uiState)
	uh := handlers.NewUIHandler(uiState)

	lm := rate.NewLimiterMap(cfg.RateLimitRPM, cfg.RateLimitRPM, 5*time.Minute)
	defer lm.Stop()

	router := apihttp.NewRouter(dh, sh, uh, lm)

	// Serve the demo page alongside the API.
	indexTmpl := template.Must(template.New("index").Parse(indexPage))
	mux := http.NewServeMux()
	uiIndex := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTmpl.Execute(w, map[string]any{}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	mux.HandleFunc("/ui", uiIndex)
	mux.HandleFunc("/ui/", uiIndex)
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:         ":" + sanitizePort(cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("event=ready port=%s", sanitizePort(cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("shutting down...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
