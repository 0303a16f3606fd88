package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Sondagem/internal/auth"
	"Sondagem/internal/config"
	"Sondagem/internal/importer"
	"Sondagem/internal/log"
	"Sondagem/internal/report"
	"Sondagem/internal/repo"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, db *sql.DB) {
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey)}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	reportH := &report.Handler{Gen: report.NewGenerator(cfg.OutputDir, cfg.LogoPath)}
	if db != nil {
		reportH.Repo = repo.NewPostgresReportDB(db)
	}
	importH := &importer.Handler{}

	mux.Use(log.Middleware)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	api.Use(authEnv.AuthMiddleware)

	api.HandleFunc("/generate-pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/import", importH.Import).Methods("POST")
	api.HandleFunc("/reports", reportH.List).Methods("GET")

	downloads := mux.PathPrefix("/download-pdf").Subrouter()
	downloads.Use(authEnv.AuthMiddleware)
	downloads.HandleFunc("/{filename}", reportH.Download).Methods("GET")

	mux.Handle("/metrics", promhttp.Handler())

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func openRegistry(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		log.Infow("no DATABASE_URL, report registry disabled")
		return nil
	}
	db, err := repo.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("report registry: %v", err)
	}
	if err := repo.NewPostgresReportDB(db).Migrate(ctx); err != nil {
		log.Fatalf("report registry migrate: %v", err)
	}
	return db
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := log.Init(cfg.Debug); err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("output dir: %v", err)
	}

	db := openRegistry(ctx, cfg)
	if db != nil {
		defer db.Close()
	}

	mux := mux.NewRouter()
	HandleList(mux, cfg, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infow("starting server", "addr", cfg.Addr, "tls", cfg.TLS(), "auth", cfg.TokenKey != "")
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Errorw("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Infow("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
	log.Infow("server stopped")

	wg.Wait()
}
