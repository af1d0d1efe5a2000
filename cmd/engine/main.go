package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TylorMayfield/nh-jobsearch/internal/board"
	"github.com/TylorMayfield/nh-jobsearch/internal/config"
	"github.com/TylorMayfield/nh-jobsearch/internal/events"
	"github.com/TylorMayfield/nh-jobsearch/internal/httpapi"
	"github.com/TylorMayfield/nh-jobsearch/internal/scheduler"
	"github.com/TylorMayfield/nh-jobsearch/internal/store"
)

// limiterIdle is how long a client's rate limiter is kept after its last
// request.
const limiterIdle = 10 * time.Minute

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("[config] warning: .env: %v", err)
	}

	// Engine data dir: use env if provided, else local folder.
	dataDir := config.DataDirFromEnv()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	lock, err := store.LockDataDir(dataDir)
	if err != nil {
		log.Fatalf("[engine] %v", err)
	}
	defer lock.Unlock()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	config.ApplyEnv(&cfg)
	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, w := range vr.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !vr.OK() {
		log.Fatalf("%v", config.Validate(cfg))
	}

	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPath := filepath.Join(dataDir, "jobboard.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seed, err := seedJobs(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("[engine] %v", err)
	}
	cat, added, err := store.LoadCatalog(ctx, db.Pool, seed)
	if err != nil {
		log.Fatalf("[engine] %v", err)
	}
	log.Printf("[engine] catalog loaded jobs=%d seeded=%d", cat.Len(), added)

	hub := events.NewHub()
	sessions := board.NewSessions(cat, board.SessionsConfig{
		TTL:      time.Duration(cfg.Sessions.TTLSeconds) * time.Second,
		Max:      cfg.Sessions.Max,
		OnChange: httpapi.ResultsPublisher(hub),
	})

	mux := httpapi.NewMux(httpapi.Deps{
		Catalog:     cat,
		Sessions:    sessions,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
	})

	token, err := shutdownToken(dataDir)
	if err != nil {
		log.Fatalf("[engine] shutdown token: %v", err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(token, stop))

	var limiter *httpapi.ClientLimiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = httpapi.NewClientLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	addr := net.JoinHostPort(cfg.App.Host, fmt.Sprint(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.RequestID,
			httpapi.Recover,
			httpapi.AccessLog,
			httpapi.RateLimit(limiter),
			httpapi.Cors,
		),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Printf("[engine] shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	sweepEvery := time.Duration(cfg.Sessions.SweepSeconds) * time.Second
	if sweepEvery <= 0 {
		sweepEvery = time.Minute
	}
	g.Go(func() error {
		return scheduler.Every(gctx, sweepEvery, "sweep", func(ctx context.Context) error {
			for _, id := range sessions.Sweep() {
				hub.Publish(id, events.NewSessionClosed(id, ""))
				hub.Close(id)
				log.Printf("[sweep] dropped idle session=%s", id)
			}
			if limiter != nil {
				if n := limiter.Sweep(limiterIdle); n > 0 {
					log.Printf("[sweep] dropped idle rate limiters=%d", n)
				}
			}
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		log.Printf("[engine] %v", err)
	}
}
