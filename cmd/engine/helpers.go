package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
)

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// shutdownToken returns JOBBOARD_SHUTDOWN_TOKEN or a fresh random token, and
// writes it to dataDir/shutdown.token for a local launcher to read.
func shutdownToken(dataDir string) (string, error) {
	token := strings.TrimSpace(os.Getenv("JOBBOARD_SHUTDOWN_TOKEN"))
	if token == "" {
		var err error
		if token, err = randomToken(32); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(filepath.Join(dataDir, "shutdown.token"), []byte(token), 0o600); err != nil {
		return "", err
	}
	return token, nil
}

// shutdownHandler cancels the engine's root context for a loopback caller
// holding the token. The server itself is drained by main.
func shutdownHandler(token string, stop context.CancelFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// Local-only guard (covers typical desktop usage)
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			// RemoteAddr can sometimes be just a host; fall back safely
			host = r.RemoteAddr
		}
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		// Token guard
		got := r.Header.Get("X-Shutdown-Token")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("shutting down\n"))
		stop()
	}
}

// seedJobs returns the postings used to seed an empty store: the YAML file at
// path when set, the bundled sample otherwise.
func seedJobs(path string) ([]catalog.Job, error) {
	if path == "" {
		return catalog.SampleJobs(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := catalog.LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	if cat.Len() == 0 {
		return nil, fmt.Errorf("catalog %s has no jobs", path)
	}
	return cat.Jobs(), nil
}
