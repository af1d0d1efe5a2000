package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a trimmed copy of cfg together with its errors
// and warnings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.Host = strings.TrimSpace(out.App.Host)
	out.App.DataDir = strings.TrimSpace(out.App.DataDir)
	out.Catalog.Path = strings.TrimSpace(out.Catalog.Path)

	if out.App.Host == "" {
		res.addErr("app.host is required")
	} else if out.App.Host != "127.0.0.1" && out.App.Host != "localhost" && out.App.Host != "::1" {
		res.addWarn("app.host %q is not loopback; the board has no authentication.", out.App.Host)
	}
	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	// sessions
	if out.Sessions.TTLSeconds < 0 {
		res.addErr("sessions.ttl_seconds must be >= 0")
	} else if out.Sessions.TTLSeconds == 0 {
		res.addWarn("sessions.ttl_seconds is 0; idle sessions are never dropped.")
	}
	if out.Sessions.TTLSeconds > 0 && out.Sessions.SweepSeconds <= 0 {
		res.addErr("sessions.sweep_seconds must be > 0 when sessions.ttl_seconds is set")
	}
	if out.Sessions.Max < 0 {
		res.addErr("sessions.max must be >= 0")
	}

	// rate limit
	if out.RateLimit.RequestsPerSecond < 0 {
		res.addErr("rate_limit.requests_per_second must be >= 0")
	}
	if out.RateLimit.RequestsPerSecond > 0 && out.RateLimit.Burst <= 0 {
		res.addErr("rate_limit.burst must be > 0 when requests_per_second is set")
	}
	if out.RateLimit.RequestsPerSecond == 0 {
		res.addWarn("rate_limit.requests_per_second is 0; requests are not limited.")
	}

	return out, res
}
