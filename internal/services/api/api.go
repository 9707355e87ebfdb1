// Package api provides the HTTP API for linguaforge
package api

import (
	"time"

	"linguaforge/internal/platform/config"
	"linguaforge/internal/platform/logger"
	phttp "linguaforge/internal/platform/net/http"
	"linguaforge/internal/platform/net/http/bind"
	"linguaforge/internal/platform/net/middleware"

	"linguaforge/internal/modkit"
	"linguaforge/internal/modkit/httpkit"
	"linguaforge/internal/modkit/module"
	"linguaforge/internal/modkit/swaggerkit"

	langmod "linguaforge/internal/services/api/languages/module"
	metamod "linguaforge/internal/services/api/meta/module"
	textmod "linguaforge/internal/services/api/text/module"
	"linguaforge/internal/services/text/domain"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// APIKeys holds "id:secret" or bare secrets, empty leaves the API open
	APIKeys      []string
	MaxBodyBytes int64
	CORSOrigins  []string
	Timeout      time.Duration
	StartedAt    time.Time
}

// OptionsFromConfig reads the API options from a CORE_API_ prefixed config
func OptionsFromConfig(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		APIKeys:        cfg.MayCSV("API_KEYS", nil),
		MaxBodyBytes:   cfg.MayInt64("MAX_BODY_BYTES", bind.DefaultMaxBytes),
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", nil),
		Timeout:        cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// liveness outside the versioned tree, then envelope fallbacks for every subrouter
	r.Use(middleware.Heartbeat("/health"))
	r.NotFound(phttp.NotFoundHandler)
	r.MethodNotAllowed(phttp.MethodNotAllowedHandler)

	log := logger.Get()
	if opt.Logger != nil {
		log = opt.Logger
	}
	deps := modkit.Deps{Log: *log, Cfg: opt.Config, StartedAt: opt.StartedAt}
	if deps.StartedAt.IsZero() {
		deps.StartedAt = time.Now()
	}

	var auth middleware.AuthPort
	if keys := middleware.NewAPIKeys(opt.APIKeys); keys != nil {
		auth = keys
		swaggerkit.Register(swaggerkit.APIKeySecurity)
		log.Info().Int("keys", keys.Len()).Msg("api key auth enabled")
	}

	text := textmod.New(deps,
		modkit.WithBodyLimit(opt.MaxBodyBytes),
		modkit.WithAuth(auth),
	)
	langs := langmod.New(deps,
		modkit.WithPorts(langmod.Ports{Catalog: module.MustPortsOf[domain.CatalogPort](text)}),
		modkit.WithAuth(auth),
	)

	mods := []module.Module{
		metamod.New(deps),
		text,
		langs,
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins:  opt.CORSOrigins,
		MaxBodyBytes: opt.MaxBodyBytes,
		Timeout:      opt.Timeout,
		Logger:       log,
	})

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register ports by name so meta can list what is mounted
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, opt.Config, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
}
