// @title         Linguaforge API
// @version       0.1.0
// @description   Language detection, tokenization, transliteration and normalization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linguaforge/internal/platform/config"
	"linguaforge/internal/platform/logger"
	phttp "linguaforge/internal/platform/net/http"

	"linguaforge/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	apiCfg := config.New().Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT / CORE_API_ADDR / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	opts := api.OptionsFromConfig(apiCfg)
	opts.Logger = l
	opts.StartedAt = time.Now()
	api.Mount(srv.Router(), opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
