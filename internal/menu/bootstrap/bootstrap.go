// Copyright 2025 Savor Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-savor/savor/internal/menu/config"
	"github.com/go-savor/savor/internal/menu/router"
	"github.com/go-savor/savor/pkg/log"
	"github.com/go-savor/savor/pkg/retry"
	"github.com/go-savor/savor/pkg/rtdb"
	"github.com/go-savor/savor/pkg/safe"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	HttpApp *fiber.App
	DB      *rtdb.Client
	Logger  *zap.Logger
	AppConf config.AppConfig
}

type InitAppFunc func(configFile string) (*App, func(), error)

func NewApp(
	rt *router.Router,
	db *rtdb.Client,
	logger *zap.Logger,
	appConf config.AppConfig,
) (*App, func(), error) {
	httpApp := rt.Router()

	cleanup := func() {
		_ = logger.Sync()
	}

	app := &App{
		HttpApp: httpApp,
		DB:      db,
		Logger:  logger,
		AppConf: appConf,
	}
	return app, cleanup, nil
}

// Bootstrap builds the App via the wire-generated initializer.
func Bootstrap(configFile string, initApp InitAppFunc) (*App, func(), error) {
	app, cleanup, err := initApp(configFile)
	if err != nil {
		return nil, nil, err
	}
	return app, cleanup, nil
}

// Run starts the app and waits for an exit signal, then shuts down gracefully.
func Run(app *App, cleanup func()) {
	appConf := app.AppConf

	// probe the document store before serving; the data access layer itself
	// never retries, the backoff lives only here
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := retry.Do(probeCtx, app.DB.Ping,
		retry.WithMaxAttempts(5),
		retry.WithBackoff(retry.Exponential(500*time.Millisecond, 5*time.Second)),
	)
	probeCancel()
	if err != nil {
		log.Warnw("menu store unreachable at startup, serving anyway",
			"baseUrl", appConf.Database.BaseURL,
			"error", err,
		)
	} else {
		log.Infow("menu store reachable",
			"baseUrl", appConf.Database.BaseURL,
		)
	}

	// set signal listener (graceful shutdown)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// start HTTP server (async)
	safe.Go(func() {
		addr := fmt.Sprintf("%s:%d", appConf.Http.Host, appConf.Http.Port)
		log.Infow("HTTP listener started",
			"address", addr,
		)

		var err error
		if appConf.Http.TLS.CertFile != "" && appConf.Http.TLS.KeyFile != "" {
			err = app.HttpApp.ListenTLS(addr, appConf.Http.TLS.CertFile, appConf.Http.TLS.KeyFile)
		} else {
			err = app.HttpApp.Listen(addr)
		}
		if err != nil {
			log.Errorw("HTTP listener failed",
				"address", addr,
				"error", err,
			)
		}
	})

	// wait for exit signal
	sig := <-quit
	log.Infow("received signal, shutting down gracefully", "signal", sig)

	shutdownTimeout := time.Duration(appConf.Http.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	} else {
		log.Info("HTTP server shut down gracefully")
	}

	cleanup()

	log.Info("server shutdown complete")
}
