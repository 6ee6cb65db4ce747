package main

import (
	"github.com/consint/callbackd/internal/callback"
	"github.com/consint/callbackd/internal/config"
	"github.com/consint/callbackd/internal/logger"
	"github.com/consint/callbackd/internal/metrics"
	"github.com/consint/callbackd/internal/migration"
	"github.com/consint/callbackd/internal/mirror"
	"github.com/consint/callbackd/internal/server"
	"github.com/consint/callbackd/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		metrics.Module,
		db.Module,
		migration.Module,

		// Functional domains
		mirror.Module,
		callback.Module,
		server.Module,
	)
	app.Run()
}
