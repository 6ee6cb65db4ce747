package migration

import (
	"github.com/consint/callbackd/internal/callback/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module creates the callbacks table on startup so the service is usable out
// of the box for local and self-hosted deployments.
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB) error {
		return conn.AutoMigrate(&domain.CallbackRecord{})
	}),
)
