package mirror

import (
	"github.com/consint/callbackd/internal/config"
	"go.uber.org/fx"
)

func FromConfig(cfg config.Config) *Log {
	return New(cfg.MirrorPath)
}

// Module provides the backup log writer.
var Module = fx.Module("mirror",
	fx.Provide(FromConfig),
)
