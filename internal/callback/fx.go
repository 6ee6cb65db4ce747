package callback

import (
	"github.com/consint/callbackd/internal/callback/repository"
	"github.com/consint/callbackd/internal/callback/service"
	"go.uber.org/fx"
)

var Module = fx.Module("callback.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
