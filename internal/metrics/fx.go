package metrics

import "go.uber.org/fx"

// Module registers the prometheus instruments at startup.
var Module = fx.Module("metrics",
	fx.Invoke(Register),
)
