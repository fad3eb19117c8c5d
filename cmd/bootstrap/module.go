package bootstrap

import (
	"webnebula-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
