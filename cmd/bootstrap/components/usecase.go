package components

import (
	"webnebula-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewContactCommands,
		commands.NewCheckoutCommands,
	),
)
