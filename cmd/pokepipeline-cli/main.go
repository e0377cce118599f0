package main

import (
	"context"

	"pokepipeline/cmd/pokepipeline-cli/commands"
	"pokepipeline/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "pokepipeline-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
