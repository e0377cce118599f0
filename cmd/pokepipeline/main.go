package main

import (
	"context"

	"pokepipeline/lib/configutil"
	configsqlite "pokepipeline/lib/configutil/sqlite"
	"pokepipeline/lib/pokeapi"
	"pokepipeline/lib/serviceutil"
	"pokepipeline/lib/telemetry"
	"pokepipeline/services/pipeline"
)

type Config struct {
	Limit    int                 `json:"limit"`
	Database configsqlite.Struct `json:"database"`
}

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.InitSlog(false)

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.Limit <= 0 {
		config.Limit = 20
	}

	t, err := telemetry.SetupFromEnv(ctx, "pokepipeline")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	database, err := config.Database.OpenDB()
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	defer database.Close()

	client := pokeapi.NewClient(pokeapi.DefaultBaseUrl)
	_, err = pipeline.Run(ctx, pipeline.RunOptions{
		Client: client,
		DB:     database,
		Limit:  config.Limit,
	})
	if err != nil {
		serviceutil.Fatal("pipeline run failed", err)
	}
}
