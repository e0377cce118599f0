package commands

import (
	configsqlite "pokepipeline/lib/configutil/sqlite"
	"pokepipeline/lib/pokeapi"
	"pokepipeline/lib/serviceutil"
	"pokepipeline/services/pipeline"

	"github.com/spf13/cobra"
)

var runLimit *int
var runDb *string

func init() {
	runLimit = runCmd.Flags().Int("limit", 20, "The number of pokemon to fetch from the first page.")
	runDb = runCmd.Flags().String("db", "pokemon_data.db", "The database to load results into.")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--limit <n>] [--db <path/to/output.db>]",
	Short: "Runs the full extract/transform/load pipeline against the PokeAPI.",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := configsqlite.Struct{File: *runDb}.OpenDB()
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer database.Close()

		client := pokeapi.NewClient(pokeapi.DefaultBaseUrl)
		_, err = pipeline.Run(cmd.Context(), pipeline.RunOptions{
			Client: client,
			DB:     database,
			Limit:  *runLimit,
		})
		if err != nil {
			serviceutil.Fatal("pipeline run failed", err)
		}
	},
}
