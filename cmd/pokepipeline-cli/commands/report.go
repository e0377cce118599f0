package commands

import (
	"fmt"
	"os"

	configsqlite "pokepipeline/lib/configutil/sqlite"
	"pokepipeline/lib/serviceutil"
	"pokepipeline/services/pipeline"
	"pokepipeline/services/pipeline/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var reportDb *string
var reportFormat *string

func init() {
	reportDb = reportCmd.Flags().String("db", "pokemon_data.db", "The database to report on.")
	reportFormat = reportCmd.Flags().String("format", "csv", "Output format, one of: csv, table.")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [type] [--db <path/to/output.db>] [--format csv|table]",
	Short: "Prints the count of pokemon per type, most populous first.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database, err := configsqlite.Struct{File: *reportDb}.OpenDB()
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer database.Close()

		rows, err := pipeline.TypeCounts(cmd.Context(), database)
		if err != nil {
			serviceutil.Fatal("failed to count pokemon by type", err)
		}

		if len(args) == 1 {
			var filtered []db.CountPokemonByTypeRow
			for _, r := range rows {
				if r.Name == args[0] {
					filtered = append(filtered, r)
				}
			}
			if len(filtered) == 0 {
				suggestion, similarity := pipeline.ClosestType(args[0], rows)
				if suggestion != "" && similarity > 0.8 {
					fmt.Fprintf(os.Stderr, "unknown type %q, did you mean %q?\n", args[0], suggestion)
				} else {
					fmt.Fprintf(os.Stderr, "unknown type %q\n", args[0])
				}
				os.Exit(1)
			}
			rows = filtered
		}

		switch *reportFormat {
		case "csv":
			err := pipeline.WriteTypeCountsCsv(os.Stdout, rows)
			if err != nil {
				serviceutil.Fatal("failed to write csv", err)
			}
		case "table":
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Type", "Count"})
			for _, r := range rows {
				t.AppendRow(table.Row{r.Name, r.Count})
			}
			t.Render()
		default:
			serviceutil.Fatal("unknown format", fmt.Errorf("%q is not one of: csv, table", *reportFormat))
		}
	},
}
