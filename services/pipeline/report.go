package pipeline

import (
	"context"
	"database/sql"
	"encoding/csv"
	"io"
	"strconv"

	"pokepipeline/services/pipeline/db"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/codes"
)

// TypeCounts returns the number of pokemon per type, most populous
// type first.
func TypeCounts(ctx context.Context, database *sql.DB) ([]db.CountPokemonByTypeRow, error) {
	ctx, span := tracer.Start(ctx, "TypeCounts")
	defer span.End()

	rows, err := db.New(database).CountPokemonByType(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to count pokemon by type")
		return nil, err
	}
	return rows, nil
}

// WriteTypeCountsCsv renders the counts as Type,Count csv.
func WriteTypeCountsCsv(w io.Writer, rows []db.CountPokemonByTypeRow) error {
	cw := csv.NewWriter(w)
	err := cw.Write([]string{"Type", "Count"})
	if err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{r.Name, strconv.FormatInt(r.Count, 10)})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ClosestType returns the known type name most similar to query along
// with its similarity, so callers can suggest a correction for a type
// filter that matched nothing.
func ClosestType(query string, rows []db.CountPokemonByTypeRow) (string, float64) {
	var mostSimilar string
	var mostSimilarity float64

	for _, r := range rows {
		similarity := matchr.JaroWinkler(query, r.Name, false)
		if similarity > mostSimilarity {
			mostSimilarity = similarity
			mostSimilar = r.Name
		}
	}

	return mostSimilar, mostSimilarity
}
