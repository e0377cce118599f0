package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"pokepipeline/services/pipeline/db"

	"go.opentelemetry.io/otel/codes"
)

// Load destructively recreates the three tables and writes the
// dataset, all inside one transaction. A failure rolls everything
// back, leaving whatever contents the store had before the run.
// The connection itself is owned by the caller.
func Load(ctx context.Context, database *sql.DB, ds Dataset) error {
	ctx, span := tracer.Start(ctx, "Load")
	defer span.End()

	fail := func(msg string, err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, msg)
		return fmt.Errorf("%s: %w", msg, err)
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fail("begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, db.Reset)
	if err != nil {
		return fail("drop old tables", err)
	}
	_, err = tx.ExecContext(ctx, db.Schema)
	if err != nil {
		return fail("create tables", err)
	}

	qry := db.New(tx)
	err = qry.InsertTypes(ctx, ds.Types)
	if err != nil {
		return fail("insert types", err)
	}
	err = qry.InsertPokemon(ctx, ds.Pokemon)
	if err != nil {
		return fail("insert pokemon", err)
	}
	err = qry.InsertPokemonTypes(ctx, ds.Links)
	if err != nil {
		return fail("insert pokemon_type links", err)
	}

	err = tx.Commit()
	if err != nil {
		return fail("commit", err)
	}

	slog.InfoContext(
		ctx, "load complete",
		"pokemon", len(ds.Pokemon),
		"types", len(ds.Types),
		"links", len(ds.Links),
	)
	return nil
}
