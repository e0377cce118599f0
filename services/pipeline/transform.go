package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"pokepipeline/lib/pokeapi"
	"pokepipeline/services/pipeline/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Dataset holds the three record sets produced by one transform, in
// insert order.
type Dataset struct {
	Pokemon []db.Pokemon
	Types   []db.Type
	Links   []db.PokemonType
}

type ValidationError struct {
	PokemonId int64
	Name      string
	Reason    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid record (id=%d, name=%q): %s", e.PokemonId, e.Name, e.Reason)
}

// Transform normalizes raw detail records into the pokemon, type and
// pokemon_type record sets. The type name to id mapping is local to a
// single call; ids are handed out in first-seen order starting at 1,
// so they depend only on the ordering of this batch.
//
// A duplicate pokemon id would violate the primary key at load time;
// the first occurrence wins and later ones are skipped with a warning.
// Any malformed record fails the whole transform.
func Transform(ctx context.Context, raw []pokeapi.Pokemon) (Dataset, error) {
	ctx, span := tracer.Start(ctx, "Transform")
	defer span.End()

	typeIds := make(map[string]int64)
	seen := make(map[int64]bool)
	var ds Dataset

	for _, r := range raw {
		if r.Id == 0 {
			err := ValidationError{PokemonId: r.Id, Name: r.Name, Reason: "missing id"}
			span.RecordError(err)
			span.SetStatus(codes.Error, "validation failed")
			return Dataset{}, err
		}
		if r.Name == "" {
			err := ValidationError{PokemonId: r.Id, Reason: "missing name"}
			span.RecordError(err)
			span.SetStatus(codes.Error, "validation failed")
			return Dataset{}, err
		}
		if seen[r.Id] {
			slog.WarnContext(ctx, "skipping duplicate pokemon", "id", r.Id, "name", r.Name)
			continue
		}
		seen[r.Id] = true

		rec := db.Pokemon{Id: r.Id, Name: r.Name}
		if r.Height != nil {
			rec.Height = sql.NullFloat64{Float64: *r.Height, Valid: true}
		}
		if r.Weight != nil {
			rec.Weight = sql.NullFloat64{Float64: *r.Weight, Valid: true}
		}
		if r.BaseExperience != nil {
			rec.BaseExperience = sql.NullInt64{Int64: *r.BaseExperience, Valid: true}
		}
		ds.Pokemon = append(ds.Pokemon, rec)

		for _, ts := range r.Types {
			if ts.Type.Name == "" {
				err := ValidationError{PokemonId: r.Id, Name: r.Name, Reason: "membership missing type name"}
				span.RecordError(err)
				span.SetStatus(codes.Error, "validation failed")
				return Dataset{}, err
			}
			if ts.Slot < 1 {
				err := ValidationError{PokemonId: r.Id, Name: r.Name, Reason: "membership missing slot"}
				span.RecordError(err)
				span.SetStatus(codes.Error, "validation failed")
				return Dataset{}, err
			}

			id, ok := typeIds[ts.Type.Name]
			if !ok {
				id = int64(len(typeIds) + 1)
				typeIds[ts.Type.Name] = id
				ds.Types = append(ds.Types, db.Type{Id: id, Name: ts.Type.Name})
			}
			ds.Links = append(ds.Links, db.PokemonType{
				PokemonId: r.Id,
				TypeId:    id,
				Slot:      ts.Slot,
			})
		}
	}

	span.SetAttributes(
		attribute.Int("pokemon", len(ds.Pokemon)),
		attribute.Int("types", len(ds.Types)),
		attribute.Int("links", len(ds.Links)),
	)
	return ds, nil
}
