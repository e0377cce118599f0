package db

import (
	"context"
	"strings"
)

// Batch inserts build a single multi-row INSERT so each table is
// written with one statement. Callers are expected to run these
// inside a transaction.

func (q *Queries) InsertTypes(ctx context.Context, rows []Type) error {
	if len(rows) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("INSERT INTO type (id, name) VALUES ")
	args := make([]interface{}, 0, len(rows)*2)
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(?, ?)")
		args = append(args, r.Id, r.Name)
	}
	_, err := q.db.ExecContext(ctx, b.String(), args...)
	return err
}

func (q *Queries) InsertPokemon(ctx context.Context, rows []Pokemon) error {
	if len(rows) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("INSERT INTO pokemon (id, name, height, weight, base_experience) VALUES ")
	args := make([]interface{}, 0, len(rows)*5)
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(?, ?, ?, ?, ?)")
		args = append(args, r.Id, r.Name, r.Height, r.Weight, r.BaseExperience)
	}
	_, err := q.db.ExecContext(ctx, b.String(), args...)
	return err
}

func (q *Queries) InsertPokemonTypes(ctx context.Context, rows []PokemonType) error {
	if len(rows) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("INSERT INTO pokemon_type (pokemon_id, type_id, slot) VALUES ")
	args := make([]interface{}, 0, len(rows)*3)
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(?, ?, ?)")
		args = append(args, r.PokemonId, r.TypeId, r.Slot)
	}
	_, err := q.db.ExecContext(ctx, b.String(), args...)
	return err
}
