package pipeline

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"pokepipeline/lib/testutil"
	"pokepipeline/services/pipeline/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func sampleDataset() Dataset {
	return Dataset{
		Pokemon: []db.Pokemon{
			{
				Id:             25,
				Name:           "pikachu",
				Height:         sql.NullFloat64{Float64: 4, Valid: true},
				Weight:         sql.NullFloat64{Float64: 60, Valid: true},
				BaseExperience: sql.NullInt64{Int64: 112, Valid: true},
			},
			{Id: 92, Name: "gastly"},
		},
		Types: []db.Type{
			{Id: 1, Name: "electric"},
			{Id: 2, Name: "ghost"},
			{Id: 3, Name: "poison"},
		},
		Links: []db.PokemonType{
			{PokemonId: 25, TypeId: 1, Slot: 1},
			{PokemonId: 92, TypeId: 2, Slot: 1},
			{PokemonId: 92, TypeId: 3, Slot: 2},
		},
	}
}

func TestLoad(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name: "services/pipeline/load",
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	ds := sampleDataset()
	err := Load(ctx, setup.DB, ds)
	if err != nil {
		t.Fatal(err)
	}

	qry := db.New(setup.DB)

	pokemon, err := qry.ListPokemon(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, ds.Pokemon, pokemon)

	types, err := qry.ListTypes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, ds.Types, types)

	links, err := qry.ListPokemonTypes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, ds.Links, links)
}

func TestLoadIsIdempotent(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name: "services/pipeline/load_idempotent",
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	ds := sampleDataset()
	for i := 0; i < 2; i++ {
		err := Load(ctx, setup.DB, ds)
		if err != nil {
			t.Fatal(err)
		}
	}

	qry := db.New(setup.DB)
	pokemon, err := qry.ListPokemon(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, ds.Pokemon, pokemon)

	links, err := qry.ListPokemonTypes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, ds.Links, links)
}

func TestLoadEmptyDataset(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name: "services/pipeline/load_empty",
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := Load(ctx, setup.DB, Dataset{})
	if err != nil {
		t.Fatal(err)
	}

	// the tables exist, they are just empty
	qry := db.New(setup.DB)
	pokemon, err := qry.ListPokemon(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Empty(t, pokemon)

	types, err := qry.ListTypes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Empty(t, types)
}

func TestLoadFailureRollsBack(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name: "services/pipeline/load_rollback",
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	good := sampleDataset()
	err := Load(ctx, setup.DB, good)
	if err != nil {
		t.Fatal(err)
	}

	// duplicate type id violates the primary key mid-transaction
	bad := sampleDataset()
	bad.Types = []db.Type{
		{Id: 1, Name: "electric"},
		{Id: 1, Name: "fire"},
	}
	err = Load(ctx, setup.DB, bad)
	require.Error(t, err)

	// the failed run's schema reset was rolled back with it
	qry := db.New(setup.DB)
	pokemon, err := qry.ListPokemon(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, good.Pokemon, pokemon)

	types, err := qry.ListTypes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, good.Types, types)
}
