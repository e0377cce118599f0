package db

import "context"

const listPokemon = `
SELECT id, name, height, weight, base_experience FROM pokemon ORDER BY id
`

func (q *Queries) ListPokemon(ctx context.Context) ([]Pokemon, error) {
	rows, err := q.db.QueryContext(ctx, listPokemon)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Pokemon
	for rows.Next() {
		var i Pokemon
		err := rows.Scan(&i.Id, &i.Name, &i.Height, &i.Weight, &i.BaseExperience)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listTypes = `
SELECT id, name FROM type ORDER BY id
`

func (q *Queries) ListTypes(ctx context.Context) ([]Type, error) {
	rows, err := q.db.QueryContext(ctx, listTypes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Type
	for rows.Next() {
		var i Type
		err := rows.Scan(&i.Id, &i.Name)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listPokemonTypes = `
SELECT pokemon_id, type_id, slot FROM pokemon_type ORDER BY pokemon_id, type_id
`

func (q *Queries) ListPokemonTypes(ctx context.Context) ([]PokemonType, error) {
	rows, err := q.db.QueryContext(ctx, listPokemonTypes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PokemonType
	for rows.Next() {
		var i PokemonType
		err := rows.Scan(&i.PokemonId, &i.TypeId, &i.Slot)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countPokemonByType = `
SELECT t.name, COUNT(pt.pokemon_id) AS count
FROM type t
JOIN pokemon_type pt ON t.id = pt.type_id
GROUP BY t.name
ORDER BY count DESC, t.name ASC
`

type CountPokemonByTypeRow struct {
	Name  string
	Count int64
}

func (q *Queries) CountPokemonByType(ctx context.Context) ([]CountPokemonByTypeRow, error) {
	rows, err := q.db.QueryContext(ctx, countPokemonByType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CountPokemonByTypeRow
	for rows.Next() {
		var i CountPokemonByTypeRow
		err := rows.Scan(&i.Name, &i.Count)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
