package db

import "database/sql"

type Pokemon struct {
	Id             int64
	Name           string
	Height         sql.NullFloat64
	Weight         sql.NullFloat64
	BaseExperience sql.NullInt64
}

type Type struct {
	Id   int64
	Name string
}

type PokemonType struct {
	PokemonId int64
	TypeId    int64
	Slot      int64
}
