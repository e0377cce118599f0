package configsqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenDBCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")

	db, err := Struct{File: path}.OpenDB()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = db.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
}

func TestOpenDBRequiresTarget(t *testing.T) {
	_, err := Struct{}.OpenDB()
	require.Error(t, err)
}
