package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const pikachuDetail = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"base_experience": 112,
	"types": [
		{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}
	]
}`

func TestClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("limit"))
		require.Equal(t, "0", r.URL.Query().Get("offset"))
		fmt.Fprintf(w, `{
			"count": 2,
			"results": [
				{"name": "bulbasaur", "url": "http://%s/pokemon/1"},
				{"name": "pikachu", "url": "http://%s/pokemon/25"}
			]
		}`, r.Host, r.Host)
	})
	mux.HandleFunc("/pokemon/25", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pikachuDetail)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	list, err := client.List(ctx, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 2, list.Count)
	require.Len(t, list.Results, 2)
	require.Equal(t, "bulbasaur", list.Results[0].Name)
	require.Equal(t, "pikachu", list.Results[1].Name)

	detail, err := client.Get(ctx, list.Results[1].Url)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, int64(25), detail.Id)
	require.Equal(t, "pikachu", detail.Name)
	require.NotNil(t, detail.Height)
	require.Equal(t, float64(4), *detail.Height)
	require.NotNil(t, detail.Weight)
	require.Equal(t, float64(60), *detail.Weight)
	require.NotNil(t, detail.BaseExperience)
	require.Equal(t, int64(112), *detail.BaseExperience)
	require.Len(t, detail.Types, 1)
	require.Equal(t, int64(1), detail.Types[0].Slot)
	require.Equal(t, "electric", detail.Types[0].Type.Name)
}

func TestClientOptionalFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon/9999", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 9999, "name": "missingno", "types": []}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	detail, err := client.Get(ctx, server.URL+"/pokemon/9999")
	if err != nil {
		t.Fatal(err)
	}
	require.Nil(t, detail.Height)
	require.Nil(t, detail.Weight)
	require.Nil(t, detail.BaseExperience)
}

func TestClientErrorStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon/404", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	_, err := client.Get(ctx, server.URL+"/pokemon/404")
	require.Error(t, err)

	_, err = client.List(ctx, 5, 0)
	require.Error(t, err)
}
