package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pokepipeline/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("pokeapi")

const DefaultBaseUrl = "https://pokeapi.co/api/v2"

// NamedResource is the {name, url} reference object the API uses to
// point at other resources.
type NamedResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type ListResponse struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

type TypeSlot struct {
	Slot int64         `json:"slot"`
	Type NamedResource `json:"type"`
}

// Pokemon is the subset of the detail endpoint this pipeline cares
// about. Height, weight and base experience can be absent.
type Pokemon struct {
	Id             int64      `json:"id"`
	Name           string     `json:"name"`
	Height         *float64   `json:"height"`
	Weight         *float64   `json:"weight"`
	BaseExperience *int64     `json:"base_experience"`
	Types          []TypeSlot `json:"types"`
}

type Client struct {
	http *resty.Client
}

func NewClient(baseUrl string) *Client {
	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(time.Second * 10)
	client.SetHeader("accept", "application/json")

	telemetry.InstrumentResty(client, "pokeapi/http")

	return &Client{http: client}
}

// List fetches one page of pokemon summaries.
func (c *Client) List(ctx context.Context, limit, offset int) (ListResponse, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"limit":  fmt.Sprint(limit),
			"offset": fmt.Sprint(offset),
		}).
		Get("/pokemon")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch pokemon list")
		return ListResponse{}, err
	}
	if res.IsError() {
		err := fmt.Errorf("list pokemon: unexpected status %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return ListResponse{}, err
	}

	var out ListResponse
	err = json.Unmarshal(res.Body(), &out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return ListResponse{}, err
	}

	return out, nil
}

// Get fetches the full detail record behind a summary's url. The url
// is absolute, as returned by the list endpoint.
func (c *Client) Get(ctx context.Context, url string) (Pokemon, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch pokemon detail")
		return Pokemon{}, err
	}
	if res.IsError() {
		err := fmt.Errorf("get pokemon %q: unexpected status %s", url, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return Pokemon{}, err
	}

	var out Pokemon
	err = json.Unmarshal(res.Body(), &out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return Pokemon{}, err
	}

	return out, nil
}
