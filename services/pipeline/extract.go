package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"pokepipeline/lib/pokeapi"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/pipeline")

// Extract fetches one page of up to `limit` pokemon summaries and
// then the full detail record behind each one. A failed detail fetch
// only drops that pokemon from the batch; a failed list fetch aborts
// the whole extraction.
func Extract(ctx context.Context, client *pokeapi.Client, limit int) ([]pokeapi.Pokemon, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	list, err := client.List(ctx, limit, 0)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch pokemon list")
		return nil, fmt.Errorf("fetch pokemon list: %w", err)
	}
	slog.InfoContext(ctx, "retrieved pokemon endpoints", "count", len(list.Results))

	raw := make([]pokeapi.Pokemon, 0, len(list.Results))
	for _, summary := range list.Results {
		detail, err := client.Get(ctx, summary.Url)
		if err != nil {
			// one bad detail endpoint shouldn't sink the batch
			slog.WarnContext(
				ctx, "skipping pokemon, detail fetch failed",
				"name", summary.Name,
				"url", summary.Url,
				"err", err,
			)
			continue
		}
		raw = append(raw, detail)
	}

	span.SetAttributes(
		attribute.Int("fetched", len(raw)),
		attribute.Int("skipped", len(list.Results)-len(raw)),
	)
	slog.InfoContext(
		ctx, "extraction complete",
		"fetched", len(raw),
		"skipped", len(list.Results)-len(raw),
	)
	return raw, nil
}
