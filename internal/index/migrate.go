package index

import (
	"log/slog"

	"github.com/ocastel/tooldex/internal/ingest"
)

// Migrate runs the one-shot CSV-to-database migration: it parses the
// source file and upserts every record by slug. Per-record failures
// are counted and logged without aborting the run; the returned report
// includes rows the parser dropped and rows the store rejected.
func Migrate(db *DB, source, delim string, logger *slog.Logger) (ingest.Report, error) {
	tools, rep, err := ingest.ParseFile(source, delim)
	if err != nil {
		return rep, err
	}

	stored := 0
	for _, t := range tools {
		row := NewToolRow(t)
		if upErr := db.UpsertTool(row); upErr != nil {
			logger.Warn("migrate: upsert failed",
				slog.String("slug", row.Slug),
				slog.String("error", upErr.Error()))
			rep.Skipped++
			continue
		}
		stored++
	}
	rep.Imported = stored

	logger.Info("migration complete",
		slog.String("source", source),
		slog.Int("imported", rep.Imported),
		slog.Int("skipped", rep.Skipped),
		slog.Int("conflicts", rep.Conflicts))
	return rep, nil
}
