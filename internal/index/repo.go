package index

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ocastel/tooldex/internal/apperr"
	"github.com/ocastel/tooldex/internal/models"
	"github.com/ocastel/tooldex/internal/slug"
)

// ToolRow represents a row in the tools table.
type ToolRow struct {
	Slug      string
	Tool      models.Tool
	UpdatedAt time.Time
}

// NewToolRow builds a row for a tool, deriving its slug.
func NewToolRow(t models.Tool) ToolRow {
	return ToolRow{Slug: slug.Make(t.Name), Tool: t, UpdatedAt: time.Now()}
}

// UpsertTool inserts or replaces a tool keyed by slug, so re-running a
// migration over the same source is idempotent.
func (db *DB) UpsertTool(row ToolRow) error {
	t := row.Tool
	_, err := db.conn.Exec(`
		INSERT INTO tools (slug, name, category, link, overview, description,
		                   audience, features, use_cases, tags, image_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name        = excluded.name,
			category    = excluded.category,
			link        = excluded.link,
			overview    = excluded.overview,
			description = excluded.description,
			audience    = excluded.audience,
			features    = excluded.features,
			use_cases   = excluded.use_cases,
			tags        = excluded.tags,
			image_url   = excluded.image_url,
			updated_at  = excluded.updated_at
	`, row.Slug, t.Name, t.Category, t.Link, t.Overview, t.Description,
		t.Audience, t.Features, t.UseCases, t.Tags, t.ImageURL, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert tool: %w", err)
	}
	return nil
}

// DeleteTool removes a tool by slug. Deleting an absent slug is a no-op.
func (db *DB) DeleteTool(sl string) error {
	if _, err := db.conn.Exec(`DELETE FROM tools WHERE slug = ?`, sl); err != nil {
		return fmt.Errorf("index: delete tool: %w", err)
	}
	return nil
}

// GetTool returns the tool stored under slug, or apperr.ErrNotFound.
func (db *DB) GetTool(sl string) (*ToolRow, error) {
	row := db.conn.QueryRow(`
		SELECT slug, name, category, link, overview, description,
		       audience, features, use_cases, tags, image_url, updated_at
		FROM tools WHERE slug = ?
	`, sl)
	tr, err := scanTool(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("index: get tool: %w", err)
	}
	return tr, nil
}

// AllTools returns every stored tool ordered by name. That ordering is
// the persistent store's canonical record order, which snapshot reads
// preserve.
func (db *DB) AllTools() ([]ToolRow, error) {
	rows, err := db.conn.Query(`
		SELECT slug, name, category, link, overview, description,
		       audience, features, use_cases, tags, image_url, updated_at
		FROM tools ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("index: all tools: %w", err)
	}
	defer rows.Close()

	var out []ToolRow
	for rows.Next() {
		tr, scanErr := scanTool(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, *tr)
	}
	return out, rows.Err()
}

// Count returns the number of stored tools.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT count(*) FROM tools`).Scan(&n); err != nil {
		return 0, fmt.Errorf("index: count: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTool(s scanner) (*ToolRow, error) {
	var tr ToolRow
	t := &tr.Tool
	err := s.Scan(&tr.Slug, &t.Name, &t.Category, &t.Link, &t.Overview, &t.Description,
		&t.Audience, &t.Features, &t.UseCases, &t.Tags, &t.ImageURL, &tr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// Tools unwraps rows into plain records, keeping row order.
func Tools(rows []ToolRow) []models.Tool {
	out := make([]models.Tool, len(rows))
	for i, r := range rows {
		out[i] = r.Tool
	}
	return out
}
