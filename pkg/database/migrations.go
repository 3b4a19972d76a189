package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes back the dashboard's search over headlines and final article text.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_stories_headline_gin
		ON stories USING gin(to_tsvector('english', headline))`)
	if err != nil {
		return fmt.Errorf("failed to create headline GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_stories_article_final_gin
		ON stories USING gin(to_tsvector('english', COALESCE(article_final, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create article_final GIN index: %w", err)
	}

	return nil
}
