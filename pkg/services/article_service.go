package services

import (
	"context"
	"fmt"
	"time"

	"github.com/100percenttuna/undertow/ent"
	"github.com/100percenttuna/undertow/ent/article"
	"github.com/100percenttuna/undertow/pkg/agent"
)

// ArticleService is the engine's read-only view of the source/article store.
// Ingestion writes these rows; the engine only reads them for Pass 1 inputs.
type ArticleService struct {
	client *ent.Client
}

// NewArticleService creates a new ArticleService.
func NewArticleService(client *ent.Client) *ArticleService {
	return &ArticleService{client: client}
}

// GetArticles loads the given article ids as agent inputs. Missing ids are
// skipped; callers decide whether an empty result is fatal.
func (s *ArticleService) GetArticles(ctx context.Context, ids []string) ([]agent.SourceArticle, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.client.Article.Query().
		Where(article.IDIn(ids...)).
		Order(ent.Asc(article.FieldPublishedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}

	articles := make([]agent.SourceArticle, len(rows))
	for i, row := range rows {
		articles[i] = agent.SourceArticle{
			ID:          row.ID,
			SourceName:  row.SourceName,
			URL:         row.URL,
			Title:       row.Title,
			Content:     row.Content,
			PublishedAt: row.PublishedAt.Format(time.RFC3339),
		}
	}
	return articles, nil
}
