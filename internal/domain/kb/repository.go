package kb

import "context"

// Repository persists knowledge-base articles.
type Repository interface {
	Save(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, articleID uint) error
	GetByID(ctx context.Context, articleID uint) (*Article, error)
	// List returns articles, optionally filtered by category, newest first.
	List(ctx context.Context, category string) ([]*Article, error)
}
