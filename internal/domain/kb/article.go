// Package kb holds knowledge-base articles written by technicians. Content
// is stored as markdown and rendered to sanitized HTML on read.
package kb

import (
	"fmt"
	"time"
)

// Article is a knowledge-base entry.
type Article struct {
	id        uint
	title     string
	content   string
	category  string
	createdAt time.Time
	updatedAt time.Time
}

// NewArticle creates an article.
func NewArticle(title, content, category string) (*Article, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}

	now := time.Now()
	return &Article{
		title:     title,
		content:   content,
		category:  category,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructArticle rebuilds an article from persistence.
func ReconstructArticle(id uint, title, content, category string, createdAt, updatedAt time.Time) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	return &Article{
		id:        id,
		title:     title,
		content:   content,
		category:  category,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Article) ID() uint             { return a.id }
func (a *Article) Title() string        { return a.title }
func (a *Article) Content() string      { return a.content }
func (a *Article) Category() string     { return a.category }
func (a *Article) CreatedAt() time.Time { return a.createdAt }
func (a *Article) UpdatedAt() time.Time { return a.updatedAt }

// SetID records the row identifier assigned by the store.
func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

// Revise replaces the article body. Empty arguments keep the current value.
func (a *Article) Revise(title, content, category string) error {
	if title != "" {
		if len(title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		a.title = title
	}
	if content != "" {
		a.content = content
	}
	if category != "" {
		a.category = category
	}
	a.updatedAt = time.Now()
	return nil
}
