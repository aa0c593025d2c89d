// Package dto defines wire representations for knowledge-base articles.
package dto

import (
	"time"

	"itdesk/internal/domain/kb"
)

// ArticleDTO is the JSON shape of a knowledge-base article. HTML carries the
// rendered, sanitized body and is only populated on single-article reads.
type ArticleDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	HTML      string    `json:"html,omitempty"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromEntity converts a domain article to its DTO.
func FromEntity(article *kb.Article) *ArticleDTO {
	return &ArticleDTO{
		ID:        article.ID(),
		Title:     article.Title(),
		Content:   article.Content(),
		Category:  article.Category(),
		CreatedAt: article.CreatedAt(),
		UpdatedAt: article.UpdatedAt(),
	}
}

// FromEntities converts a slice of domain articles to DTOs.
func FromEntities(articles []*kb.Article) []*ArticleDTO {
	dtos := make([]*ArticleDTO, 0, len(articles))
	for _, article := range articles {
		dtos = append(dtos, FromEntity(article))
	}
	return dtos
}
