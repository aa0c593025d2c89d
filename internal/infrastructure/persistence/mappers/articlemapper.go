package mappers

import (
	"fmt"

	"itdesk/internal/domain/kb"
	"itdesk/internal/infrastructure/persistence/models"
)

// ArticleMapper handles the conversion between knowledge-base articles and persistence models.
type ArticleMapper interface {
	ToModel(entity *kb.Article) *models.ArticleModel
	ToDomain(model *models.ArticleModel) (*kb.Article, error)
}

type ArticleMapperImpl struct{}

// NewArticleMapper creates a new ArticleMapper.
func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToModel(entity *kb.Article) *models.ArticleModel {
	if entity == nil {
		return nil
	}
	return &models.ArticleModel{
		ID:        entity.ID(),
		Title:     entity.Title(),
		Content:   entity.Content(),
		Category:  entity.Category(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *ArticleMapperImpl) ToDomain(model *models.ArticleModel) (*kb.Article, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := kb.ReconstructArticle(model.ID, model.Title, model.Content, model.Category, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct article %d: %w", model.ID, err)
	}

	return entity, nil
}
