package repository

import (
	"context"

	"gorm.io/gorm"

	"itdesk/internal/domain/kb"
	"itdesk/internal/infrastructure/persistence/mappers"
	"itdesk/internal/infrastructure/persistence/models"
	"itdesk/internal/shared/db"
	"itdesk/internal/shared/errors"
)

type KBRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewKBRepository(gormDB *gorm.DB) *KBRepository {
	return &KBRepository{
		db:     gormDB,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *KBRepository) Save(ctx context.Context, article *kb.Article) error {
	model := r.mapper.ToModel(article)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return errors.NewUnavailableError("failed to save article", err.Error())
	}

	return article.SetID(model.ID)
}

func (r *KBRepository) Update(ctx context.Context, article *kb.Article) error {
	model := r.mapper.ToModel(article)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Select("title", "content", "category", "updated_at").
		Updates(model)

	if result.Error != nil {
		return errors.NewUnavailableError("failed to update article", result.Error.Error())
	}

	return nil
}

func (r *KBRepository) Delete(ctx context.Context, articleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ArticleModel{}, articleID)
	if result.Error != nil {
		return errors.NewUnavailableError("failed to delete article", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("article not found")
	}

	return nil
}

func (r *KBRepository) GetByID(ctx context.Context, articleID uint) (*kb.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, articleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("article not found")
		}
		return nil, errors.NewUnavailableError("failed to find article", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

func (r *KBRepository) List(ctx context.Context, category string) ([]*kb.Article, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{})

	if category != "" {
		query = query.Where("category = ?", category)
	}

	var rows []models.ArticleModel
	if err := query.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, errors.NewUnavailableError("failed to list articles", err.Error())
	}

	articles := make([]*kb.Article, 0, len(rows))
	for i := range rows {
		article, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, nil
}
