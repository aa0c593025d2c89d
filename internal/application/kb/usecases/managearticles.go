package usecases

import (
	"context"

	"itdesk/internal/application/kb/dto"
	"itdesk/internal/domain/kb"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
)

// ManageArticlesUseCase handles knowledge-base mutations.
type ManageArticlesUseCase struct {
	articleRepo kb.Repository
	logger      logger.Interface
}

// NewManageArticlesUseCase creates a new ManageArticlesUseCase.
func NewManageArticlesUseCase(articleRepo kb.Repository, logger logger.Interface) *ManageArticlesUseCase {
	return &ManageArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

// Create stores a new article.
func (uc *ManageArticlesUseCase) Create(ctx context.Context, title, content, category string) (*dto.ArticleDTO, error) {
	article, err := kb.NewArticle(title, content, category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Save(ctx, article); err != nil {
		uc.logger.Errorw("failed to save article", "title", title, "error", err)
		return nil, err
	}

	uc.logger.Infow("article created", "id", article.ID(), "title", title)
	return dto.FromEntity(article), nil
}

// Update revises an article. Empty arguments keep the current value.
func (uc *ManageArticlesUseCase) Update(ctx context.Context, articleID uint, title, content, category string) (*dto.ArticleDTO, error) {
	if articleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	article, err := uc.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if err := article.Revise(title, content, category); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		uc.logger.Errorw("failed to update article", "id", articleID, "error", err)
		return nil, err
	}

	return dto.FromEntity(article), nil
}

// Delete removes an article permanently.
func (uc *ManageArticlesUseCase) Delete(ctx context.Context, articleID uint) error {
	if articleID == 0 {
		return errors.NewValidationError("article ID is required")
	}

	if err := uc.articleRepo.Delete(ctx, articleID); err != nil {
		uc.logger.Errorw("failed to delete article", "id", articleID, "error", err)
		return err
	}

	uc.logger.Infow("article deleted", "id", articleID)
	return nil
}
