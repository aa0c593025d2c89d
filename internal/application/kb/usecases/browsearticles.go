package usecases

import (
	"context"

	"itdesk/internal/application/kb/dto"
	"itdesk/internal/domain/kb"
	"itdesk/internal/shared/errors"
	"itdesk/internal/shared/logger"
	"itdesk/internal/shared/services/markdown"
)

// BrowseArticlesUseCase handles knowledge-base reads. Single-article reads
// include the markdown body rendered to sanitized HTML.
type BrowseArticlesUseCase struct {
	articleRepo kb.Repository
	renderer    markdown.Service
	logger      logger.Interface
}

// NewBrowseArticlesUseCase creates a new BrowseArticlesUseCase.
func NewBrowseArticlesUseCase(
	articleRepo kb.Repository,
	renderer markdown.Service,
	logger logger.Interface,
) *BrowseArticlesUseCase {
	return &BrowseArticlesUseCase{
		articleRepo: articleRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// List returns articles newest first, optionally filtered by category.
// Bodies are returned as raw markdown; rendering is deferred to Get.
func (uc *BrowseArticlesUseCase) List(ctx context.Context, category string) ([]*dto.ArticleDTO, error) {
	articles, err := uc.articleRepo.List(ctx, category)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "category", category, "error", err)
		return nil, err
	}
	return dto.FromEntities(articles), nil
}

// Get returns a single article with its rendered HTML body.
func (uc *BrowseArticlesUseCase) Get(ctx context.Context, articleID uint) (*dto.ArticleDTO, error) {
	if articleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	article, err := uc.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	result := dto.FromEntity(article)

	rendered, err := uc.renderer.ToHTMLSanitized(article.Content())
	if err != nil {
		// Raw markdown is still usable on the client, so a render failure
		// degrades rather than fails the read.
		uc.logger.Warnw("failed to render article", "id", articleID, "error", err)
		return result, nil
	}
	result.HTML = rendered

	return result, nil
}
