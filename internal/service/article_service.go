package service

import (
	"context"
	"log"
	"time"

	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/listview"
	"crm-hub-be/internal/repository/specification"
	"crm-hub-be/internal/repository/unitofwork"
	"crm-hub-be/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IArticleService interface {
	List(ctx context.Context, q *dto.ListArticlesQuery) ([]dto.ArticleResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertArticleRequest) (*dto.ArticleResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertArticleRequest) (*dto.ArticleResponse, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, req *dto.ChangeArticleStatusRequest) (*dto.ArticleResponse, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type articleService struct {
	uowFactory unitofwork.RepositoryFactory
	snapshots  *store.SnapshotStore[*entity.KBArticle]
}

func NewArticleService(uowFactory unitofwork.RepositoryFactory) IArticleService {
	return &articleService{
		uowFactory: uowFactory,
		snapshots:  store.NewSnapshotStore[*entity.KBArticle](),
	}
}

var articleOrder = specification.OrderBy{Field: "created_at", Desc: true}

func articleToResponse(a *entity.KBArticle) dto.ArticleResponse {
	return dto.ArticleResponse{
		Id:        a.Id,
		Title:     a.Title,
		Content:   a.Content,
		Category:  a.Category,
		Tags:      a.Tags,
		Status:    string(a.Status),
		Views:     a.Views,
		IsPublic:  a.IsPublic,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (s *articleService) load(ctx context.Context) ([]*entity.KBArticle, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	seq := s.snapshots.Begin()
	articles, err := uow.ArticleRepository().FindAll(ctx, articleOrder)
	if err != nil {
		s.snapshots.Fail(seq)
		return nil, err
	}
	s.snapshots.Apply(seq, articles)
	return articles, nil
}

func (s *articleService) refresh(ctx context.Context) {
	if _, err := s.load(ctx); err != nil {
		log.Printf("[WARN] Article snapshot refresh failed: %v", err)
	}
}

func (s *articleService) List(ctx context.Context, q *dto.ListArticlesQuery) ([]dto.ArticleResponse, error) {
	articles, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	visible := listview.Visible(articles, q.Search, listview.ArticleSearchFields,
		listview.ArticleCategoryFacet(q.Category),
		listview.ArticleStatusFacet(q.Status),
	)

	result := make([]dto.ArticleResponse, 0, len(visible))
	for _, a := range visible {
		result = append(result, articleToResponse(a))
	}
	return result, nil
}

func (s *articleService) Show(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "article not found")
	}
	res := articleToResponse(article)
	return &res, nil
}

func buildArticle(req *dto.UpsertArticleRequest) (*entity.KBArticle, error) {
	status := entity.ArticleStatus(req.Status)
	if req.Status == "" {
		status = entity.ArticleStatusDraft
	} else if !status.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid article status")
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.KBArticle{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     tags,
		Status:   status,
		IsPublic: req.IsPublic,
	}, nil
}

func (s *articleService) Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertArticleRequest) (*dto.ArticleResponse, error) {
	article, err := buildArticle(req)
	if err != nil {
		return nil, err
	}
	article.Id = uuid.New()
	article.CreatedBy = &userId
	article.CreatedAt = time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ArticleRepository().Create(ctx, article); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := articleToResponse(article)
	return &res, nil
}

func (s *articleService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertArticleRequest) (*dto.ArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "article not found")
	}

	now := time.Now()
	article, err := buildArticle(req)
	if err != nil {
		return nil, err
	}
	article.Id = existing.Id
	article.Views = existing.Views
	article.CreatedBy = existing.CreatedBy
	article.CreatedAt = existing.CreatedAt
	article.UpdatedAt = &now

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := articleToResponse(article)
	return &res, nil
}

func (s *articleService) ChangeStatus(ctx context.Context, id uuid.UUID, req *dto.ChangeArticleStatusRequest) (*dto.ArticleResponse, error) {
	status := entity.ArticleStatus(req.Status)
	if !status.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid article status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "article not found")
	}

	now := time.Now()
	article.Status = status
	article.UpdatedAt = &now

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := articleToResponse(article)
	return &res, nil
}

// IncrementViews bumps the counter atomically in the database instead of
// doing a read-modify-write on the full row.
func (s *articleService) IncrementViews(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ArticleRepository().IncrementViews(ctx, id)
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ArticleRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}
