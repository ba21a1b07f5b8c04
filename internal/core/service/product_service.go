package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/primekart/storefront-api/internal/core/domain"
	"github.com/primekart/storefront-api/internal/core/ports"
)

// ProductService is a thin passthrough over the catalog collection.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (string, error) {
	product := &domain.Product{
		Title:      input.Title,
		Price:      input.Price,
		Attributes: input.Attributes,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create product")
		return "", err
	}

	s.logger.Info().Str("product_id", id).Str("title", input.Title).Msg("product created")
	return id, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
