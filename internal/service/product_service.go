package service

import (
	"context"
	"io"

	"byaura/internal/domain"
	"byaura/pkg/cache"
	"byaura/pkg/logger"
)

type ProductService struct {
	repo   domain.ProductRepository
	cache  *cache.ResourceCache[*domain.Product]
	logger logger.Logger
}

func NewProductService(
	repo domain.ProductRepository,
	cache *cache.ResourceCache[*domain.Product],
	logger logger.Logger,
) domain.ProductService {
	return &ProductService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.ReplaceAll(products)
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Upsert(product)
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	product, err := s.repo.Create(ctx, draft.CreatePayload())
	if err != nil {
		return nil, err
	}

	s.cache.Upsert(product)
	s.logger.Info("Ürün oluşturuldu", map[string]interface{}{"id": product.ID, "sku": product.SKU})
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, draft domain.ProductDraft) (*domain.Product, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	product, err := s.repo.Update(ctx, id, draft.UpdatePayload())
	if err != nil {
		return nil, err
	}

	s.cache.Upsert(product)
	return product, nil
}

func (s *ProductService) SetProductImage(ctx context.Context, id int64, imageURL string) (*domain.Product, error) {
	product, err := s.repo.SetImage(ctx, id, imageURL)
	if err != nil {
		return nil, err
	}
	s.cache.Upsert(product)
	return product, nil
}

func (s *ProductService) UploadProductImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	return s.repo.UploadImage(ctx, filename, r)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(id)
	s.logger.Info("Ürün silindi", map[string]interface{}{"id": id})
	return nil
}
