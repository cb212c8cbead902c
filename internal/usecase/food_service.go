package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/nutrigate/backend/internal/domain"
	"github.com/nutrigate/backend/internal/infrastructure/openfoodfacts"
)

// Package-level compiled regex patterns for performance
var whitespaceRunRegex = regexp.MustCompile(`\s+`)

const (
	// DefaultLimit is the page size used when a list endpoint's limit is
	// omitted.
	DefaultLimit = 10
	// MaxLimit caps the limit parameter of the list endpoints.
	MaxLimit = 50

	notFoundMessage = "Product not found"
)

// FoodServiceConfig holds configuration for the food service.
type FoodServiceConfig struct {
	ServiceName   string
	Description   string
	SampleBarcode string
}

// FoodService answers the six endpoint operations by composing query
// building, the upstream client, and the product normalizer. It holds no
// mutable state; each call performs exactly one upstream request.
type FoodService struct {
	client        domain.FoodDataClient
	serviceName   string
	description   string
	sampleBarcode string
}

// NewFoodService creates a new food service with dependencies.
func NewFoodService(client domain.FoodDataClient, config FoodServiceConfig) *FoodService {
	sampleBarcode := config.SampleBarcode
	if sampleBarcode == "" {
		sampleBarcode = "3017620422003" // Nutella, a reliably present record
	}

	return &FoodService{
		client:        client,
		serviceName:   config.ServiceName,
		description:   config.Description,
		sampleBarcode: sampleBarcode,
	}
}

// LookupResponse is the envelope of the barcode endpoint. A missing
// product is a normal response with Found=false, never an error.
type LookupResponse struct {
	Found     bool            `json:"found"`
	Barcode   string          `json:"barcode,omitempty"`
	Message   string          `json:"message,omitempty"`
	Product   *domain.Product `json:"product,omitempty"`
	FetchedAt string          `json:"fetchedAt,omitempty"`
}

// NutritionResponse merges the full NutritionDetail with the response
// envelope of the nutrition endpoint. For a missing product the detail
// stays nil and only the Found/Barcode/Message fields serialize, the
// same shape LookupResponse produces.
type NutritionResponse struct {
	Found   bool   `json:"found"`
	Barcode string `json:"barcode,omitempty"`
	Message string `json:"message,omitempty"`
	*domain.NutritionDetail
	FetchedAt string `json:"fetchedAt,omitempty"`
}

// ListResponse is the envelope of the search/category/brand endpoints.
// Count echoes the upstream-reported total, which may exceed
// len(Products).
type ListResponse struct {
	Query     string            `json:"query,omitempty"`
	Category  string            `json:"category,omitempty"`
	Brand     string            `json:"brand,omitempty"`
	Count     int               `json:"count"`
	Products  []*domain.Product `json:"products"`
	FetchedAt string            `json:"fetchedAt"`
}

// EndpointSummary is one catalog row of the overview response.
type EndpointSummary struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// OverviewResponse is the free endpoint's body: the priced-endpoint
// catalog plus one live normalized sample to prove connectivity.
type OverviewResponse struct {
	Service       string            `json:"service"`
	Description   string            `json:"description"`
	Endpoints     []EndpointSummary `json:"endpoints"`
	SampleProduct *domain.Product   `json:"sampleProduct"`
	FetchedAt     string            `json:"fetchedAt"`
}

// Overview answers the free endpoint. The catalog is generated from the
// endpoint registry; the sample product comes from one live lookup.
func (s *FoodService) Overview(ctx context.Context) (*OverviewResponse, error) {
	lookup, err := s.client.ProductByBarcode(ctx, s.sampleBarcode)
	if err != nil {
		return nil, err
	}

	var sample *domain.Product
	if lookup.Status == 1 {
		sample = openfoodfacts.MapToProduct(lookup.Product)
	}

	var catalog []EndpointSummary
	for _, spec := range Endpoints() {
		if spec.Key == "overview" {
			continue
		}
		catalog = append(catalog, EndpointSummary{
			Key:         spec.Key,
			Description: spec.Description,
			Price:       spec.Price,
		})
	}

	return &OverviewResponse{
		Service:       s.serviceName,
		Description:   s.description,
		Endpoints:     catalog,
		SampleProduct: sample,
		FetchedAt:     fetchedAt(),
	}, nil
}

// ProductByBarcode answers the barcode endpoint.
func (s *FoodService) ProductByBarcode(ctx context.Context, barcode string) (*LookupResponse, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, fmt.Errorf("%w: barcode must not be empty", domain.ErrInvalidRequest)
	}

	lookup, err := s.client.ProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if lookup.Status != 1 {
		return &LookupResponse{
			Found:   false,
			Barcode: barcode,
			Message: notFoundMessage,
		}, nil
	}

	return &LookupResponse{
		Found:     true,
		Product:   openfoodfacts.MapToProduct(lookup.Product),
		FetchedAt: fetchedAt(),
	}, nil
}

// Nutrition answers the nutrition-analysis endpoint. A not-found product
// yields the same Found=false envelope as the barcode endpoint; the
// detail normalizer is only invoked for found records.
func (s *FoodService) Nutrition(ctx context.Context, barcode string) (*NutritionResponse, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, fmt.Errorf("%w: barcode must not be empty", domain.ErrInvalidRequest)
	}

	lookup, err := s.client.ProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if lookup.Status != 1 {
		return &NutritionResponse{
			Found:   false,
			Barcode: barcode,
			Message: notFoundMessage,
		}, nil
	}

	return &NutritionResponse{
		Found:           true,
		NutritionDetail: openfoodfacts.MapToNutritionDetail(lookup.Product),
		FetchedAt:       fetchedAt(),
	}, nil
}

// Search answers the full-text search endpoint. The limit is forwarded
// upstream as the page size, so no local slicing happens here.
func (s *FoodService) Search(ctx context.Context, query string, limit int) (*ListResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query must not be empty", domain.ErrInvalidRequest)
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	list, err := s.client.SearchProducts(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	return &ListResponse{
		Query:     query,
		Count:     list.Count,
		Products:  normalizeList(list.Products, len(list.Products)),
		FetchedAt: fetchedAt(),
	}, nil
}

// Category answers the category listing endpoint. The category listing
// has no upstream limit parameter, so the list is sliced locally.
func (s *FoodService) Category(ctx context.Context, category string, limit int) (*ListResponse, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category must not be empty", domain.ErrInvalidRequest)
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	list, err := s.client.ProductsByCategory(ctx, Slugify(category))
	if err != nil {
		return nil, err
	}

	return &ListResponse{
		Category:  category,
		Count:     list.Count,
		Products:  normalizeList(list.Products, limit),
		FetchedAt: fetchedAt(),
	}, nil
}

// Brand answers the brand listing endpoint, with the same local slicing
// contract as Category.
func (s *FoodService) Brand(ctx context.Context, brand string, limit int) (*ListResponse, error) {
	if strings.TrimSpace(brand) == "" {
		return nil, fmt.Errorf("%w: brand must not be empty", domain.ErrInvalidRequest)
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	list, err := s.client.ProductsByBrand(ctx, Slugify(brand))
	if err != nil {
		return nil, err
	}

	return &ListResponse{
		Brand:     brand,
		Count:     list.Count,
		Products:  normalizeList(list.Products, limit),
		FetchedAt: fetchedAt(),
	}, nil
}

// Slugify derives the upstream taxonomy slug from a caller-supplied
// category or brand name: lowercase, trimmed, whitespace runs collapsed
// to single hyphens. "Coca Cola" becomes "coca-cola".
func Slugify(name string) string {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	return whitespaceRunRegex.ReplaceAllString(trimmed, "-")
}

// normalizeList maps at most limit raw records through the summary
// normalizer, dropping entries that normalize to nil.
func normalizeList(raws []domain.RawProduct, limit int) []*domain.Product {
	if len(raws) > limit {
		raws = raws[:limit]
	}

	products := make([]*domain.Product, 0, len(raws))
	for _, raw := range raws {
		if p := openfoodfacts.MapToProduct(raw); p != nil {
			products = append(products, p)
		}
	}
	return products
}

func validateLimit(limit int) error {
	if limit < 1 || limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidRequest, MaxLimit)
	}
	return nil
}

// fetchedAt is captured at response-construction time, not request
// start.
func fetchedAt() string {
	return time.Now().UTC().Format(time.RFC3339)
}
