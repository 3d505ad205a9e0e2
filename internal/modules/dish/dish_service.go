package dish

import (
	"context"
	"fmt"

	"dine-and-deliver/internal/models"
)

// VendorDirectoryInterface resolves the calling user's vendor profile.
type VendorDirectoryInterface interface {
	FindByUserID(ctx context.Context, userID string) (*models.Vendor, error)
}

// ServiceInterface defines the contract for the dish service.
type ServiceInterface interface {
	Add(ctx context.Context, vendorUserID string, req models.CreateDishRequest) (*models.Dish, error)
	Update(ctx context.Context, vendorUserID, dishID string, req models.UpdateDishRequest) (*models.Dish, error)
	Delete(ctx context.Context, vendorUserID, dishID string) error
	MyMenu(ctx context.Context, vendorUserID string) ([]*models.Dish, error)
	Get(ctx context.Context, dishID string) (*models.Dish, error)
	ListAll(ctx context.Context) ([]*models.Dish, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*models.Dish, error)
	Search(ctx context.Context, query string) ([]*models.Dish, error)
}

const defaultDishImage = "https://images.unsplash.com/photo-1610832958506-aa56368176cf?w=500&auto=format&fit=crop&q=60"

// Service implements the dish service logic.
type Service struct {
	repo    RepositoryInterface
	vendors VendorDirectoryInterface
}

// NewService creates a new dish service.
func NewService(repo RepositoryInterface, vendors VendorDirectoryInterface) *Service {
	return &Service{repo: repo, vendors: vendors}
}

// Add creates a dish on the calling vendor's menu.
func (s *Service) Add(ctx context.Context, vendorUserID string, req models.CreateDishRequest) (*models.Dish, error) {
	vendor, err := s.vendors.FindByUserID(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = defaultDishImage
	}

	dish, err := s.repo.Create(ctx, &models.Dish{
		VendorID:    vendor.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    imageURL,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("service.AddDish: %w", err)
	}
	return dish, nil
}

// Update edits a dish; the repository scoping hides other vendors' dishes.
func (s *Service) Update(ctx context.Context, vendorUserID, dishID string, req models.UpdateDishRequest) (*models.Dish, error) {
	vendor, err := s.vendors.FindByUserID(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}
	dish, err := s.repo.Update(ctx, dishID, vendor.ID, req)
	if err != nil {
		return nil, err
	}
	return dish, nil
}

// Delete removes a dish from the calling vendor's menu.
func (s *Service) Delete(ctx context.Context, vendorUserID, dishID string) error {
	vendor, err := s.vendors.FindByUserID(ctx, vendorUserID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, dishID, vendor.ID)
}

// MyMenu lists the calling vendor's dishes.
func (s *Service) MyMenu(ctx context.Context, vendorUserID string) ([]*models.Dish, error) {
	vendor, err := s.vendors.FindByUserID(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByVendor(ctx, vendor.ID)
}

// Get returns one dish by id.
func (s *Service) Get(ctx context.Context, dishID string) (*models.Dish, error) {
	return s.repo.FindByID(ctx, dishID)
}

// ListAll returns the public catalog.
func (s *Service) ListAll(ctx context.Context) ([]*models.Dish, error) {
	return s.repo.ListAll(ctx)
}

// ListByVendor returns a vendor's public menu.
func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]*models.Dish, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

// Search matches dish names.
func (s *Service) Search(ctx context.Context, query string) ([]*models.Dish, error) {
	return s.repo.Search(ctx, query)
}
