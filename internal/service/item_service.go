package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// ItemService handles the catalog of loanable items.
type ItemService struct {
	itemRepo repository.ItemRepository
	logger   zerolog.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repository.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		logger:   logger.With().Str("service", "item").Logger(),
	}
}

// AddItemInput contains the data needed to add a catalog item.
type AddItemInput struct {
	Title            string
	Author           string
	ISBN             string
	Category         domain.ItemCategory
	Description      string
	Location         string
	ReplacementValue float64
}

// Add creates a new available catalog item acquired now.
func (s *ItemService) Add(ctx context.Context, input AddItemInput) (*domain.Item, error) {
	if err := domain.ValidateISBN(input.ISBN); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.ReplacementValue); err != nil {
		return nil, err
	}

	item := domain.NewItem(input.Title, input.Category)
	item.Author = input.Author
	item.ISBN = input.ISBN
	item.Description = input.Description
	item.Location = input.Location
	item.ReplacementValue = input.ReplacementValue

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("item_id", item.ID).
		Str("title", item.Title).
		Str("category", item.Category.String()).
		Msg("item added to catalog")

	return item, nil
}

// FindByTitle returns items whose title contains the given substring.
func (s *ItemService) FindByTitle(ctx context.Context, title string) ([]*domain.Item, error) {
	return s.itemRepo.FindByTitle(ctx, title)
}

// FindByAuthor returns items whose author contains the given substring.
func (s *ItemService) FindByAuthor(ctx context.Context, author string) ([]*domain.Item, error) {
	return s.itemRepo.FindByAuthor(ctx, author)
}

// ListByCategory returns all items in a category.
func (s *ItemService) ListByCategory(ctx context.Context, category domain.ItemCategory) ([]*domain.Item, error) {
	return s.itemRepo.ListByCategory(ctx, category)
}

// ListAvailable returns all items that can be loaned right now.
func (s *ItemService) ListAvailable(ctx context.Context) ([]*domain.Item, error) {
	return s.itemRepo.ListByStatus(ctx, domain.ItemStatusAvailable)
}

// ChangeStatus moves an item to a new lifecycle state, e.g. sending it to
// repair or marking it lost.
func (s *ItemService) ChangeStatus(ctx context.Context, itemID int64, status domain.ItemStatus) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Status = status
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("item_id", item.ID).
		Str("status", status.String()).
		Msg("item status changed")

	return item, nil
}
