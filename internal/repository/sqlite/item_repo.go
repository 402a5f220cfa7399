package sqlite

import (
	"context"

	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository"
)

// itemRepository implements repository.ItemRepository on top of the store.
type itemRepository struct {
	store *Store
}

// NewItemRepository creates a new SQLite item repository.
func NewItemRepository(store *Store) repository.ItemRepository {
	return &itemRepository{store: store}
}

func itemToRow(item *domain.Item) Row {
	row := Row{
		"title":       item.Title,
		"category":    item.Category.String(),
		"status":      item.Status.String(),
		"acquired_at": formatTime(item.AcquiredAt),
	}
	if item.Author != "" {
		row["author"] = item.Author
	}
	if item.ISBN != "" {
		row["isbn"] = item.ISBN
	}
	if item.Description != "" {
		row["description"] = item.Description
	}
	if item.Location != "" {
		row["location"] = item.Location
	}
	if item.ReplacementValue != 0 {
		row["replacement_value"] = item.ReplacementValue
	}
	return row
}

func itemFromRow(row Row) (*domain.Item, error) {
	category, err := domain.ParseItemCategory(rowString(row, "category"))
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseItemStatus(rowString(row, "status"))
	if err != nil {
		return nil, err
	}
	return &domain.Item{
		ID:               rowInt64(row, "id"),
		Title:            rowString(row, "title"),
		Author:           rowString(row, "author"),
		ISBN:             rowString(row, "isbn"),
		Category:         category,
		Status:           status,
		Description:      rowString(row, "description"),
		Location:         rowString(row, "location"),
		AcquiredAt:       rowTime(row, "acquired_at"),
		ReplacementValue: rowFloat64(row, "replacement_value"),
	}, nil
}

// Create creates a new catalog item.
func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	id, err := r.store.Insert(ctx, TableItems, itemToRow(item))
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

// GetByID retrieves an item by ID.
func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	rows, err := r.store.Select(ctx, TableItems, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrItemNotFound
	}
	return itemFromRow(rows[0])
}

// Update updates an existing item.
func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	affected, err := r.store.Update(ctx, TableItems, itemToRow(item), "id = ?", item.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete deletes an item by ID.
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.store.Delete(ctx, TableItems, "id = ?", id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// List returns the whole catalog.
func (r *itemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	return r.list(ctx, "")
}

// FindByTitle returns items whose title contains the given substring.
func (r *itemRepository) FindByTitle(ctx context.Context, title string) ([]*domain.Item, error) {
	return r.list(ctx, "title LIKE ?", "%"+title+"%")
}

// FindByAuthor returns items whose author contains the given substring.
func (r *itemRepository) FindByAuthor(ctx context.Context, author string) ([]*domain.Item, error) {
	return r.list(ctx, "author LIKE ?", "%"+author+"%")
}

// ListByCategory returns all items in a category.
func (r *itemRepository) ListByCategory(ctx context.Context, category domain.ItemCategory) ([]*domain.Item, error) {
	return r.list(ctx, "category = ?", category.String())
}

// ListByStatus returns all items in a lifecycle state.
func (r *itemRepository) ListByStatus(ctx context.Context, status domain.ItemStatus) ([]*domain.Item, error) {
	return r.list(ctx, "status = ?", status.String())
}

func (r *itemRepository) list(ctx context.Context, where string, args ...any) ([]*domain.Item, error) {
	rows, err := r.store.Select(ctx, TableItems, where, args...)
	if err != nil {
		return nil, err
	}
	items := make([]*domain.Item, 0, len(rows))
	for _, row := range rows {
		item, err := itemFromRow(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

var _ repository.ItemRepository = (*itemRepository)(nil)
