// Package item contains grocery catalog use cases.
package item

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// fakeItemRepository is an in-memory GroceryItemRepository for use case tests.
type fakeItemRepository struct {
	items     []*entity.GroceryItem
	searchErr error
	findErr   error
}

func (f *fakeItemRepository) Create(ctx context.Context, item *entity.GroceryItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GroceryItem, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, domainerror.ErrItemNotFound
}

func (f *fakeItemRepository) FindAll(ctx context.Context) ([]*entity.GroceryItem, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.items, nil
}

func (f *fakeItemRepository) Search(ctx context.Context, query string) ([]*entity.GroceryItem, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	q := strings.ToLower(query)
	var matches []*entity.GroceryItem
	for _, item := range f.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Brand), q) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func catalogItem(name, brand string) *entity.GroceryItem {
	return entity.NewGroceryItem(name, brand, "", "", "", nil)
}

func TestSearchItemsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("exact name match outranks prefix and substring matches", func(t *testing.T) {
		repo := &fakeItemRepository{
			items: []*entity.GroceryItem{
				catalogItem("Milk Chocolate", ""),
				catalogItem("Oat Milk", ""),
				catalogItem("Milk", ""),
				catalogItem("Milkshake Mix", ""),
			},
		}
		uc := NewSearchItemsUseCase(repo)

		output, err := uc.Execute(ctx, SearchItemsInput{Query: "Milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := make([]string, len(output.Items))
		for i, item := range output.Items {
			got[i] = item.Name
		}

		want := []string{"Milk", "Milk Chocolate", "Milkshake Mix", "Oat Milk"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected ranking %v, got %v", want, got)
			}
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		repo := &fakeItemRepository{
			items: []*entity.GroceryItem{catalogItem("MILK", "")},
		}
		uc := NewSearchItemsUseCase(repo)

		output, err := uc.Execute(ctx, SearchItemsInput{Query: "milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(output.Items))
		}
	})

	t.Run("brand match contributes to the score", func(t *testing.T) {
		repo := &fakeItemRepository{
			items: []*entity.GroceryItem{
				catalogItem("Chocolate Bar", "Milka"),
				catalogItem("Milk", ""),
			},
		}
		uc := NewSearchItemsUseCase(repo)

		output, err := uc.Execute(ctx, SearchItemsInput{Query: "Milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(output.Items))
		}
		if output.Items[0].Name != "Milk" {
			t.Errorf("expected name match to outrank brand match, got %q first", output.Items[0].Name)
		}
		if output.Items[1].Name != "Chocolate Bar" {
			t.Errorf("expected brand match second, got %q", output.Items[1].Name)
		}
	})

	t.Run("equal scores keep repository order", func(t *testing.T) {
		repo := &fakeItemRepository{
			items: []*entity.GroceryItem{
				catalogItem("Oat Milk", ""),
				catalogItem("Soy Milk", ""),
				catalogItem("Almond Milk", ""),
			},
		}
		uc := NewSearchItemsUseCase(repo)

		output, err := uc.Execute(ctx, SearchItemsInput{Query: "Milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Oat Milk", "Soy Milk", "Almond Milk"}
		for i := range want {
			if output.Items[i].Name != want[i] {
				t.Fatalf("expected stable order %v, got %q at %d", want, output.Items[i].Name, i)
			}
		}
	})

	t.Run("empty query returns the full catalog", func(t *testing.T) {
		repo := &fakeItemRepository{
			items: []*entity.GroceryItem{
				catalogItem("Milk", ""),
				catalogItem("Bread", ""),
			},
		}
		uc := NewSearchItemsUseCase(repo)

		output, err := uc.Execute(ctx, SearchItemsInput{Query: "   "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Items) != 2 {
			t.Errorf("expected full catalog of 2 items, got %d", len(output.Items))
		}
	})

	t.Run("no matches yields an empty result", func(t *testing.T) {
		repo := &fakeItemRepository{
			items: []*entity.GroceryItem{catalogItem("Bread", "")},
		}
		uc := NewSearchItemsUseCase(repo)

		output, err := uc.Execute(ctx, SearchItemsInput{Query: "Milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Items) != 0 {
			t.Errorf("expected no items, got %d", len(output.Items))
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := &fakeItemRepository{searchErr: errors.New("connection lost")}
		uc := NewSearchItemsUseCase(repo)

		if _, err := uc.Execute(ctx, SearchItemsInput{Query: "Milk"}); err == nil {
			t.Error("expected error when repository fails")
		}
	})
}
