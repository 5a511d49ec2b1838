package catalog

import (
	"errors"
	"testing"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/shopspring/decimal"
)

func TestCatalog_Add(t *testing.T) {
	tests := []struct {
		name     string
		dish     string
		price    decimal.Decimal
		rating   float64
		category string
		wantErr  error
	}{
		{
			name:     "valid item",
			dish:     "Dosa",
			price:    decimal.RequireFromString("45.00"),
			rating:   4.1,
			category: models.CategoryMainCourse,
			wantErr:  nil,
		},
		{
			name:     "empty name",
			dish:     "",
			price:    decimal.RequireFromString("45.00"),
			rating:   4.1,
			category: models.CategoryMainCourse,
			wantErr:  ErrEmptyName,
		},
		{
			name:     "zero price",
			dish:     "Dosa",
			price:    decimal.Zero,
			rating:   4.1,
			category: models.CategoryMainCourse,
			wantErr:  ErrInvalidPrice,
		},
		{
			name:     "negative price",
			dish:     "Dosa",
			price:    decimal.RequireFromString("-1"),
			rating:   4.1,
			category: models.CategoryMainCourse,
			wantErr:  ErrInvalidPrice,
		},
		{
			name:     "rating above five",
			dish:     "Dosa",
			price:    decimal.RequireFromString("45.00"),
			rating:   5.5,
			category: models.CategoryMainCourse,
			wantErr:  ErrInvalidRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			item, err := c.Add(tt.dish, tt.category, tt.price, tt.rating, nil)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
				}
				if c.Len() != 0 {
					t.Errorf("Add() failed but catalog has %d items", c.Len())
				}
				return
			}

			if err != nil {
				t.Fatalf("Add() unexpected error = %v", err)
			}
			if item.ID != 1 {
				t.Errorf("Add() first id = %d, want 1", item.ID)
			}
			if got, ok := c.Get(item.ID); !ok || got.Name != tt.dish {
				t.Errorf("Get(%d) = %+v, %v", item.ID, got, ok)
			}
		})
	}
}

func TestCatalog_IdentifiersNeverReused(t *testing.T) {
	c := NewWithDefaults()
	if c.Len() != 8 {
		t.Fatalf("seeded catalog has %d items, want 8", c.Len())
	}

	if err := c.Remove(8); err != nil {
		t.Fatalf("Remove(8) error = %v", err)
	}

	item, err := c.Add("Tea", models.CategoryBeverage, decimal.RequireFromString("20.00"), 4.0, nil)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if item.ID != 9 {
		t.Errorf("id after removing the max = %d, want 9 (never reused)", item.ID)
	}
}

func TestCatalog_Remove(t *testing.T) {
	c := NewWithDefaults()

	if err := c.Remove(1); err != nil {
		t.Fatalf("Remove(1) error = %v", err)
	}
	if _, ok := c.Get(1); ok {
		t.Error("Get(1) found item after removal")
	}
	if err := c.Remove(1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("second Remove(1) error = %v, want ErrItemNotFound", err)
	}
	if err := c.Remove(999); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Remove(999) error = %v, want ErrItemNotFound", err)
	}
}

func TestCatalog_List(t *testing.T) {
	c := NewWithDefaults()

	all := c.List("")
	if len(all) != 8 {
		t.Fatalf("List(\"\") returned %d items, want 8", len(all))
	}
	// Insertion order must be preserved.
	if all[0].Name != "Burger" || all[7].Name != "Ice Cream" {
		t.Errorf("List order = %s ... %s, want Burger ... Ice Cream", all[0].Name, all[7].Name)
	}

	if got := c.List(CategoryAll); len(got) != 8 {
		t.Errorf("List(All) returned %d items, want 8", len(got))
	}

	sides := c.List(models.CategorySideDish)
	if len(sides) != 2 {
		t.Fatalf("List(Side Dish) returned %d items, want 2", len(sides))
	}
	if sides[0].Name != "Fries" || sides[1].Name != "Salad" {
		t.Errorf("List(Side Dish) = %s, %s, want Fries, Salad", sides[0].Name, sides[1].Name)
	}
}

func TestCatalog_Categories(t *testing.T) {
	c := NewWithDefaults()

	got := c.Categories()
	want := []string{
		models.CategoryBeverage,
		models.CategoryDessert,
		models.CategoryMainCourse,
		models.CategorySideDish,
	}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
