// Package menuseed supplies the list of items written to an empty menu on
// first run. The list comes from a built-in default, a local CSV file, or a
// CSV object in S3.
package menuseed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"cafe-till/internal/model"

	"github.com/shopspring/decimal"
)

// Loader defines the interface for loading a menu seed list.
type Loader interface {
	// Load reads the seed list at path and returns items in file order.
	Load(ctx context.Context, path string) ([]model.MenuItem, error)
}

// DefaultItems returns the built-in first-run menu.
func DefaultItems() []model.MenuItem {
	return []model.MenuItem{
		{Name: "Tea", Price: decimal.NewFromInt(10)},
		{Name: "Coffee", Price: decimal.NewFromInt(20)},
		{Name: "Sandwich", Price: decimal.NewFromInt(50)},
		{Name: "Cake", Price: decimal.NewFromInt(100)},
		{Name: "Burger", Price: decimal.NewFromInt(50)},
		{Name: "Pizza", Price: decimal.NewFromInt(150)},
		{Name: "Fries", Price: decimal.NewFromInt(80)},
		{Name: "Pepsi", Price: decimal.NewFromInt(80)},
	}
}

// Parse reads "name,price" rows. Lines starting with # are comments, an
// optional "name,price" header is skipped, and a repeated name keeps its
// first price.
func Parse(r io.Reader) ([]model.MenuItem, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var items []model.MenuItem
	seen := make(map[string]struct{})
	first := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read menu seed: %w", err)
		}

		name := strings.TrimSpace(record[0])
		rawPrice := strings.TrimSpace(record[1])

		if first {
			first = false
			if strings.EqualFold(name, "name") && strings.EqualFold(rawPrice, "price") {
				continue
			}
		}

		if name == "" {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("menu seed line %d: item name is empty", line)
		}

		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			line, _ := reader.FieldPos(1)
			return nil, fmt.Errorf("menu seed line %d: invalid price %q: %w", line, rawPrice, err)
		}
		if price.IsNegative() {
			line, _ := reader.FieldPos(1)
			return nil, fmt.Errorf("menu seed line %d: price for %s is negative", line, name)
		}

		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		items = append(items, model.MenuItem{Name: name, Price: price})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("menu seed contains no items")
	}

	return items, nil
}
