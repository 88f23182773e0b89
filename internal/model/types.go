// Package model defines the core data structures for bizdir.
package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrInvalidCategory is returned when a category name cannot be parsed.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidFilter is returned when a filter value is neither "all" nor a category.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Category classifies a business. The set is closed.
type Category string

const (
	CategoryRestaurant Category = "Restaurant"
	CategoryRetail     Category = "Retail"
	CategoryService    Category = "Service"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryRestaurant, CategoryRetail, CategoryService}
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryRestaurant, CategoryRetail, CategoryService:
		return true
	}
	return false
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidCategory, s, categoryList())
}

func categoryList() string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// Filter restricts which businesses are visible: either FilterAll or a single category.
type Filter string

// FilterAll is the sentinel filter that shows every business.
const FilterAll Filter = "all"

// FilterFor returns the filter that shows only businesses in c.
func FilterFor(c Category) Filter {
	return Filter(c)
}

// Filters returns every valid filter in chip order.
func Filters() []Filter {
	filters := []Filter{FilterAll}
	for _, c := range Categories() {
		filters = append(filters, FilterFor(c))
	}
	return filters
}

// ParseFilter parses "all" or a category name, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(FilterAll)) {
		return FilterAll, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q (must be all or one of %s)", ErrInvalidFilter, s, categoryList())
	}
	return FilterFor(c), nil
}

// Valid reports whether f is FilterAll or names a category.
func (f Filter) Valid() bool {
	return f == FilterAll || Category(f).Valid()
}

// Category returns the category f selects. ok is false for FilterAll.
func (f Filter) Category() (c Category, ok bool) {
	if f == FilterAll {
		return "", false
	}
	return Category(f), true
}

// Matches reports whether b is visible under f.
func (f Filter) Matches(b *Business) bool {
	return f == FilterAll || Category(f) == b.Category
}

// Label returns the chip label for f.
func (f Filter) Label() string {
	if f == FilterAll {
		return "All Categories"
	}
	return string(f)
}

// Business is one directory entry.
type Business struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    Category `yaml:"category"`
	Location    string   `yaml:"location"`
	Description string   `yaml:"description"`
	Phone       *string  `yaml:"phone,omitempty"`
	Website     *string  `yaml:"website,omitempty"`
}

// BusinessInput is the payload for creating a business. The store assigns the ID.
type BusinessInput struct {
	Name        string   `yaml:"name" validate:"notblank"`
	Category    Category `yaml:"category" validate:"category"`
	Location    string   `yaml:"location" validate:"notblank"`
	Description string   `yaml:"description" validate:"notblank"`
	Phone       *string  `yaml:"phone,omitempty"`
	Website     *string  `yaml:"website,omitempty"`
}

// Input returns b without its ID.
func (b *Business) Input() BusinessInput {
	return BusinessInput{
		Name:        b.Name,
		Category:    b.Category,
		Location:    b.Location,
		Description: b.Description,
		Phone:       b.Phone,
		Website:     b.Website,
	}
}

// mapSearchURL is the map-search endpoint a location is looked up on.
const mapSearchURL = "https://www.google.com/maps/search/?api=1&query="

// componentUnescaper undoes QueryEscape for the characters a URI component
// may carry literally, and spells spaces as %20.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// MapURL returns a map-search URL for the business location.
// The location is encoded as a URI component: spaces become %20 and
// !'()* are left as is.
func (b *Business) MapURL() string {
	return mapSearchURL + componentUnescaper.Replace(url.QueryEscape(b.Location))
}

// PhoneText returns the phone number or "" when absent.
func (b *Business) PhoneText() string {
	return deref(b.Phone)
}

// WebsiteText returns the website or "" when absent.
func (b *Business) WebsiteText() string {
	return deref(b.Website)
}

// OptionalString returns nil when s is blank after trimming,
// otherwise a pointer to the trimmed text.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeOptional applies OptionalString to a possibly-nil value.
func NormalizeOptional(p *string) *string {
	if p == nil {
		return nil
	}
	return OptionalString(*p)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
