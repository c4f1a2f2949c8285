// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Categories, features, the Source contract and sentinel errors.

package poi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// Sentinel errors.
var (
	// ErrInvalidGeometry marks a feature whose shape yields no representative point.
	// Collect skips such features.
	ErrInvalidGeometry = errors.New("poi: invalid geometry")

	// ErrNoPOIsFound indicates that no category produced a usable point.
	ErrNoPOIsFound = errors.New("poi: no points of interest found")

	// ErrBadCategory indicates a category string that is not "key=value".
	ErrBadCategory = errors.New("poi: malformed category")
)

// Category is a single tag filter such as amenity=library.
type Category struct {
	Key   string `yaml:"key" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

func (c Category) String() string { return c.Key + "=" + c.Value }

// ParseCategory parses "key=value".
func ParseCategory(s string) (Category, error) {
	k, v, ok := strings.Cut(strings.TrimSpace(s), "=")
	k, v = strings.TrimSpace(k), strings.TrimSpace(v)
	if !ok || k == "" || v == "" {
		return Category{}, fmt.Errorf("%w: %q", ErrBadCategory, s)
	}

	return Category{Key: k, Value: v}, nil
}

// Matches reports whether tags carry the category's key with its value.
func (c Category) Matches(tags map[string]string) bool {
	return tags[c.Key] == c.Value
}

// Feature is one POI record as delivered by a Source.
type Feature struct {
	// ID identifies the record within its source ("node/10", "way/200", ...).
	ID string

	// Name is the name tag, if any.
	Name string

	// Tags are the raw source tags.
	Tags map[string]string

	// Geometry yields the point used for snapping to the road graph.
	Geometry Geometry
}

// Source delivers the features of a category.
type Source interface {
	Features(ctx context.Context, c Category) ([]Feature, error)
}

// Collection is the outcome of Collect: the first category with usable points.
type Collection struct {
	// Category is the category that produced the points.
	Category Category

	// Features are the usable features, aligned with Points.
	Features []Feature

	// Points holds one representative point per usable feature.
	Points []orb.Point

	// Skipped counts features of Category dropped for invalid geometry.
	Skipped int
}
