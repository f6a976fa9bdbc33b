// Package catalog provides the storefront seed: the initial product
// catalog, landing page copy, demo orders and dashboard figures.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
)

var (
	ErrNoSeedFiles      = errors.New("no seed files provided")
	ErrDuplicateProduct = errors.New("duplicate product id in seed")
	ErrInvalidProduct   = errors.New("seed product requires id, name and a price between 1 and 100,000,000")
	ErrInvalidOrder     = errors.New("seed order has an unknown status")
)

// Seed is everything a new session starts from
type Seed struct {
	HeroImage string                 `yaml:"heroImage"`
	Footer    string                 `yaml:"footer"`
	Products  []models.Product       `yaml:"products"`
	Features  []models.Feature       `yaml:"features"`
	Reviews   []models.Review        `yaml:"reviews"`
	Orders    []models.Order         `yaml:"orders"`
	Dashboard *models.DashboardStats `yaml:"dashboard"`
}

// fileLoadResult holds the result of loading a single seed file
type fileLoadResult struct {
	index int
	seed  *Seed
	err   error
}

// LoadFromFiles reads seed files concurrently and merges them over the
// defaults in the order given. Products from all files are concatenated
// and, when any file lists products, replace the default catalog. For the
// remaining sections the last file that sets them wins.
func LoadFromFiles(ctx context.Context, paths []string) (*Seed, error) {
	if len(paths) == 0 {
		return nil, ErrNoSeedFiles
	}

	resultChan := make(chan fileLoadResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(index int, filePath string) {
			defer wg.Done()

			seed, err := loadFromFile(ctx, filePath)
			resultChan <- fileLoadResult{
				index: index,
				seed:  seed,
				err:   err,
			}
		}(i, path)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make([]fileLoadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load seed file %d (%s): %w", i+1, paths[i], result.err)
		}
	}

	merged := Default()
	var products []models.Product
	for _, result := range results {
		products = append(products, result.seed.Products...)
		merged.overlay(result.seed)
	}
	if len(products) > 0 {
		merged.Products = products
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadFromFile(ctx context.Context, path string) (*Seed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	return Parse(r)
}

// Parse decodes a single YAML seed document. An empty document yields an
// empty seed.
func Parse(r io.Reader) (*Seed, error) {
	var seed Seed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding seed: %w", err)
	}
	return &seed, nil
}

// overlay copies every non-product section that other sets
func (s *Seed) overlay(other *Seed) {
	if other.HeroImage != "" {
		s.HeroImage = other.HeroImage
	}
	if other.Footer != "" {
		s.Footer = other.Footer
	}
	if len(other.Features) > 0 {
		s.Features = other.Features
	}
	if len(other.Reviews) > 0 {
		s.Reviews = other.Reviews
	}
	if len(other.Orders) > 0 {
		s.Orders = other.Orders
	}
	if other.Dashboard != nil {
		s.Dashboard = other.Dashboard
	}
}

// Validate checks product identity and required fields and order statuses
func (s *Seed) Validate() error {
	seen := make(map[string]bool, len(s.Products))
	for _, p := range s.Products {
		if p.ID == "" || strings.TrimSpace(p.Name) == "" || p.Price <= 0 || p.Price > MaxProductPrice {
			return fmt.Errorf("%w: %q", ErrInvalidProduct, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateProduct, p.ID)
		}
		seen[p.ID] = true
	}

	for _, o := range s.Orders {
		if !o.Status.Valid() {
			return fmt.Errorf("%w: %s has %q", ErrInvalidOrder, o.ID, o.Status)
		}
	}
	return nil
}

// Content returns the landing page copy held by the seed
func (s *Seed) Content() models.Content {
	return models.Content{
		HeroImage: s.HeroImage,
		Features:  append([]models.Feature(nil), s.Features...),
		Reviews:   append([]models.Review(nil), s.Reviews...),
		Footer:    s.Footer,
	}
}

// GetStats returns counts of the loaded sections
func (s *Seed) GetStats() map[string]int {
	return map[string]int{
		"products": len(s.Products),
		"features": len(s.Features),
		"reviews":  len(s.Reviews),
		"orders":   len(s.Orders),
	}
}
