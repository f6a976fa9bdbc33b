package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
)

const summerSeed = `
products:
  - id: summer-berry
    name: 여름 한정 딸기
    tagline: 한여름에도 달콤하게
    price: 18000
    unit: 1kg
    image: https://example.com/summer.jpg
    features: [냉장 배송]
    badge: 한정판
`

const winterSeed = `
products:
  - id: winter-berry
    name: 겨울 설향
    price: 21000
    unit: 2kg
reviews:
  - id: "9"
    author: 최유나
    rating: 3
    text: 보통이에요.
dashboard:
  revenueGrowth: "-1.0%"
  orderCount: 2
`

// writeSeedFile writes content to dir/name, gzip-compressing names ending in .gz
func writeSeedFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	if strings.HasSuffix(name, ".gz") {
		zw := gzip.NewWriter(f)
		_, err = zw.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		return path
	}

	_, err = f.WriteString(content)
	require.NoError(t, err)
	return path
}

func TestDefault_IsValid(t *testing.T) {
	seed := Default()

	require.NoError(t, seed.Validate())
	assert.Len(t, seed.Products, 2)
	assert.Len(t, seed.Features, 3)
	assert.Len(t, seed.Reviews, 3)
	assert.Len(t, seed.Orders, 3)
	assert.Equal(t, "couple-pack", seed.Products[0].ID)
	assert.True(t, seed.Products[1].IsPremium)
}

func TestDefault_ReturnsFreshSlices(t *testing.T) {
	a := Default()
	a.Products[0].Name = "changed"

	b := Default()
	assert.Equal(t, "커플 팩", b.Products[0].Name)
}

func TestLoadFromFiles(t *testing.T) {
	t.Run("merges files in order", func(t *testing.T) {
		dir := t.TempDir()
		first := writeSeedFile(t, dir, "summer.yaml", summerSeed)
		second := writeSeedFile(t, dir, "winter.yaml.gz", winterSeed)

		seed, err := LoadFromFiles(context.Background(), []string{first, second})
		require.NoError(t, err)

		require.Len(t, seed.Products, 2)
		assert.Equal(t, "summer-berry", seed.Products[0].ID)
		assert.Equal(t, "winter-berry", seed.Products[1].ID)
		assert.Equal(t, int64(18000), seed.Products[0].Price)

		require.Len(t, seed.Reviews, 1)
		assert.Equal(t, "최유나", seed.Reviews[0].Author)

		// untouched sections keep their defaults
		assert.Len(t, seed.Features, 3)
		assert.Len(t, seed.Orders, 3)
		assert.Equal(t, 2, seed.Dashboard.OrderCount)
	})

	t.Run("file without products keeps default catalog", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSeedFile(t, dir, "copy.yaml", "footer: 새로운 문구\n")

		seed, err := LoadFromFiles(context.Background(), []string{path})
		require.NoError(t, err)

		assert.Len(t, seed.Products, 2)
		assert.Equal(t, "새로운 문구", seed.Footer)
	})

	t.Run("empty file paths", func(t *testing.T) {
		_, err := LoadFromFiles(context.Background(), []string{})
		assert.ErrorIs(t, err, ErrNoSeedFiles)
	})

	t.Run("non-existent file", func(t *testing.T) {
		_, err := LoadFromFiles(context.Background(), []string{"/non/existent/seed.yaml"})
		assert.Error(t, err)
	})

	t.Run("duplicate product across files", func(t *testing.T) {
		dir := t.TempDir()
		first := writeSeedFile(t, dir, "a.yaml", summerSeed)
		second := writeSeedFile(t, dir, "b.yaml", summerSeed)

		_, err := LoadFromFiles(context.Background(), []string{first, second})
		assert.ErrorIs(t, err, ErrDuplicateProduct)
	})

	t.Run("product without price", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSeedFile(t, dir, "bad.yaml", "products:\n  - id: x\n    name: 무료\n")

		_, err := LoadFromFiles(context.Background(), []string{path})
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("product priced above the maximum", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSeedFile(t, dir, "pricey.yaml", "products:\n  - id: x\n    name: 황금 딸기\n    price: 9000000000000000000\n")

		_, err := LoadFromFiles(context.Background(), []string{path})
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("order with unknown status", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSeedFile(t, dir, "orders.yaml", "orders:\n  - id: \"#1\"\n    status: 취소\n")

		_, err := LoadFromFiles(context.Background(), []string{path})
		assert.ErrorIs(t, err, ErrInvalidOrder)
	})

	t.Run("cancelled context", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSeedFile(t, dir, "summer.yaml", summerSeed)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := LoadFromFiles(ctx, []string{path})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParse_EmptyDocument(t *testing.T) {
	seed, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, seed.Products)
}

func TestSeed_ContentAndStats(t *testing.T) {
	seed := Default()

	content := seed.Content()
	assert.Equal(t, seed.HeroImage, content.HeroImage)
	assert.Len(t, content.Features, 3)

	content.Reviews[0].Author = "changed"
	assert.NotEqual(t, "changed", seed.Reviews[0].Author)

	stats := seed.GetStats()
	assert.Equal(t, map[string]int{"products": 2, "features": 3, "reviews": 3, "orders": 3}, stats)
	assert.Equal(t, models.OrderStatusPaid, seed.Orders[0].Status)
}
