// Package seed ships the built-in catalogs of the supported institutes.
package seed

import (
	"embed"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

//go:embed catalogs/*.yaml
var catalogs embed.FS

// Brands lists the institutes with a built-in catalog.
func Brands() []models.Brand {
	return []models.Brand{models.BrandDeepjyoti, models.BrandAnupama, models.BrandChanakya}
}

// Raw returns the embedded YAML document of brand.
func Raw(brand models.Brand) ([]byte, error) {
	if !brand.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownBrand, brand)
	}
	data, err := catalogs.ReadFile("catalogs/" + string(brand) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in catalog %q: %w", brand, err)
	}
	return data, nil
}

// Catalog parses the built-in catalog of brand.
func Catalog(brand models.Brand) (*catalog.Catalog, error) {
	data, err := Raw(brand)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog %q: %w", brand, err)
	}
	return cat, nil
}

// Load resolves the catalog to serve. A non-empty path wins over the
// built-in catalog of brand.
func Load(brand models.Brand, path string, lgr zerolog.Logger) (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)

	if path != "" {
		lgr.Info().Str("path", path).Msg("Loading catalog from file...")
		cat, err = catalog.LoadFile(path)
	} else {
		lgr.Info().Str("brand", string(brand)).Msg("Loading built-in catalog...")
		cat, err = Catalog(brand)
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load catalog")
		return nil, err
	}

	lgr.Info().
		Str("institute", cat.Institute.Name).
		Int("courses", cat.Registry.Len()).
		Int("toppers", len(cat.Toppers)).
		Int("posts", len(cat.Posts)).
		Msg("Catalog loaded")
	return cat, nil
}
