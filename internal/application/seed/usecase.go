// internal/application/seed/usecase.go
package seed

import (
	"context"
	"fmt"
	"log"

	catdom "simonik/internal/domain/category"
	inddom "simonik/internal/domain/indicator"
	setdom "simonik/internal/domain/settings"
)

// ------------------------------------------------------------
// Usecase
// ------------------------------------------------------------
// Seeds the reference data: categories, indicators, app settings.
// Each step is append-only (settings excepted, which is a full overwrite);
// nothing here deduplicates, so re-running the seeder duplicates the
// category and indicator documents.
type Usecase struct {
	categories catdom.Repository
	indicators inddom.Repository
	settings   setdom.Repository
}

func NewUsecase(
	categories catdom.Repository,
	indicators inddom.Repository,
	settings setdom.Repository,
) *Usecase {
	return &Usecase{
		categories: categories,
		indicators: indicators,
		settings:   settings,
	}
}

// Run executes the full seeding sequence in order. Categories must be
// written (and read back) before indicators, since indicator rows reference
// category IDs positionally.
func (u *Usecase) Run(ctx context.Context) error {
	if err := u.CreateIndicatorCategories(ctx); err != nil {
		return err
	}
	if err := u.CreateIndicators(ctx); err != nil {
		return err
	}
	return u.CreateAppSettings(ctx)
}

// CreateIndicatorCategories inserts the five catalog categories.
func (u *Usecase) CreateIndicatorCategories(ctx context.Context) error {
	fmt.Println("\n📂 Creating Indicator Categories...")

	for _, c := range catdom.SeedCatalog {
		created, err := u.categories.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("seed: create category %q: %w", c.Name, err)
		}
		fmt.Printf("  ✅ Created category: %s\n", created.Name)
	}

	fmt.Println("✅ Indicator categories created successfully")
	return nil
}

// CreateIndicators inserts the eight catalog indicators, wiring category
// references from a read-back of the categories collection. Missing or
// partial categories degrade to nil references (warning, not failure).
func (u *Usecase) CreateIndicators(ctx context.Context) error {
	fmt.Println("\n📊 Creating Sample Indicators...")

	categoryIDs, err := u.categories.ListIDs(ctx, len(catdom.SeedCatalog))
	if err != nil {
		return fmt.Errorf("seed: read back categories: %w", err)
	}
	if len(categoryIDs) == 0 {
		log.Printf("[seed] WARN: no categories found, creating indicators without category reference")
	}

	for _, ind := range inddom.SeedRows(categoryIDs) {
		created, err := u.indicators.Create(ctx, ind)
		if err != nil {
			return fmt.Errorf("seed: create indicator %q: %w", ind.Name, err)
		}
		fmt.Printf("  ✅ Created indicator (%s): %s\n", created.Type, created.Name)
	}

	fmt.Println("✅ Sample indicators created successfully")
	return nil
}

// CreateAppSettings overwrites the settings singleton with the defaults.
func (u *Usecase) CreateAppSettings(ctx context.Context) error {
	fmt.Println("\n⚙️ Creating App Settings...")

	if err := u.settings.Save(ctx, setdom.Defaults()); err != nil {
		return fmt.Errorf("seed: save app settings: %w", err)
	}

	fmt.Println("✅ App settings created successfully")
	return nil
}
