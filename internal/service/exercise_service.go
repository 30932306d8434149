package service

import (
	"context"
	"fmt"
	"strings"

	"waltgoat/walker-app/internal/catalog"
	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"

	log "github.com/sirupsen/logrus"
)

// Catalog sources accepted by LoadCatalog.
const (
	CatalogSourceBuiltin = "builtin"
	CatalogSourceStore   = "store"
)

// ExerciseService is the read side of the exercise catalog.
type ExerciseService interface {
	ListExercises(ctx context.Context, category string) ([]domain.ExerciseDefinition, error)
	GetExerciseByID(ctx context.Context, exerciseID string) (*domain.ExerciseDefinition, error)
	Categories(ctx context.Context) []domain.Category
	Bands(ctx context.Context) []domain.BandInfo
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	catalog *catalog.Catalog
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(c *catalog.Catalog) ExerciseService {
	return &exerciseService{catalog: c}
}

// ListExercises returns the whole catalog, or one category of it when
// category is not empty.
func (s *exerciseService) ListExercises(_ context.Context, category string) ([]domain.ExerciseDefinition, error) {
	if strings.TrimSpace(category) == "" {
		return s.catalog.All(), nil
	}
	cat, ok := domain.ParseCategory(category)
	if !ok {
		return nil, validationError("unknown category %q", category)
	}
	return s.catalog.ByCategory(cat), nil
}

func (s *exerciseService) GetExerciseByID(_ context.Context, exerciseID string) (*domain.ExerciseDefinition, error) {
	ex, ok := s.catalog.ByID(exerciseID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrExerciseNotFound, exerciseID)
	}
	return &ex, nil
}

func (s *exerciseService) Categories(_ context.Context) []domain.Category {
	return s.catalog.Categories()
}

func (s *exerciseService) Bands(_ context.Context) []domain.BandInfo {
	return s.catalog.Bands()
}

// LoadCatalog builds the catalog once at startup. The store source reads the
// exercises collection, which must have been seeded beforehand.
func LoadCatalog(ctx context.Context, source string, repo repository.ExerciseRepository) (*catalog.Catalog, error) {
	switch source {
	case "", CatalogSourceBuiltin:
		return catalog.New(catalog.Builtin())
	case CatalogSourceStore:
		if repo == nil {
			return nil, fmt.Errorf("catalog source %q needs an exercise repository", source)
		}
		defs, err := repo.ListAll(ctx)
		if err != nil {
			return nil, storeError(err, nil)
		}
		log.Infof("loaded %d exercises from store", len(defs))
		return catalog.New(defs)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}
