package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"creative-factory/internal/core/domain"
	"creative-factory/internal/core/port"
)

// CatalogUseCase manages the dimension and option catalog.
type CatalogUseCase struct {
	repo   port.OptionRepository
	logger *slog.Logger
}

// NewCatalogUseCase creates the use case over the option repository. The
// logger is scoped to the catalog component.
func NewCatalogUseCase(repo port.OptionRepository, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, logger: logger.With(slog.String("component", "catalog"))}
}

// Dimensions lists the active dimensions with all their options.
func (u *CatalogUseCase) Dimensions(ctx context.Context) ([]domain.Dimension, error) {
	return u.repo.ListDimensions(ctx, true)
}

// AddOption appends an option to an existing dimension.
func (u *CatalogUseCase) AddOption(ctx context.Context, dimensionID int64, in domain.OptionInput) (*domain.Option, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, port.ErrOptionNameRequired
	}
	dim, err := u.repo.GetDimension(ctx, dimensionID)
	if err != nil {
		return nil, err
	}
	if dim == nil {
		return nil, port.ErrDimensionNotFound
	}
	in.Keywords = dedup(in.Keywords)
	in.VisualHints = dedup(in.VisualHints)
	if in.Templates == nil {
		in.Templates = []string{}
	}
	opt, err := u.repo.CreateOption(ctx, dimensionID, in)
	if err != nil {
		return nil, fmt.Errorf("create option: %w", err)
	}
	u.logger.Info("option added", slog.String("dimension", dim.Name), slog.String("option", opt.Name))
	return opt, nil
}

// UpdateDimension applies patch and returns the updated dimension.
func (u *CatalogUseCase) UpdateDimension(ctx context.Context, id int64, patch domain.DimensionPatch) (*domain.Dimension, error) {
	if !patch.Empty() {
		found, err := u.repo.UpdateDimension(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, port.ErrDimensionNotFound
		}
	}
	dim, err := u.repo.GetDimension(ctx, id)
	if err != nil {
		return nil, err
	}
	if dim == nil {
		return nil, port.ErrDimensionNotFound
	}
	return dim, nil
}

// Bootstrap installs the default dimensions that are missing. Running it
// again creates nothing.
func (u *CatalogUseCase) Bootstrap(ctx context.Context) (int, error) {
	created := 0
	for _, dim := range domain.DefaultDimensions() {
		ok, err := u.repo.EnsureDimension(ctx, dim)
		if err != nil {
			return created, fmt.Errorf("ensure dimension %q: %w", dim.Name, err)
		}
		if ok {
			created++
		}
	}
	if created > 0 {
		u.logger.Info("catalog bootstrapped", slog.Int("dimensions", created))
	}
	return created, nil
}
