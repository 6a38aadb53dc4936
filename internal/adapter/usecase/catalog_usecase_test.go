package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creative-factory/internal/core/domain"
	"creative-factory/internal/core/port"
	"creative-factory/internal/core/port/mocks"
)

func newTestCatalog(t *testing.T) (*CatalogUseCase, *mocks.MockOptionRepository) {
	t.Helper()
	repo := mocks.NewMockOptionRepository(t)
	return NewCatalogUseCase(repo, slog.New(slog.DiscardHandler)), repo
}

func TestDimensions_ActiveOnly(t *testing.T) {
	u, repo := newTestCatalog(t)
	dims := []domain.Dimension{{ID: 1, Name: "visual_hook", IsActive: true}}

	repo.EXPECT().ListDimensions(mock.Anything, true).Return(dims, nil)

	got, err := u.Dimensions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dims, got)
}

func TestAddOption(t *testing.T) {
	u, repo := newTestCatalog(t)

	repo.EXPECT().GetDimension(mock.Anything, int64(3)).Return(&domain.Dimension{ID: 3, Name: "visual_hook"}, nil)
	repo.EXPECT().CreateOption(mock.Anything, int64(3), domain.OptionInput{
		Name:        "慢动作",
		Keywords:    []string{"慢镜头", "定格"},
		VisualHints: []string{},
		Templates:   []string{},
	}).Return(&domain.Option{ID: 31, DimensionID: 3, Name: "慢动作", SortOrder: 5}, nil)

	opt, err := u.AddOption(context.Background(), 3, domain.OptionInput{
		Name:     " 慢动作 ",
		Keywords: []string{"慢镜头", "定格", "慢镜头"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), opt.ID)
	assert.Equal(t, 5, opt.SortOrder)
}

func TestAddOption_Errors(t *testing.T) {
	u, repo := newTestCatalog(t)

	_, err := u.AddOption(context.Background(), 3, domain.OptionInput{Name: "  "})
	assert.ErrorIs(t, err, port.ErrOptionNameRequired)

	repo.EXPECT().GetDimension(mock.Anything, int64(99)).Return(nil, nil)
	_, err = u.AddOption(context.Background(), 99, domain.OptionInput{Name: "x"})
	assert.ErrorIs(t, err, port.ErrDimensionNotFound)
}

func TestUpdateDimension(t *testing.T) {
	u, repo := newTestCatalog(t)
	inactive := false
	patch := domain.DimensionPatch{IsActive: &inactive}

	repo.EXPECT().UpdateDimension(mock.Anything, int64(2), patch).Return(true, nil)
	repo.EXPECT().GetDimension(mock.Anything, int64(2)).Return(&domain.Dimension{ID: 2, IsActive: false}, nil)

	dim, err := u.UpdateDimension(context.Background(), 2, patch)
	require.NoError(t, err)
	assert.False(t, dim.IsActive)
}

func TestUpdateDimension_NotFound(t *testing.T) {
	u, repo := newTestCatalog(t)
	name := "视觉"

	repo.EXPECT().UpdateDimension(mock.Anything, int64(9), mock.Anything).Return(false, nil)

	_, err := u.UpdateDimension(context.Background(), 9, domain.DimensionPatch{DisplayName: &name})
	assert.ErrorIs(t, err, port.ErrDimensionNotFound)
}

func TestBootstrap_Idempotent(t *testing.T) {
	u, repo := newTestCatalog(t)
	defaults := domain.DefaultDimensions()
	require.Len(t, defaults, 6)

	existing := map[string]bool{}
	repo.EXPECT().EnsureDimension(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, dim domain.Dimension) (bool, error) {
			if existing[dim.Name] {
				return false, nil
			}
			existing[dim.Name] = true
			return true, nil
		})

	created, err := u.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, created)

	created, err = u.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestBootstrap_StopsOnError(t *testing.T) {
	u, repo := newTestCatalog(t)
	dbErr := errors.New("duplicate key")

	repo.EXPECT().EnsureDimension(mock.Anything, mock.Anything).Return(true, nil).Once()
	repo.EXPECT().EnsureDimension(mock.Anything, mock.Anything).Return(false, dbErr).Once()

	created, err := u.Bootstrap(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 1, created)
}

func TestDefaultDimensions_FiveOptionsEach(t *testing.T) {
	for _, d := range domain.DefaultDimensions() {
		assert.Len(t, d.Options, 5, d.Name)
		for _, o := range d.Options {
			assert.NotEmpty(t, o.Templates, o.Name)
		}
	}
}
