package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creative-factory/internal/core/domain"
)

// OptionRepository implements port.OptionRepository using pgxpool.
type OptionRepository struct {
	pool *pgxpool.Pool
}

// NewOptionRepository returns a new repository instance.
func NewOptionRepository(pool *pgxpool.Pool) *OptionRepository {
	return &OptionRepository{pool: pool}
}

const optionColumns = `o.id, o.dimension_id, o.name, o.description, o.keywords, o.visual_hints,
       o.templates, o.is_active, o.sort_order, o.created_at, o.updated_at, d.name`

// ListDimensions returns dimensions in sort order with all of their options.
func (r *OptionRepository) ListDimensions(ctx context.Context, activeOnly bool) ([]domain.Dimension, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, display_name, description, is_active, sort_order, created_at, updated_at
        FROM creative_dimensions
        WHERE is_active OR NOT $1
        ORDER BY sort_order, id`, activeOnly)
	if err != nil {
		return nil, err
	}
	dims, err := pgx.CollectRows(rows, scanDimension)
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 {
		return dims, nil
	}

	ids := make([]int64, len(dims))
	index := make(map[int64]int, len(dims))
	for i := range dims {
		ids[i] = dims[i].ID
		index[dims[i].ID] = i
		dims[i].Options = []domain.Option{}
	}

	rows, err = r.pool.Query(ctx, `
        SELECT `+optionColumns+`
        FROM creative_options o
        JOIN creative_dimensions d ON d.id = o.dimension_id
        WHERE o.dimension_id = ANY($1)
        ORDER BY o.sort_order, o.id`, ids)
	if err != nil {
		return nil, err
	}
	options, err := pgx.CollectRows(rows, collectOption)
	if err != nil {
		return nil, err
	}
	for _, o := range options {
		i := index[o.DimensionID]
		dims[i].Options = append(dims[i].Options, o)
	}
	return dims, nil
}

// GetDimension returns a dimension without options, or nil when absent.
func (r *OptionRepository) GetDimension(ctx context.Context, id int64) (*domain.Dimension, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id, name, display_name, description, is_active, sort_order, created_at, updated_at
        FROM creative_dimensions WHERE id = $1`, id)
	var d domain.Dimension
	err := row.Scan(&d.ID, &d.Name, &d.DisplayName, &d.Description, &d.IsActive, &d.SortOrder, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDimension applies the non-nil fields of patch.
func (r *OptionRepository) UpdateDimension(ctx context.Context, id int64, patch domain.DimensionPatch) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE creative_dimensions SET
            display_name = COALESCE($2, display_name),
            description  = COALESCE($3, description),
            is_active    = COALESCE($4, is_active),
            sort_order   = COALESCE($5, sort_order),
            updated_at   = now()
        WHERE id = $1`,
		id, patch.DisplayName, patch.Description, patch.IsActive, patch.SortOrder)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CreateOption appends an option; its sort order is the current option
// count of the dimension.
func (r *OptionRepository) CreateOption(ctx context.Context, dimensionID int64, in domain.OptionInput) (*domain.Option, error) {
	keywords, visualHints, templates, err := marshalLists(in.Keywords, in.VisualHints, in.Templates)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, `
        WITH o AS (
            INSERT INTO creative_options
                (dimension_id, name, description, keywords, visual_hints, templates, sort_order)
            SELECT $1::bigint, $2::text, $3::text, $4::jsonb, $5::jsonb, $6::jsonb, count(*)
            FROM creative_options WHERE dimension_id = $1
            RETURNING *
        )
        SELECT `+optionColumns+`
        FROM o JOIN creative_dimensions d ON d.id = o.dimension_id`,
		dimensionID, in.Name, in.Description, keywords, visualHints, templates)
	o, err := scanOption(row)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindActiveOptions returns the active options among ids whose dimension is
// active, with DimensionName set.
func (r *OptionRepository) FindActiveOptions(ctx context.Context, ids []int64) ([]domain.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
        SELECT `+optionColumns+`
        FROM creative_options o
        JOIN creative_dimensions d ON d.id = o.dimension_id
        WHERE o.id = ANY($1) AND o.is_active AND d.is_active
        ORDER BY d.sort_order, o.sort_order, o.id`, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectOption)
}

// EnsureDimension inserts dim with its options unless the name is taken.
func (r *OptionRepository) EnsureDimension(ctx context.Context, dim domain.Dimension) (created bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var id int64
	err = tx.QueryRow(ctx, `
        INSERT INTO creative_dimensions (name, display_name, description, is_active, sort_order)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (name) DO NOTHING
        RETURNING id`,
		dim.Name, dim.DisplayName, dim.Description, dim.IsActive, dim.SortOrder).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return false, nil
	}
	if err != nil {
		return false, err
	}

	batch := &pgx.Batch{}
	for _, o := range dim.Options {
		keywords, visualHints, templates, mErr := marshalLists(o.Keywords, o.VisualHints, o.Templates)
		if mErr != nil {
			err = mErr
			return false, err
		}
		batch.Queue(`
            INSERT INTO creative_options
                (dimension_id, name, description, keywords, visual_hints, templates, is_active, sort_order)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			id, o.Name, o.Description, keywords, visualHints, templates, o.IsActive, o.SortOrder)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return false, fmt.Errorf("insert options of %s: %w", dim.Name, err)
	}
	return true, nil
}

func scanDimension(row pgx.CollectableRow) (domain.Dimension, error) {
	var d domain.Dimension
	err := row.Scan(&d.ID, &d.Name, &d.DisplayName, &d.Description, &d.IsActive, &d.SortOrder, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func collectOption(row pgx.CollectableRow) (domain.Option, error) {
	return scanOption(row)
}

func scanOption(row pgx.Row) (domain.Option, error) {
	var (
		o                                   domain.Option
		keywords, visualHints, templatesRaw []byte
	)
	err := row.Scan(&o.ID, &o.DimensionID, &o.Name, &o.Description, &keywords, &visualHints,
		&templatesRaw, &o.IsActive, &o.SortOrder, &o.CreatedAt, &o.UpdatedAt, &o.DimensionName)
	if err != nil {
		return o, err
	}
	for _, f := range []struct {
		raw []byte
		dst *[]string
	}{{keywords, &o.Keywords}, {visualHints, &o.VisualHints}, {templatesRaw, &o.Templates}} {
		*f.dst = []string{}
		if len(f.raw) == 0 {
			continue
		}
		if err = json.Unmarshal(f.raw, f.dst); err != nil {
			return o, fmt.Errorf("decode option %d: %w", o.ID, err)
		}
	}
	return o, nil
}

// marshalLists encodes string lists as JSON arrays, nil as [].
func marshalLists(lists ...[]string) (a, b, c []byte, err error) {
	out := make([][]byte, 3)
	for i, l := range lists {
		if l == nil {
			l = []string{}
		}
		if out[i], err = json.Marshal(l); err != nil {
			return nil, nil, nil, err
		}
	}
	return out[0], out[1], out[2], nil
}
