package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creative-factory/internal/core/domain"
)

// CreativeRepository implements port.CreativeRepository using pgxpool.
// It has no statement that writes selected_dimensions after insert.
type CreativeRepository struct {
	pool *pgxpool.Pool
}

// NewCreativeRepository returns a new repository instance.
func NewCreativeRepository(pool *pgxpool.Pool) *CreativeRepository {
	return &CreativeRepository{pool: pool}
}

const creativeColumns = `id, title, content, selected_dimensions, status, is_selected,
       creativity_score, appeal_score, relevance_score, total_score,
       duplicate_group_id, is_representative, generation_params, created_at, updated_at`

// CreateCreatives inserts creatives in a single transaction.
func (r *CreativeRepository) CreateCreatives(ctx context.Context, creatives []domain.Creative) (out []domain.Creative, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	out = make([]domain.Creative, 0, len(creatives))
	for _, c := range creatives {
		selection := c.SelectedDimensions
		if selection == nil {
			selection = domain.Selection{}
		}
		selectionJSON, mErr := json.Marshal(selection)
		if mErr != nil {
			err = mErr
			return nil, err
		}
		paramsJSON, mErr := json.Marshal(c.GenerationParams)
		if mErr != nil {
			err = mErr
			return nil, err
		}
		row := tx.QueryRow(ctx, `
            INSERT INTO creatives (title, content, selected_dimensions, status, is_selected, generation_params)
            VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING `+creativeColumns,
			c.Title, c.Content, selectionJSON, string(c.Status), c.IsSelected, paramsJSON)
		var saved domain.Creative
		if saved, err = scanCreative(row); err != nil {
			return nil, fmt.Errorf("insert creative %q: %w", c.Title, err)
		}
		out = append(out, saved)
	}
	return out, nil
}

// ListCreatives returns creatives matching filter, newest first.
func (r *CreativeRepository) ListCreatives(ctx context.Context, filter domain.CreativeFilter) ([]domain.Creative, error) {
	var (
		where []string
		args  []any
	)
	if filter.Selected != nil {
		args = append(args, *filter.Selected)
		where = append(where, fmt.Sprintf("is_selected = $%d", len(args)))
	}
	if filter.Representative != nil {
		args = append(args, *filter.Representative)
		where = append(where, fmt.Sprintf("is_representative = $%d", len(args)))
	}
	if filter.Scored {
		where = append(where, "total_score > 0")
	}
	query := `SELECT ` + creativeColumns + ` FROM creatives`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Creative, error) {
		return scanCreative(row)
	})
}

func scanCreative(row pgx.Row) (domain.Creative, error) {
	var (
		c                    domain.Creative
		status               string
		selection, paramsRaw []byte
	)
	err := row.Scan(&c.ID, &c.Title, &c.Content, &selection, &status, &c.IsSelected,
		&c.CreativityScore, &c.AppealScore, &c.RelevanceScore, &c.TotalScore,
		&c.DuplicateGroupID, &c.IsRepresentative, &paramsRaw, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	c.Status = domain.CreativeStatus(status)
	if err = json.Unmarshal(selection, &c.SelectedDimensions); err != nil {
		return c, fmt.Errorf("decode selected_dimensions of creative %d: %w", c.ID, err)
	}
	if err = json.Unmarshal(paramsRaw, &c.GenerationParams); err != nil {
		return c, fmt.Errorf("decode generation_params of creative %d: %w", c.ID, err)
	}
	return c, nil
}
