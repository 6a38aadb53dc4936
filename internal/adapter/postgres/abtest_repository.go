package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creative-factory/internal/core/domain"
)

// ABTestRepository implements port.ABTestRepository using pgxpool.
type ABTestRepository struct {
	pool *pgxpool.Pool
}

// NewABTestRepository returns a new repository instance.
func NewABTestRepository(pool *pgxpool.Pool) *ABTestRepository {
	return &ABTestRepository{pool: pool}
}

const abTestColumns = `id, name, description, status, start_date, end_date, traffic_split,
       total_impressions_a, total_impressions_b, total_clicks_a, total_clicks_b,
       created_at, updated_at`

// counterColumns maps a variant and event kind to the counter it bumps.
// Only these fixed identifiers are ever interpolated into SQL.
var counterColumns = map[domain.Variant]map[domain.EventKind]string{
	domain.VariantA: {domain.EventImpression: "total_impressions_a", domain.EventClick: "total_clicks_a"},
	domain.VariantB: {domain.EventImpression: "total_impressions_b", domain.EventClick: "total_clicks_b"},
}

// CreateABTest inserts a test and its assignments in one transaction.
func (r *ABTestRepository) CreateABTest(ctx context.Context, test domain.ABTest, assignments []domain.ABTestAssignment) (_ *domain.ABTest, err error) {
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

	row := tx.QueryRow(ctx, `
        INSERT INTO ab_tests (name, description, status, start_date, end_date, traffic_split)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+abTestColumns,
		test.Name, test.Description, string(test.Status), test.StartDate, test.EndDate, test.TrafficSplit)
	saved, err := scanABTest(row)
	if err != nil {
		return nil, err
	}

	saved.Assignments = make([]domain.ABTestAssignment, 0, len(assignments))
	for _, a := range assignments {
		a.ABTestID = saved.ID
		err = tx.QueryRow(ctx, `
            INSERT INTO ab_test_creatives (ab_test_id, creative_id, variant)
            VALUES ($1, $2, $3) RETURNING id`,
			a.ABTestID, a.CreativeID, string(a.Variant)).Scan(&a.ID)
		if err != nil {
			return nil, fmt.Errorf("assign creative %d: %w", a.CreativeID, err)
		}
		saved.Assignments = append(saved.Assignments, a)
	}
	return &saved, nil
}

// ListABTests returns all tests, newest first, without assignments.
func (r *ABTestRepository) ListABTests(ctx context.Context) ([]domain.ABTest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+abTestColumns+` FROM ab_tests ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ABTest, error) {
		return scanABTest(row)
	})
}

// GetABTest returns a test with its assignments, or nil when absent.
func (r *ABTestRepository) GetABTest(ctx context.Context, id int64) (*domain.ABTest, error) {
	test, err := scanABTest(r.pool.QueryRow(ctx, `SELECT `+abTestColumns+` FROM ab_tests WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
        SELECT id, ab_test_id, creative_id, variant
        FROM ab_test_creatives WHERE ab_test_id = $1 ORDER BY variant, id`, id)
	if err != nil {
		return nil, err
	}
	test.Assignments, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ABTestAssignment, error) {
		var (
			a       domain.ABTestAssignment
			variant string
		)
		err := row.Scan(&a.ID, &a.ABTestID, &a.CreativeID, &variant)
		a.Variant = domain.Variant(variant)
		return a, err
	})
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// IncrementCounter atomically bumps one counter of a test.
func (r *ABTestRepository) IncrementCounter(ctx context.Context, id int64, variant domain.Variant, kind domain.EventKind) (bool, error) {
	column, ok := counterColumns[variant][kind]
	if !ok {
		return false, fmt.Errorf("no counter for variant %q and event %q", variant, kind)
	}
	tag, err := r.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE ab_tests SET %[1]s = %[1]s + 1, updated_at = now() WHERE id = $1`, column), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanABTest(row pgx.Row) (domain.ABTest, error) {
	var (
		t      domain.ABTest
		status string
	)
	err := row.Scan(&t.ID, &t.Name, &t.Description, &status, &t.StartDate, &t.EndDate, &t.TrafficSplit,
		&t.TotalImpressionsA, &t.TotalImpressionsB, &t.TotalClicksA, &t.TotalClicksB,
		&t.CreatedAt, &t.UpdatedAt)
	t.Status = domain.ABTestStatus(status)
	return t, err
}
