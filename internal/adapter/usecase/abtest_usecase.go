package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"creative-factory/internal/core/domain"
	"creative-factory/internal/core/port"
)

const defaultTrafficSplit = 0.5

// ABTestUseCase manages experiments between two creative groups.
type ABTestUseCase struct {
	repo   port.ABTestRepository
	logger *slog.Logger
}

// NewABTestUseCase creates the use case over the given repository. The
// logger is scoped to the abtest component.
func NewABTestUseCase(repo port.ABTestRepository, logger *slog.Logger) *ABTestUseCase {
	return &ABTestUseCase{repo: repo, logger: logger.With(slog.String("component", "abtest"))}
}

// CreateABTest validates the input and stores a draft experiment.
func (u *ABTestUseCase) CreateABTest(ctx context.Context, in domain.ABTestInput) (*domain.ABTest, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", port.ErrInvalidABTest)
	}
	split := in.TrafficSplit
	if split == 0 {
		split = defaultTrafficSplit
	}
	if split <= 0 || split >= 1 {
		return nil, fmt.Errorf("%w: traffic_split must be between 0 and 1", port.ErrInvalidABTest)
	}
	if len(in.VariantA) == 0 || len(in.VariantB) == 0 {
		return nil, fmt.Errorf("%w: both variants need creatives", port.ErrInvalidABTest)
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return nil, fmt.Errorf("%w: end_date precedes start_date", port.ErrInvalidABTest)
	}

	var assignments []domain.ABTestAssignment
	inA := make(map[int64]struct{}, len(in.VariantA))
	for _, id := range in.VariantA {
		if _, dup := inA[id]; dup {
			continue
		}
		inA[id] = struct{}{}
		assignments = append(assignments, domain.ABTestAssignment{CreativeID: id, Variant: domain.VariantA})
	}
	inB := make(map[int64]struct{}, len(in.VariantB))
	for _, id := range in.VariantB {
		if _, both := inA[id]; both {
			return nil, fmt.Errorf("%w: creative %d is in both variants", port.ErrInvalidABTest, id)
		}
		if _, dup := inB[id]; dup {
			continue
		}
		inB[id] = struct{}{}
		assignments = append(assignments, domain.ABTestAssignment{CreativeID: id, Variant: domain.VariantB})
	}

	test, err := u.repo.CreateABTest(ctx, domain.ABTest{
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Status:       domain.ABTestDraft,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		TrafficSplit: split,
	}, assignments)
	if err != nil {
		return nil, fmt.Errorf("create ab test: %w", err)
	}
	u.logger.Info("ab test created", slog.Int64("id", test.ID), slog.String("name", test.Name))
	return test, nil
}

// ABTests lists all experiments without their assignments.
func (u *ABTestUseCase) ABTests(ctx context.Context) ([]domain.ABTest, error) {
	return u.repo.ListABTests(ctx)
}

// ABTest returns one experiment with its assignments, or
// port.ErrABTestNotFound.
func (u *ABTestUseCase) ABTest(ctx context.Context, id int64) (*domain.ABTest, error) {
	test, err := u.repo.GetABTest(ctx, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, port.ErrABTestNotFound
	}
	return test, nil
}

// RecordEvent counts one impression or click for a variant.
func (u *ABTestUseCase) RecordEvent(ctx context.Context, id int64, variant domain.Variant, kind domain.EventKind) error {
	if !variant.Valid() {
		return port.ErrInvalidVariant
	}
	if !kind.Valid() {
		return port.ErrInvalidEventKind
	}
	found, err := u.repo.IncrementCounter(ctx, id, variant, kind)
	if err != nil {
		return err
	}
	if !found {
		return port.ErrABTestNotFound
	}
	return nil
}
