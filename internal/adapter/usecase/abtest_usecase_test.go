package usecase

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creative-factory/internal/core/domain"
	"creative-factory/internal/core/port"
	"creative-factory/internal/core/port/mocks"
)

func newTestABTests(t *testing.T) (*ABTestUseCase, *mocks.MockABTestRepository) {
	t.Helper()
	repo := mocks.NewMockABTestRepository(t)
	return NewABTestUseCase(repo, slog.New(slog.DiscardHandler)), repo
}

func TestCreateABTest(t *testing.T) {
	u, repo := newTestABTests(t)

	repo.EXPECT().CreateABTest(mock.Anything,
		mock.MatchedBy(func(test domain.ABTest) bool {
			return test.Name == "春节素材" && test.TrafficSplit == 0.5 && test.Status == domain.ABTestDraft
		}),
		[]domain.ABTestAssignment{
			{CreativeID: 1, Variant: domain.VariantA},
			{CreativeID: 2, Variant: domain.VariantA},
			{CreativeID: 3, Variant: domain.VariantB},
		}).
		RunAndReturn(func(_ context.Context, test domain.ABTest, a []domain.ABTestAssignment) (*domain.ABTest, error) {
			test.ID = 7
			test.Assignments = a
			return &test, nil
		})

	test, err := u.CreateABTest(context.Background(), domain.ABTestInput{
		Name:     " 春节素材 ",
		VariantA: []int64{1, 2, 1},
		VariantB: []int64{3},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), test.ID)
	assert.Len(t, test.Assignments, 3)
}

func TestCreateABTest_Invalid(t *testing.T) {
	u, _ := newTestABTests(t)
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	tests := map[string]domain.ABTestInput{
		"no name":          {VariantA: []int64{1}, VariantB: []int64{2}},
		"split too big":    {Name: "t", TrafficSplit: 1, VariantA: []int64{1}, VariantB: []int64{2}},
		"negative split":   {Name: "t", TrafficSplit: -0.2, VariantA: []int64{1}, VariantB: []int64{2}},
		"empty variant":    {Name: "t", VariantA: []int64{1}},
		"overlap":          {Name: "t", VariantA: []int64{1, 2}, VariantB: []int64{2}},
		"end before start": {Name: "t", VariantA: []int64{1}, VariantB: []int64{2}, StartDate: &start, EndDate: &end},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := u.CreateABTest(context.Background(), in)
			assert.ErrorIs(t, err, port.ErrInvalidABTest)
		})
	}
}

func TestABTest_NotFound(t *testing.T) {
	u, repo := newTestABTests(t)

	repo.EXPECT().GetABTest(mock.Anything, int64(4)).Return(nil, nil)

	_, err := u.ABTest(context.Background(), 4)
	assert.ErrorIs(t, err, port.ErrABTestNotFound)
}

func TestRecordEvent(t *testing.T) {
	u, repo := newTestABTests(t)

	repo.EXPECT().IncrementCounter(mock.Anything, int64(1), domain.VariantB, domain.EventClick).Return(true, nil)
	repo.EXPECT().IncrementCounter(mock.Anything, int64(2), domain.VariantA, domain.EventImpression).Return(false, nil)

	require.NoError(t, u.RecordEvent(context.Background(), 1, domain.VariantB, domain.EventClick))
	assert.ErrorIs(t, u.RecordEvent(context.Background(), 2, domain.VariantA, domain.EventImpression), port.ErrABTestNotFound)
	assert.ErrorIs(t, u.RecordEvent(context.Background(), 1, "C", domain.EventClick), port.ErrInvalidVariant)
	assert.ErrorIs(t, u.RecordEvent(context.Background(), 1, domain.VariantA, "view"), port.ErrInvalidEventKind)
}

func TestABTestCTR(t *testing.T) {
	test := domain.ABTest{TotalImpressionsA: 200, TotalClicksA: 10, TotalClicksB: 3}
	assert.InDelta(t, 0.05, test.CTRA(), 1e-9)
	assert.Zero(t, test.CTRB())
}
