package domain

import "time"

// ABTestStatus is the lifecycle state of an experiment.
type ABTestStatus string

const (
	ABTestDraft     ABTestStatus = "draft"
	ABTestRunning   ABTestStatus = "running"
	ABTestCompleted ABTestStatus = "completed"
	ABTestPaused    ABTestStatus = "paused"
)

// Variant names one arm of an experiment.
type Variant string

const (
	VariantA Variant = "A"
	VariantB Variant = "B"
)

// Valid reports whether v is A or B.
func (v Variant) Valid() bool {
	return v == VariantA || v == VariantB
}

// EventKind is the counter an experiment event increments.
type EventKind string

const (
	EventImpression EventKind = "impression"
	EventClick      EventKind = "click"
)

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	return k == EventImpression || k == EventClick
}

// ABTest is an experiment over two variants. TrafficSplit is the share of
// traffic served variant A.
type ABTest struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Status            ABTestStatus       `json:"status"`
	StartDate         *time.Time         `json:"start_date"`
	EndDate           *time.Time         `json:"end_date"`
	TrafficSplit      float64            `json:"traffic_split"`
	TotalImpressionsA int64              `json:"total_impressions_a"`
	TotalImpressionsB int64              `json:"total_impressions_b"`
	TotalClicksA      int64              `json:"total_clicks_a"`
	TotalClicksB      int64              `json:"total_clicks_b"`
	Assignments       []ABTestAssignment `json:"assignments,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// CTRA returns the click-through rate of variant A, 0 without impressions.
func (t ABTest) CTRA() float64 {
	return ctr(t.TotalClicksA, t.TotalImpressionsA)
}

// CTRB returns the click-through rate of variant B, 0 without impressions.
func (t ABTest) CTRB() float64 {
	return ctr(t.TotalClicksB, t.TotalImpressionsB)
}

func ctr(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions)
}

// ABTestAssignment places a creative in one variant of a test.
type ABTestAssignment struct {
	ID         int64   `json:"id"`
	ABTestID   int64   `json:"ab_test_id"`
	CreativeID int64   `json:"creative_id"`
	Variant    Variant `json:"variant"`
}

// ABTestInput carries the fields of a new experiment.
type ABTestInput struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	TrafficSplit float64    `json:"traffic_split"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	VariantA     []int64    `json:"variant_a"`
	VariantB     []int64    `json:"variant_b"`
}
