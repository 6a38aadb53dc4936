package domain

import "time"

// CreativeStatus is the lifecycle stage of a persisted creative.
type CreativeStatus string

const (
	StatusGenerated    CreativeStatus = "generated"
	StatusSelected     CreativeStatus = "selected"
	StatusDeduplicated CreativeStatus = "deduplicated"
	StatusScored       CreativeStatus = "scored"
	StatusTested       CreativeStatus = "tested"
)

// Selection maps a dimension name to the option ids picked for it.
type Selection map[string][]int64

// Empty reports whether no option id is selected in any dimension.
func (s Selection) Empty() bool {
	for _, ids := range s {
		if len(ids) > 0 {
			return false
		}
	}
	return true
}

// OptionIDs returns every selected id once, in dimension-name order.
func (s Selection) OptionIDs() []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, name := range SortedKeys(s) {
		for _, id := range s[name] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// Creative is a persisted advertising draft. SelectedDimensions is recorded
// at creation time and never updated afterwards.
type Creative struct {
	ID                 int64            `json:"id"`
	Title              string           `json:"title"`
	Content            string           `json:"content"`
	SelectedDimensions Selection        `json:"selected_dimensions"`
	Status             CreativeStatus   `json:"status"`
	IsSelected         bool             `json:"is_selected"`
	CreativityScore    float64          `json:"creativity_score"`
	AppealScore        float64          `json:"appeal_score"`
	RelevanceScore     float64          `json:"relevance_score"`
	TotalScore         float64          `json:"total_score"`
	DuplicateGroupID   *int64           `json:"duplicate_group_id"`
	IsRepresentative   bool             `json:"is_representative"`
	GenerationParams   GenerationParams `json:"generation_params"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// CreativeFilter narrows creative listings. Nil pointers do not filter.
type CreativeFilter struct {
	Selected       *bool
	Representative *bool
	// Scored keeps only creatives with a positive total score.
	Scored bool
}
