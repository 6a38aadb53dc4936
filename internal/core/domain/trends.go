package domain

// Country is a market supported by trending-topic lookups.
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// TimeRange maps a user-facing range key to a trends timeframe expression.
type TimeRange struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Timeframe string `json:"timeframe"`
}

var countries = []Country{
	{Code: "VN", Name: "越南", Language: "Tiếng Việt"},
	{Code: "TH", Name: "泰国", Language: "ภาษาไทย"},
	{Code: "SG", Name: "新加坡", Language: "English"},
	{Code: "MY", Name: "马来西亚", Language: "English"},
	{Code: "ID", Name: "印尼", Language: "Bahasa Indonesia"},
	{Code: "PH", Name: "菲律宾", Language: "English"},
}

var timeRanges = []TimeRange{
	{Key: "today", Name: "今日", Timeframe: "now 1-d"},
	{Key: "week", Name: "本周", Timeframe: "now 7-d"},
	{Key: "month", Name: "本月", Timeframe: "today 1-m"},
}

// Countries returns the supported markets in display order.
func Countries() []Country {
	return append([]Country(nil), countries...)
}

// CountryByCode looks up a supported market.
func CountryByCode(code string) (Country, bool) {
	for _, c := range countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// TimeRanges returns the supported time ranges in display order.
func TimeRanges() []TimeRange {
	return append([]TimeRange(nil), timeRanges...)
}

// TimeRangeByKey looks up a supported time range.
func TimeRangeByKey(key string) (TimeRange, bool) {
	for _, r := range timeRanges {
		if r.Key == key {
			return r, true
		}
	}
	return TimeRange{}, false
}

// TrendingTopics is the result of a trending-topic lookup.
type TrendingTopics struct {
	Country    Country   `json:"country"`
	TimeRange  TimeRange `json:"time_range"`
	Topics     []string  `json:"topics"`
	Originals  []string  `json:"originals,omitempty"`
	Translated bool      `json:"translated"`
	Source     string    `json:"source"`
	Seeds      []string  `json:"seeds"`
}
