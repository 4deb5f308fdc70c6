package domain

import "time"

// SearchOutcome классифицирует результат одного поиска кафе
type SearchOutcome string

const (
	SearchOutcomeSuccess         SearchOutcome = "success"
	SearchOutcomeInvalidArea     SearchOutcome = "invalid_area"
	SearchOutcomeUpstreamFailure SearchOutcome = "upstream_failure"
)

// SearchRecord описывает один выполненный поиск для статистики
type SearchRecord struct {
	Outcome   SearchOutcome
	CafeCount int
	At        time.Time
}

// SearchStatistics - накопленная статистика поисков
type SearchStatistics struct {
	TotalSearches         int64      `json:"total_searches"`
	SuccessfulSearches    int64      `json:"successful_searches"`
	InvalidAreaRejections int64      `json:"invalid_area_rejections"`
	UpstreamFailures      int64      `json:"upstream_failures"`
	CafesReturned         int64      `json:"cafes_returned"`
	LastSearchAt          *time.Time `json:"last_search_at,omitempty"`
}
