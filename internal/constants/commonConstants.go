package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixRouteDistance CachePrefix = "DIST_"
)

const (
	// FinancialHistoryDays is the number of daily records the company keeps.
	FinancialHistoryDays = 30
	DefaultStartingCash  = 10_000_000
)
