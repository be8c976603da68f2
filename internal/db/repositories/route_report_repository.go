package repositories

import (
	"context"

	"infinite-experiment/skyline/internal/constants"

	"github.com/jmoiron/sqlx"
)

// RouteProfit is one row of the route profitability report
type RouteProfit struct {
	Departure  string  `db:"departure" json:"departure"`
	Arrival    string  `db:"arrival" json:"arrival"`
	Flights    int     `db:"flights" json:"flights"`
	Passengers int     `db:"passengers" json:"passengers"`
	Revenue    float64 `db:"revenue" json:"revenue"`
	Cost       float64 `db:"cost" json:"cost"`
	Profit     float64 `db:"profit" json:"profit"`
}

// RouteReportRepository runs read-only reporting queries over archived flights
type RouteReportRepository struct {
	db *sqlx.DB
}

func NewRouteReportRepository(db *sqlx.DB) *RouteReportRepository {
	return &RouteReportRepository{db: db}
}

// RouteProfitability aggregates arrived flights by directed route, most profitable first
func (r *RouteReportRepository) RouteProfitability(ctx context.Context) ([]RouteProfit, error) {
	rows := []RouteProfit{}
	query := r.db.Rebind(constants.RouteProfitability)
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, "arrived"); err != nil {
		return nil, err
	}
	return rows, nil
}
