package constants

const (
	// RouteProfitability aggregates archived arrived flights per directed route.
	RouteProfitability = `
	SELECT departure_airport_code AS departure,
	       arrival_airport_code   AS arrival,
	       COUNT(*)                                          AS flights,
	       COALESCE(SUM(economy_pax + business_pax + first_class_pax), 0) AS passengers,
	       COALESCE(SUM(revenue), 0)                         AS revenue,
	       COALESCE(SUM(cost), 0)                            AS cost,
	       COALESCE(SUM(revenue - cost), 0)                  AS profit
	FROM flight_logs
	WHERE status = ?
	GROUP BY departure_airport_code, arrival_airport_code
	ORDER BY profit DESC
	`
)
