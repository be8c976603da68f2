package gorm

import "time"

// FlightLog is an archived flight that reached a terminal status
type FlightLog struct {
	ID                   string    `gorm:"column:id;type:varchar(36);primaryKey"`
	FlightNumber         string    `gorm:"column:flight_number;type:varchar(16);index"`
	DepartureAirportCode string    `gorm:"column:departure_airport_code;type:varchar(4);index:idx_flight_logs_route"`
	ArrivalAirportCode   string    `gorm:"column:arrival_airport_code;type:varchar(4);index:idx_flight_logs_route"`
	PlaneID              string    `gorm:"column:plane_id;type:varchar(36)"`
	ScheduleID           string    `gorm:"column:schedule_id;type:varchar(36)"`
	Status               string    `gorm:"column:status;type:varchar(16);index"`
	DepartureTime        float64   `gorm:"column:departure_time"`
	ArrivalTime          float64   `gorm:"column:arrival_time"`
	DistanceNm           float64   `gorm:"column:distance_nm"`
	EconomyPax           int       `gorm:"column:economy_pax"`
	BusinessPax          int       `gorm:"column:business_pax"`
	FirstClassPax        int       `gorm:"column:first_class_pax"`
	Revenue              float64   `gorm:"column:revenue"`
	Cost                 float64   `gorm:"column:cost"`
	ArchivedAt           time.Time `gorm:"column:archived_at;autoUpdateTime"`
}

func (FlightLog) TableName() string {
	return "flight_logs"
}
