package gorm

import "time"

// PlaneModel represents an aircraft catalog record
type PlaneModel struct {
	ID                 string    `gorm:"column:id;type:varchar(32);primaryKey"`
	Position           int       `gorm:"column:position;not null;index"`
	Manufacturer       string    `gorm:"column:manufacturer;type:varchar(100)"`
	Name               string    `gorm:"column:name;type:varchar(100);not null"`
	RangeNm            float64   `gorm:"column:range_nm"`
	SpeedKts           float64   `gorm:"column:speed_kts"`
	EconomySeats       int       `gorm:"column:economy_seats"`
	BusinessSeats      int       `gorm:"column:business_seats"`
	FirstClassSeats    int       `gorm:"column:first_class_seats"`
	MinRunwayLength    int       `gorm:"column:min_runway_length"`
	PurchasePrice      float64   `gorm:"column:purchase_price"`
	OperatingCostPerNm float64   `gorm:"column:operating_cost_per_nm"`
	FuelPerHour        float64   `gorm:"column:fuel_per_hour"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PlaneModel) TableName() string {
	return "plane_models"
}
