package gorm

import (
	"time"
)

// Airport represents an airport reference record
type Airport struct {
	Code             string    `gorm:"column:code;type:varchar(4);primaryKey"`
	Position         int       `gorm:"column:position;not null;index"`
	Name             string    `gorm:"column:name;type:text;not null"`
	City             string    `gorm:"column:city;type:varchar(100)"`
	Country          string    `gorm:"column:country;type:varchar(100)"`
	Latitude         float64   `gorm:"column:latitude;type:numeric(10,6);not null"`
	Longitude        float64   `gorm:"column:longitude;type:numeric(10,6);not null"`
	OpensAt          int       `gorm:"column:opens_at"`
	ClosesAt         int       `gorm:"column:closes_at"`
	DemandBusiness   int       `gorm:"column:demand_business"`
	DemandLeisure    int       `gorm:"column:demand_leisure"`
	DemandFirstClass int       `gorm:"column:demand_first_class"`
	RunwayLength     int       `gorm:"column:runway_length"`
	LandingFee       float64   `gorm:"column:landing_fee"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
