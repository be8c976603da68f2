package entities

const MinutesPerDay = 1440

type GameSpeed int

const (
	SpeedPaused GameSpeed = iota
	SpeedSlow
	SpeedNormal
	SpeedFast
)

// Multiplier is the number of simulated minutes added per clock step.
func (s GameSpeed) Multiplier() float64 {
	switch s {
	case SpeedSlow:
		return 0.1
	case SpeedNormal:
		return 1
	case SpeedFast:
		return 6
	}
	return 0
}

func (s GameSpeed) Valid() bool {
	return s >= SpeedPaused && s <= SpeedFast
}

func (s GameSpeed) String() string {
	switch s {
	case SpeedPaused:
		return "paused"
	case SpeedSlow:
		return "slow"
	case SpeedNormal:
		return "normal"
	case SpeedFast:
		return "fast"
	}
	return "unknown"
}

// GameTime is derived from total elapsed minutes; it is never stored on its own.
type GameTime struct {
	TotalMinutes float64 `json:"totalMinutes"`
	Day          int     `json:"day"`
	Hour         int     `json:"hour"`
	Minute       int     `json:"minute"`
}

func NewGameTime(totalMinutes float64) GameTime {
	whole := int(totalMinutes)
	return GameTime{
		TotalMinutes: totalMinutes,
		Day:          DayIndex(totalMinutes) + 1,
		Hour:         (whole % MinutesPerDay) / 60,
		Minute:       whole % 60,
	}
}

// DayIndex is the zero-based simulated day containing totalMinutes.
func DayIndex(totalMinutes float64) int {
	return int(totalMinutes / MinutesPerDay)
}
