package progress

import (
	"fmt"
	"math"
)

type Band string

const (
	BandSafe    Band = "safe"
	BandCaution Band = "caution"
	BandWarning Band = "warning"
	BandUnsafe  Band = "unsafe"
)

// Colour used by clients to paint the band.
func (b Band) Colour() string {
	switch b {
	case BandSafe:
		return "green"
	case BandCaution:
		return "yellow"
	case BandWarning:
		return "orange"
	default:
		return "red"
	}
}

type Recommendation struct {
	Band       Band    `json:"band"`
	Colour     string  `json:"colour"`
	WeeklyRate float64 `json:"weekly_rate"`
	Text       string  `json:"text"`
}

// Upper bounds of each band in kg/week, inclusive.
var bandLimits = []struct {
	limit float64
	band  Band
}{
	{0.5, BandSafe},
	{1.0, BandCaution},
	{1.5, BandWarning},
}

// RecommendWeeklyRate classifies the weekly change needed to get from current
// to target weight in daysAvailable days. Advisory only.
func RecommendWeeklyRate(currentWeight, targetWeight float64, daysAvailable int) Recommendation {
	if daysAvailable < 1 {
		daysAvailable = 1
	}
	weekly := (targetWeight - currentWeight) / (float64(daysAvailable) / 7)
	band := BandUnsafe
	for _, bl := range bandLimits {
		if math.Abs(weekly) <= bl.limit {
			band = bl.band
			break
		}
	}
	return Recommendation{
		Band:       band,
		Colour:     band.Colour(),
		WeeklyRate: weekly,
		Text:       fmt.Sprintf("%+.2f kg/week", weekly),
	}
}
