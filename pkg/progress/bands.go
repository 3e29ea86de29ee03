package progress

import (
	"errors"
	"strings"
)

type BMIBand string

const (
	BMISevereUnderweight   BMIBand = "severe underweight"
	BMIModerateUnderweight BMIBand = "moderate underweight"
	BMIUnderweight         BMIBand = "underweight"
	BMINormal              BMIBand = "normal"
	BMIOverweight          BMIBand = "overweight"
	BMIObesityI            BMIBand = "obesity I"
	BMIObesityII           BMIBand = "obesity II"
	BMIObesityIII          BMIBand = "obesity III"
)

var (
	ErrImplausibleBody = errors.New("height/weight out of plausible range")
	ErrUnknownSex      = errors.New("unknown sex, expected male or female")
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrImplausibleBody
	}
	h := heightCm / 100
	return weightKg / (h * h), nil
}

func ClassifyBMI(bmi float64) BMIBand {
	switch {
	case bmi < 16:
		return BMISevereUnderweight
	case bmi < 17:
		return BMIModerateUnderweight
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	case bmi < 35:
		return BMIObesityI
	case bmi < 40:
		return BMIObesityII
	default:
		return BMIObesityIII
	}
}

type BodyFatBand string

const (
	BodyFatEssential BodyFatBand = "essential"
	BodyFatAthlete   BodyFatBand = "athlete"
	BodyFatFitness   BodyFatBand = "fitness"
	BodyFatAverage   BodyFatBand = "average"
	BodyFatObese     BodyFatBand = "obese"
)

// Lower bounds of athlete, fitness, average and obese.
var bodyFatThresholds = map[string][4]float64{
	"male":   {6, 14, 18, 25},
	"female": {14, 21, 25, 32},
}

func ClassifyBodyFat(sex string, percent float64) (BodyFatBand, error) {
	th, ok := bodyFatThresholds[strings.ToLower(strings.TrimSpace(sex))]
	if !ok {
		return "", ErrUnknownSex
	}
	switch {
	case percent < th[0]:
		return BodyFatEssential, nil
	case percent < th[1]:
		return BodyFatAthlete, nil
	case percent < th[2]:
		return BodyFatFitness, nil
	case percent < th[3]:
		return BodyFatAverage, nil
	default:
		return BodyFatObese, nil
	}
}
