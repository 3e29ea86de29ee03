package progress_test

import (
	"testing"

	"github.com/limbo/fitrack/pkg/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendWeeklyRate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc    string
		Current float64
		Target  float64
		Days    int
		Band    progress.Band
		Colour  string
	}{
		{"half kilo a week", 70, 65, 70, progress.BandSafe, "green"},
		{"two and a half kilos a week", 70, 60, 28, progress.BandUnsafe, "red"},
		{"one kilo a week", 70, 66, 28, progress.BandCaution, "yellow"},
		{"gaining one and a half", 60, 66, 28, progress.BandWarning, "orange"},
		{"maintain", 70, 70, 30, progress.BandSafe, "green"},
		{"zero days clamps to one", 70, 69.9, 0, progress.BandCaution, "yellow"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rec := progress.RecommendWeeklyRate(tc.Current, tc.Target, tc.Days)
			assert.Equal(t, tc.Band, rec.Band)
			assert.Equal(t, tc.Colour, rec.Colour)
		})
	}
	rec := progress.RecommendWeeklyRate(70, 65, 70)
	assert.InDelta(t, -0.5, rec.WeeklyRate, 1e-9)
	assert.Equal(t, "-0.50 kg/week", rec.Text)
}

func TestClassifyBMI(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		BMI  float64
		Band progress.BMIBand
	}{
		{15.9, progress.BMISevereUnderweight},
		{16, progress.BMIModerateUnderweight},
		{17, progress.BMIUnderweight},
		{18.5, progress.BMINormal},
		{24.9, progress.BMINormal},
		{25.0, progress.BMIOverweight},
		{30, progress.BMIObesityI},
		{35, progress.BMIObesityII},
		{40, progress.BMIObesityIII},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Band, progress.ClassifyBMI(tc.BMI), "bmi %v", tc.BMI)
	}
}

func TestCalculateBMI(t *testing.T) {
	t.Parallel()
	bmi, err := progress.CalculateBMI(180, 81)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, bmi, 1e-9)
	_, err = progress.CalculateBMI(0, 80)
	assert.ErrorIs(t, err, progress.ErrImplausibleBody)
	_, err = progress.CalculateBMI(170, 500)
	assert.ErrorIs(t, err, progress.ErrImplausibleBody)
}

func TestClassifyBodyFat(t *testing.T) {
	t.Parallel()
	band, err := progress.ClassifyBodyFat("male", 15)
	require.NoError(t, err)
	assert.Equal(t, progress.BodyFatFitness, band)
	band, err = progress.ClassifyBodyFat(" Female ", 32)
	require.NoError(t, err)
	assert.Equal(t, progress.BodyFatObese, band)
	band, err = progress.ClassifyBodyFat("female", 12)
	require.NoError(t, err)
	assert.Equal(t, progress.BodyFatEssential, band)
	_, err = progress.ClassifyBodyFat("", 20)
	assert.ErrorIs(t, err, progress.ErrUnknownSex)
}
