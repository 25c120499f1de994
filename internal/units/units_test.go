package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStressConversionRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 40, 280, 1400, 2000} {
		assert.InDelta(t, v, MPaToKgCm2(KgCm2ToMPa(v)), 1e-9)
	}
}

func TestStressConversionValues(t *testing.T) {
	// 1 MPa = 10.197 kg/cm² per the historical convention.
	assert.InDelta(t, 10.197, MPaToKgCm2(1), 1e-12)
	assert.InDelta(t, 3.9227, KgCm2ToMPa(40), 1e-3)
	assert.InDelta(t, 137.295, KgCm2ToMPa(1400), 1e-2)
}

func TestMomentAndForceConversions(t *testing.T) {
	assert.Equal(t, 80e6, KNmToNmm(80))
	assert.Equal(t, 80.0, NmmToKNm(80e6))
	assert.Equal(t, 1500.0, KNToN(1.5))
	assert.Equal(t, 1.5, NToKN(1500))
}
