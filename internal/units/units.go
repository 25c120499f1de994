// Package units converts between the legacy technical units used by the
// RD 2229/1939 code (kg/cm²) and the SI units the engine works in (MPa,
// N, mm). All engine internals are N-mm-MPa; legacy values only appear at
// construction time of historical materials and in reports.
package units

// KgCm2PerMPa is the legacy conversion adopted by the historical
// literature: 1 MPa = 10.197 kg/cm² (g = 9.80665 m/s²).
const KgCm2PerMPa = 10.197

// KgCm2ToMPa converts a stress from kg/cm² to MPa.
func KgCm2ToMPa(v float64) float64 {
	return v / KgCm2PerMPa
}

// MPaToKgCm2 converts a stress from MPa to kg/cm².
func MPaToKgCm2(v float64) float64 {
	return v * KgCm2PerMPa
}

// KNmToNmm converts a bending moment from kN·m to N·mm.
func KNmToNmm(v float64) float64 {
	return v * 1e6
}

// NmmToKNm converts a bending moment from N·mm to kN·m.
func NmmToKNm(v float64) float64 {
	return v / 1e6
}

// KNToN converts a force from kN to N.
func KNToN(v float64) float64 {
	return v * 1e3
}

// NToKN converts a force from N to kN.
func NToKN(v float64) float64 {
	return v / 1e3
}
