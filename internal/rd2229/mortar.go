package rd2229

// MortarDosage is one row of Tabella III ("quantitativi di cemento e
// sabbia per 1 m³ di malta", RD 2229/1939 pag. 6-7).
type MortarDosage struct {
	Ratio           string  // volumetric cement:sand ratio, e.g. "1:1.40"
	RatioValue      float64 // sand part of the ratio
	Cement          float64 // kg/m³
	Sand            float64 // kg/m³
	ApparentDensity float64 // kg/m³
}

// MortarDosages lists Tabella III in increasing sand ratio.
var MortarDosages = []MortarDosage{
	{Ratio: "1:1", RatioValue: 1.00, Cement: 1050, Sand: 900, ApparentDensity: 1100},
	{Ratio: "1:1.40", RatioValue: 1.40, Cement: 800, Sand: 1080, ApparentDensity: 1080},
	{Ratio: "1:1.85", RatioValue: 1.85, Cement: 715, Sand: 1215, ApparentDensity: 1080},
	{Ratio: "1:2.30", RatioValue: 2.30, Cement: 685, Sand: 1405, ApparentDensity: 1080},
	{Ratio: "1:2.70", RatioValue: 2.70, Cement: 625, Sand: 1520, ApparentDensity: 1100},
	{Ratio: "1:3.70", RatioValue: 3.70, Cement: 385, Sand: 1530, ApparentDensity: 1070},
}

// MortarDosageFor interpolates Tabella III linearly for an intermediate
// sand ratio. Ratios outside the tabulated domain return a *RangeError.
func MortarDosageFor(ratio float64) (MortarDosage, error) {
	rows := MortarDosages
	lo, hi := rows[0], rows[len(rows)-1]
	if ratio < lo.RatioValue || ratio > hi.RatioValue {
		return MortarDosage{}, &RangeError{
			Table: "Tabella III (malta)",
			Value: ratio,
			Min:   lo.RatioValue,
			Max:   hi.RatioValue,
		}
	}
	for i := 0; i < len(rows)-1; i++ {
		a, b := rows[i], rows[i+1]
		if ratio >= a.RatioValue && ratio <= b.RatioValue {
			w := (ratio - a.RatioValue) / (b.RatioValue - a.RatioValue)
			return MortarDosage{
				Ratio:           a.Ratio,
				RatioValue:      ratio,
				Cement:          a.Cement + w*(b.Cement-a.Cement),
				Sand:            a.Sand + w*(b.Sand-a.Sand),
				ApparentDensity: a.ApparentDensity + w*(b.ApparentDensity-a.ApparentDensity),
			}, nil
		}
	}
	return hi, nil
}
