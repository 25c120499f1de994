// Package rd2229 holds the design data of Regio Decreto 2229 of 16
// November 1939 ("Norme per l'esecuzione delle opere in conglomerato
// cementizio") as tabulated in the Santarella handbooks: the Tabella II
// water/cement resistance table, the allowable (safety) stresses, the
// historical elastic-modulus formulas and the material grade catalogs of
// the era.
//
// Values are stored in the legacy kg/cm² units the code was written in;
// callers convert through the units package.
package rd2229

import (
	"fmt"
	"sort"
)

// CementType identifies the cement families of Tabella II.
type CementType string

const (
	CementNormal         CementType = "normale"
	CementHighResistance CementType = "alta_resistenza"
	CementAluminous      CementType = "alluminoso"
)

// Valid reports whether the cement type is one tabulated by the code.
func (c CementType) Valid() bool {
	switch c {
	case CementNormal, CementHighResistance, CementAluminous:
		return true
	}
	return false
}

// RangeError reports a lookup outside the tabulated domain of a
// historical table. The 1939 tables are not extrapolated.
type RangeError struct {
	Table string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value %.3g outside tabulated range [%.3g, %.3g]", e.Table, e.Value, e.Min, e.Max)
}

// tabellaII maps cement type to (water/cement ratio, 28-day compressive
// resistance in kg/cm²) pairs, sorted by ratio. Source: Tabella II, RD
// 2229/1939 pag. 9.
var tabellaII = map[CementType][]struct{ Ratio, Resistance float64 }{
	CementNormal: {
		{0.40, 380}, {0.45, 330}, {0.50, 280}, {0.55, 250},
		{0.60, 225}, {0.70, 180}, {0.80, 140},
	},
	CementHighResistance: {
		{0.40, 500}, {0.45, 400}, {0.50, 350}, {0.55, 290},
		{0.60, 250}, {0.70, 200}, {0.80, 170},
	},
	CementAluminous: {
		{0.40, 400}, {0.45, 330}, {0.50, 280},
	},
}

// TabulatedRatios returns the water/cement ratios of Tabella II for a
// cement type, in increasing order.
func TabulatedRatios(cement CementType) ([]float64, error) {
	rows, ok := tabellaII[cement]
	if !ok {
		return nil, fmt.Errorf("unknown cement type %q", cement)
	}
	ratios := make([]float64, len(rows))
	for i, r := range rows {
		ratios[i] = r.Ratio
	}
	sort.Float64s(ratios)
	return ratios, nil
}

// ConcreteResistance interpolates the 28-day compressive resistance
// (kg/cm²) of Tabella II linearly between the two bracketing tabulated
// water/cement ratios. Ratios outside the tabulated domain return a
// *RangeError; the table is not extrapolated.
func ConcreteResistance(cement CementType, waterCementRatio float64) (float64, error) {
	rows, ok := tabellaII[cement]
	if !ok {
		return 0, fmt.Errorf("unknown cement type %q", cement)
	}
	lo, hi := rows[0], rows[len(rows)-1]
	if waterCementRatio < lo.Ratio || waterCementRatio > hi.Ratio {
		return 0, &RangeError{
			Table: fmt.Sprintf("Tabella II (%s)", cement),
			Value: waterCementRatio,
			Min:   lo.Ratio,
			Max:   hi.Ratio,
		}
	}
	for i := 0; i < len(rows)-1; i++ {
		a, b := rows[i], rows[i+1]
		if waterCementRatio >= a.Ratio && waterCementRatio <= b.Ratio {
			w := (waterCementRatio - a.Ratio) / (b.Ratio - a.Ratio)
			return a.Resistance + w*(b.Resistance-a.Resistance), nil
		}
	}
	return hi.Resistance, nil
}

// Allowable (safety) stresses for bent and eccentrically loaded sections,
// RD 2229/1939 pag. 14-15, in kg/cm².
const (
	// Concrete in bending compression.
	SigmaConcreteBendingNormal = 40 // normal cement, σ28 > 120 kg/cm²
	SigmaConcreteBendingHigh   = 50 // high-resistance and aluminous cement

	// Concrete in simple (centric) compression.
	SigmaConcreteAxialNormal = 35
	SigmaConcreteAxialHigh   = 45

	// Concrete in shear.
	TauConcreteNormal = 4
	TauConcreteHigh   = 6

	// Steel in tension.
	SigmaSteelSoft = 1400 // mild ("dolce") bars
	SigmaSteelHard = 2000 // hard bars, ⌀ >= 26 mm
)

// AllowableConcreteBending returns the bending compression safety stress
// (kg/cm²) for a cement type.
func AllowableConcreteBending(cement CementType) float64 {
	if cement == CementNormal {
		return SigmaConcreteBendingNormal
	}
	return SigmaConcreteBendingHigh
}

// AllowableConcreteShear returns the shear safety stress (kg/cm²) for a
// cement type.
func AllowableConcreteShear(cement CementType) float64 {
	if cement == CementNormal {
		return TauConcreteNormal
	}
	return TauConcreteHigh
}

// SteelModulus is the historical steel elastic modulus, Es = 2,000,000
// kg/cm² (RD 2229/1939 pag. 14).
const SteelModulus = 2_000_000

// ConcreteModulus returns the historical concrete elastic modulus in
// kg/cm² from the 28-day compressive resistance in kg/cm²:
//
//	Ec = 550000·σc / (σc + 200)
//
// (RD 2229/1939 pag. 13).
func ConcreteModulus(resistance float64) (float64, error) {
	if resistance <= 0 {
		return 0, fmt.Errorf("concrete resistance must be positive, got %.3g", resistance)
	}
	return 550000 * resistance / (resistance + 200), nil
}

// Homogenization returns n = Es/Ec for a concrete modulus in kg/cm².
func Homogenization(concreteModulus float64) float64 {
	return SteelModulus / concreteModulus
}
