package material

import (
	"github.com/alexiusacademia/gorcv/internal/rd2229"
	"github.com/alexiusacademia/gorcv/internal/units"
)

// GradeFamily splits reinforcement steels into the two safety-factor
// families of the allowable-stress code.
type GradeFamily string

const (
	// Soft covers mild steels (plain bars); safety factor 2.3.
	Soft GradeFamily = "soft"
	// Hard covers semi-hard and hard steels; safety factor 2.5.
	Hard GradeFamily = "hard"
)

// SafetyFactor returns the yield safety factor of the family.
func (f GradeFamily) SafetyFactor() float64 {
	if f == Hard {
		return 2.5
	}
	return 2.3
}

// Steel holds the yield strength, allowable stress and modulus of a
// reinforcement steel, in MPa.
type Steel struct {
	Name string `json:"name,omitempty"`

	Yield          float64 `json:"yield"`           // fyk (MPa)
	SigmaAllowable float64 `json:"sigma_allowable"` // σs,amm (MPa)
	Modulus        float64 `json:"modulus"`         // Es (MPa)

	Family       GradeFamily `json:"family"`
	ImprovedBond bool        `json:"improved_bond,omitempty"`
}

// modernModulus is the Es used for modern steel grades (MPa).
const modernModulus = 206000.0

// modernGrades maps the common grade designations to yield strength and
// family. Yields in MPa.
var modernGrades = map[string]struct {
	Yield        float64
	Family       GradeFamily
	ImprovedBond bool
}{
	"FeB24k": {235, Soft, false},
	"FeB32k": {320, Soft, false},
	"FeB38k": {375, Hard, true},
	"FeB44k": {430, Hard, true},
}

// NewSteel builds a steel from its yield strength in MPa; the allowable
// stress is yield divided by the family safety factor (2.3 soft, 2.5
// hard).
func NewSteel(yield float64, family GradeFamily) (*Steel, error) {
	s := &Steel{
		Yield:          yield,
		SigmaAllowable: yield / family.SafetyFactor(),
		Modulus:        modernModulus,
		Family:         family,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSteelFromType builds a steel from a modern grade designation
// (FeB24k, FeB32k, FeB38k, FeB44k).
func NewSteelFromType(designation string) (*Steel, error) {
	g, ok := modernGrades[designation]
	if !ok {
		return nil, errorf("unknown steel grade %q", designation)
	}
	s, err := NewSteel(g.Yield, g.Family)
	if err != nil {
		return nil, err
	}
	s.Name = designation
	s.ImprovedBond = g.ImprovedBond
	return s, nil
}

// NewHistoricalSteel builds a steel from a yield strength in kg/cm²
// with the historical modulus Es = 2,000,000 kg/cm² and the family
// safety factor.
func NewHistoricalSteel(yieldKgCm2 float64, family GradeFamily) (*Steel, error) {
	s := &Steel{
		Yield:          units.KgCm2ToMPa(yieldKgCm2),
		SigmaAllowable: units.KgCm2ToMPa(yieldKgCm2 / family.SafetyFactor()),
		Modulus:        units.KgCm2ToMPa(rd2229.SteelModulus),
		Family:         family,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSteelFromHistoricalGrade builds a steel from a named grade of the
// RD 2229/1939 catalog (FeB32k, ..., Aq80 in their historical kg/cm²
// values), taking the tabulated allowable stress directly.
func NewSteelFromHistoricalGrade(name string) (*Steel, error) {
	g, ok := rd2229.FindSteelGrade(name)
	if !ok {
		return nil, errorf("unknown historical steel grade %q", name)
	}
	family := Soft
	if g.Yield > rd2229.SigmaSteelSoft {
		family = Hard
	}
	s := &Steel{
		Name:           g.Name,
		Yield:          units.KgCm2ToMPa(g.Yield),
		SigmaAllowable: units.KgCm2ToMPa(g.SigmaAllowable),
		Modulus:        units.KgCm2ToMPa(g.Modulus),
		Family:         family,
		ImprovedBond:   g.ImprovedBond,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Steel) validate() error {
	if s.Yield <= 0 {
		return errorf("steel yield strength must be positive, got %.3g MPa", s.Yield)
	}
	if s.SigmaAllowable > s.Yield {
		return errorf("allowable stress %.3g MPa exceeds yield %.3g MPa", s.SigmaAllowable, s.Yield)
	}
	if s.Modulus <= 0 {
		return errorf("steel modulus must be positive, got %.3g MPa", s.Modulus)
	}
	return nil
}

// YieldStrain returns the strain at which the piecewise-linear stress
// law reaches the allowable stress.
func (s *Steel) YieldStrain() float64 {
	return s.SigmaAllowable / s.Modulus
}

// Stress returns the steel stress for a strain magnitude, elastic up to
// the allowable cap.
func (s *Steel) Stress(strain float64) float64 {
	sigma := strain * s.Modulus
	if sigma > s.SigmaAllowable {
		return s.SigmaAllowable
	}
	if sigma < -s.SigmaAllowable {
		return -s.SigmaAllowable
	}
	return sigma
}

// BondStress returns the allowable bond stress (MPa) for a bar
// diameter in mm, reduced for diameters over 20 mm.
func (s *Steel) BondStress(diameter float64) float64 {
	base := 0.5
	if s.ImprovedBond {
		base = 1.5
	}
	if diameter > 20 {
		return base * 20.0 / diameter
	}
	return base
}

// AnchorageLength returns the straight anchorage length (mm) for a bar
// diameter in mm: Lb = σs,amm·⌀/(4·τb), never less than 20 diameters.
func (s *Steel) AnchorageLength(diameter float64) float64 {
	lb := s.SigmaAllowable * diameter / (4.0 * s.BondStress(diameter))
	if minimum := 20 * diameter; lb < minimum {
		return minimum
	}
	return lb
}
