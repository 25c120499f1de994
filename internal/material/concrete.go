// Package material provides the concrete and steel allowable-stress
// models used by the section verification engine. Materials are value
// types: every derived quantity is computed once by a constructor and
// the struct must not be mutated afterwards.
//
// Engine units are MPa; historical constructors accept the kg/cm² values
// the RD 2229/1939 tables are written in and convert.
package material

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/rd2229"
	"github.com/alexiusacademia/gorcv/internal/units"
)

// Concrete holds the strength, allowable stresses and elastic modulus of
// a concrete mix, all in MPa.
type Concrete struct {
	Name string `json:"name,omitempty"`

	// Strength and derived allowable stresses
	Rck            float64 `json:"rck"`             // compressive strength (MPa)
	SigmaAllowable float64 `json:"sigma_allowable"` // bending compression (MPa)
	TauAllowable   float64 `json:"tau_allowable"`   // shear (MPa)

	// Stiffness
	Modulus float64 `json:"modulus"` // Ec (MPa)

	// Historical-table provenance, zero-valued for modern mixes
	Historical  bool              `json:"historical,omitempty"`
	Cement      rd2229.CementType `json:"cement,omitempty"`
	WaterCement float64           `json:"water_cement,omitempty"`
}

// NewConcrete builds a concrete from its characteristic strength using
// the modern closed forms of the allowable-stress literature:
//
//	σc,amm = Rck/3    τc,amm = 0.054·Rck    Ec = 5700·√Rck  [MPa]
func NewConcrete(rck float64) (*Concrete, error) {
	c := &Concrete{
		Rck:            rck,
		SigmaAllowable: rck / 3.0,
		TauAllowable:   0.054 * rck,
		Modulus:        5700.0 * math.Sqrt(math.Max(rck, 0)),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewHistoricalConcrete builds a concrete from a 28-day resistance in
// kg/cm² using the RD 2229/1939 rules: allowable stresses from the
// safety-load table for the cement type, modulus from
// Ec = 550000·σc/(σc+200). waterCement is kept for provenance only and
// may be zero.
func NewHistoricalConcrete(resistanceKgCm2 float64, cement rd2229.CementType, waterCement float64) (*Concrete, error) {
	if !cement.Valid() {
		return nil, errorf("unknown cement type %q", cement)
	}
	ec, err := rd2229.ConcreteModulus(resistanceKgCm2)
	if err != nil {
		return nil, errorf("concrete resistance: %v", err)
	}
	c := &Concrete{
		Rck:            units.KgCm2ToMPa(resistanceKgCm2),
		SigmaAllowable: units.KgCm2ToMPa(rd2229.AllowableConcreteBending(cement)),
		TauAllowable:   units.KgCm2ToMPa(rd2229.AllowableConcreteShear(cement)),
		Modulus:        units.KgCm2ToMPa(ec),
		Historical:     true,
		Cement:         cement,
		WaterCement:    waterCement,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewHistoricalConcreteFromTable builds a historical concrete by
// interpolating the 28-day resistance from Tabella II for the given
// cement type and water/cement ratio. Ratios outside the tabulated
// domain fail with the table's *rd2229.RangeError.
func NewHistoricalConcreteFromTable(cement rd2229.CementType, waterCement float64) (*Concrete, error) {
	resistance, err := rd2229.ConcreteResistance(cement, waterCement)
	if err != nil {
		return nil, err
	}
	return NewHistoricalConcrete(resistance, cement, waterCement)
}

// NewConcreteFromHistoricalGrade builds a concrete from a named mix of
// the historical catalog (C150 ... C400), taking the documented
// allowable stresses and modulus directly instead of re-deriving them.
func NewConcreteFromHistoricalGrade(name string) (*Concrete, error) {
	g, ok := rd2229.FindConcreteGrade(name)
	if !ok {
		return nil, errorf("unknown historical concrete grade %q", name)
	}
	c := &Concrete{
		Name:           g.Name,
		Rck:            units.KgCm2ToMPa(g.Resistance),
		SigmaAllowable: units.KgCm2ToMPa(g.SigmaAllowable),
		TauAllowable:   units.KgCm2ToMPa(g.TauAllowable),
		Modulus:        units.KgCm2ToMPa(g.Modulus),
		Historical:     true,
		Cement:         g.Cement,
		WaterCement:    g.WaterCement,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Concrete) validate() error {
	if c.Rck <= 0 {
		return errorf("concrete strength must be positive, got %.3g MPa", c.Rck)
	}
	if c.SigmaAllowable > c.Rck {
		return errorf("allowable stress %.3g MPa exceeds strength %.3g MPa", c.SigmaAllowable, c.Rck)
	}
	if c.Modulus <= 0 {
		return errorf("concrete modulus must be positive, got %.3g MPa", c.Modulus)
	}
	return nil
}

// ShearAmplification returns the multiplier applied to the concrete
// shear contribution for a longitudinal reinforcement ratio rho (in
// percent). Santarella's empirical rule: 1.0 below 0.5%, then linear up
// to 1.2 at 1.5% and constant beyond.
func (c *Concrete) ShearAmplification(rhoPercent float64) float64 {
	switch {
	case rhoPercent < 0.5:
		return 1.0
	case rhoPercent <= 1.5:
		return 1.0 + 0.2*(rhoPercent-0.5)
	default:
		return 1.2
	}
}
