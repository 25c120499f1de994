package verify

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/section"
	"github.com/alexiusacademia/gorcv/internal/units"
)

// Method selects how the three shear-resisting mechanisms combine.
// Neither rule subsumes the other, so both stay available and callers
// choose explicitly.
type Method string

const (
	// Santarella sums all three contributions: Vr = Vc + Vs + Vf.
	Santarella Method = "santarella"
	// Giangreco takes the best pair: Vr = max(Vc+Vs, Vc+Vf, Vs+Vf).
	Giangreco Method = "giangreco"
)

// Valid reports whether the method is one of the two named rules.
func (m Method) Valid() bool {
	return m == Santarella || m == Giangreco
}

// ShearResult holds the outcome of a shear check.
type ShearResult struct {
	Verified bool
	Method   Method

	Resistance   float64 // kN
	ShearApplied float64 // kN

	ConcreteShare float64 // kN
	StirrupShare  float64 // kN
	BentBarShare  float64 // kN

	TauMean      float64 // MPa, V/(bw·d)
	Utilization  float64 // V / Vr
	SafetyFactor float64 // Vr / V
}

// webWidth returns the web width used for shear, falling back to the
// overall width for shapes without a distinct web.
func webWidth(sec *section.Section) float64 {
	dims := sec.Dimensions()
	if bw := dims["bw"]; bw > 0 {
		return bw
	}
	return dims["b"]
}

// concreteShear returns the concrete contribution (kN):
// Vc = τc,amm·bw·d amplified by the longitudinal-steel ratio factor.
func concreteShear(sec *section.Section) float64 {
	bw := webWidth(sec)
	d := sec.EffectiveDepth()
	factor := sec.Concrete.ShearAmplification(sec.SteelRatio())
	return units.NToKN(sec.Concrete.TauAllowable * bw * d * factor)
}

// stirrupShear returns the stirrup contribution (kN):
// Vs = (Asw/s)·σs,amm·d.
func stirrupShear(sec *section.Section) float64 {
	if sec.Stirrups == nil || sec.Stirrups.Spacing <= 0 {
		return 0
	}
	asw := sec.Stirrups.LegArea()
	d := sec.EffectiveDepth()
	return units.NToKN(asw / sec.Stirrups.Spacing * sec.Steel.SigmaAllowable * d)
}

// bentBarShear returns the bent-bar contribution (kN):
// Vf = Asf·σs,amm·sin(α).
func bentBarShear(sec *section.Section) float64 {
	if sec.Bent == nil || sec.Bent.Count == 0 {
		return 0
	}
	alpha := sec.Bent.Inclination * math.Pi / 180
	return units.NToKN(sec.Bent.Area() * sec.Steel.SigmaAllowable * math.Sin(alpha))
}

// Shear checks a section under a shear force (kN). includeConcrete
// drops the concrete mechanism when false, leaving the reinforcement to
// carry the whole force.
func Shear(sec *section.Section, vKN float64, method Method, includeConcrete bool) (*ShearResult, error) {
	if !method.Valid() {
		return nil, section.NewConfigError("unknown shear method %q", method)
	}
	v := math.Abs(vKN)

	var vc float64
	if includeConcrete {
		vc = concreteShear(sec)
	}
	vs := stirrupShear(sec)
	vf := bentBarShear(sec)

	var vr float64
	if method == Santarella {
		vr = vc + vs + vf
	} else {
		vr = math.Max(vc+vs, math.Max(vc+vf, vs+vf))
	}

	tau := units.KNToN(v) / (webWidth(sec) * sec.EffectiveDepth())

	utilization := math.Inf(1)
	if vr > 0 {
		utilization = v / vr
	}
	safety := math.Inf(1)
	if v > 0 {
		safety = vr / v
	}

	return &ShearResult{
		Verified:      v <= vr,
		Method:        method,
		Resistance:    vr,
		ShearApplied:  v,
		ConcreteShare: vc,
		StirrupShare:  vs,
		BentBarShare:  vf,
		TauMean:       tau,
		Utilization:   utilization,
		SafetyFactor:  safety,
	}, nil
}

// StirrupSpacing sizes the stirrup spacing (mm) so the stirrups carry
// the shear left over after the concrete and bent-bar mechanisms, at
// the given utilization target. Returns +Inf when no stirrups are
// needed; otherwise the spacing is capped at min(d/2, 300).
func StirrupSpacing(sec *section.Section, vKN, diameter float64, legs int, target float64) float64 {
	vc := concreteShear(sec)
	vf := bentBarShear(sec)
	leftover := math.Abs(vKN) - vc - vf
	if leftover <= 0 {
		return math.Inf(1)
	}

	asw := float64(legs) * math.Pi * diameter * diameter / 4
	d := sec.EffectiveDepth()
	spacing := asw * target * sec.Steel.SigmaAllowable * d / units.KNToN(leftover)

	if limit := math.Min(d/2, 300); spacing > limit {
		return limit
	}
	return spacing
}
