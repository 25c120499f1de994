package verify

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/section"
	"github.com/alexiusacademia/gorcv/internal/units"
)

// slendernessThreshold is the l0/h ratio below which second-order
// eccentricity is negligible.
const slendernessThreshold = 15.0

// AxialOptions carries the optional column stability parameters.
type AxialOptions struct {
	// BucklingLength is the free buckling length in mm; zero disables
	// second-order effects.
	BucklingLength float64
	// RestraintFactor scales the buckling length for the end restraint
	// (1.0 pinned-pinned); zero means 1.0.
	RestraintFactor float64
}

func (o *AxialOptions) effectiveLength() float64 {
	if o == nil || o.BucklingLength <= 0 {
		return 0
	}
	beta := o.RestraintFactor
	if beta <= 0 {
		beta = 1.0
	}
	return o.BucklingLength * beta
}

// AxialResult holds the outcome of a combined axial-bending check.
type AxialResult struct {
	Verified bool
	Biaxial  bool

	LoadResistance    float64 // kN
	MomentResistanceX float64 // kN·m
	MomentResistanceY float64 // kN·m, biaxial only

	StressConcrete         float64 // MPa
	StressSteelTension     float64 // MPa
	StressSteelCompression float64 // MPa

	NeutralAxis  float64 // mm
	Eccentricity float64 // mm

	Utilization  float64
	SafetyFactor float64
}

// totalEccentricity combines the first-order eccentricity M/N, the
// second-order term for slender columns and the code minimum
// max(h/30, 20 mm).
func totalEccentricity(sec *section.Section, p, mKNm float64, opts *AxialOptions) float64 {
	h := sec.Dimensions()["h"]

	e0 := units.KNmToNmm(mKNm) / units.KNToN(p)

	var e2 float64
	if l0 := opts.effectiveLength(); l0 > 0 && l0/h >= slendernessThreshold {
		e2 = l0 * l0 / (10 * h)
	}

	eMin := math.Max(h/30, 20)
	return math.Max(e0+e2, eMin)
}

// AxialBending checks a section under compression with bending about
// the horizontal axis. nKN must be compressive (negative); pure bending
// belongs to Flexure.
func AxialBending(sec *section.Section, nKN, mKNm float64, opts *AxialOptions) (*AxialResult, error) {
	p := -nKN // positive compression
	if p <= 0 {
		return nil, section.NewConfigError("axial-bending check requires a compressive axial force, got %.4g kN", nKN)
	}
	m := math.Abs(mKNm)

	e := totalEccentricity(sec, p, m, opts)

	dims := sec.Dimensions()
	b, h := dims["b"], dims["h"]
	d := sec.EffectiveDepth()
	dp := sec.TopDepth()
	as, asp := sec.As(), sec.AsPrime()
	n := sec.Homogenization()
	sigmaC := sec.Concrete.SigmaAllowable
	sigmaS := sec.Steel.SigmaAllowable

	// Larger eccentricity pushes the axis up; e = 0 would give x = h.
	x := h / (1 + 2*e/h)

	var nr, mr float64
	if x >= h {
		// Fully compressed.
		nr = units.NToKN(sigmaC*b*h + (n-1)*sigmaS*(as+asp))
		mr = units.NmmToKNm(sigmaC*b*h*(h/2-e) +
			(n-1)*sigmaS*asp*(h/2-dp) +
			(n-1)*sigmaS*as*(d-h/2))
	} else {
		nr = units.NToKN(sigmaC*b*x + (n-1)*sigmaS*asp - sigmaS*as)
		mr = units.NmmToKNm(sigmaC*b*x*(d-x/3) + (n-1)*sigmaS*asp*(d-dp))
	}

	var stressC, stressT, stressComp float64
	if nr > 0 {
		ratio := p / nr
		stressC = sigmaC * ratio
		if x < h {
			stressT = sigmaS * ratio
		}
		if asp > 0 {
			stressComp = sigmaS * ratio * 0.5
		}
	}

	ratioN := math.Inf(1)
	if nr > 0 {
		ratioN = p / nr
	}
	ratioM := math.Inf(1)
	if mr > 0 {
		ratioM = m / mr
	}

	return &AxialResult{
		Verified:               p <= nr && m <= mr,
		LoadResistance:         nr,
		MomentResistanceX:      mr,
		StressConcrete:         stressC,
		StressSteelTension:     stressT,
		StressSteelCompression: stressComp,
		NeutralAxis:            x,
		Eccentricity:           e,
		Utilization:            math.Max(ratioN, ratioM),
		SafetyFactor:           math.Min(1/ratioN, 1/ratioM),
	}, nil
}

// interactionExponent returns the α of the biaxial interaction formula.
func interactionExponent(method Method) float64 {
	if method == Giangreco {
		return 2.0
	}
	return 1.5
}

// BiaxialBending checks a section under compression with bending about
// both axes using the interaction formula
//
//	(Mx/Mrx)^α + (My/Mry)^α ≤ 1
//
// with α = 1.5 (santarella) or 2.0 (giangreco). Each axis is evaluated
// as an independent uniaxial check; reinforcement depths refer to the
// bending plane of the X axis.
func BiaxialBending(sec *section.Section, nKN, mxKNm, myKNm float64, method Method, opts *AxialOptions) (*AxialResult, error) {
	if !method.Valid() {
		return nil, section.NewConfigError("unknown interaction method %q", method)
	}
	mx := math.Abs(mxKNm)
	my := math.Abs(myKNm)

	resX, err := AxialBending(sec, nKN, mx, opts)
	if err != nil {
		return nil, err
	}
	resY, err := AxialBending(sec, nKN, my, opts)
	if err != nil {
		return nil, err
	}

	alpha := interactionExponent(method)
	var ratioX, ratioY float64
	if resX.MomentResistanceX > 0 {
		ratioX = mx / resX.MomentResistanceX
	}
	if resY.MomentResistanceX > 0 {
		ratioY = my / resY.MomentResistanceX
	}
	combined := math.Pow(ratioX, alpha) + math.Pow(ratioY, alpha)

	safety := math.Inf(1)
	if combined > 0 {
		safety = 1 / combined
	}

	return &AxialResult{
		Verified:               combined <= 1.0,
		Biaxial:                true,
		LoadResistance:         resX.LoadResistance,
		MomentResistanceX:      resX.MomentResistanceX,
		MomentResistanceY:      resY.MomentResistanceX,
		StressConcrete:         math.Max(resX.StressConcrete, resY.StressConcrete),
		StressSteelTension:     math.Max(resX.StressSteelTension, resY.StressSteelTension),
		StressSteelCompression: math.Max(resX.StressSteelCompression, resY.StressSteelCompression),
		NeutralAxis:            resX.NeutralAxis,
		Eccentricity:           math.Hypot(resX.Eccentricity, resY.Eccentricity),
		Utilization:            combined,
		SafetyFactor:           safety,
	}, nil
}
