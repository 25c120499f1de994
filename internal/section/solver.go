package section

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/units"
)

const (
	maxIterations    = 20
	residualToler    = 100.0 // N
	minNeutralDepth  = 10.0  // mm
	edgeMargin       = 10.0  // mm kept clear of the bottom fiber
	plateauStrain    = 0.002
	compressedTopEps = -0.001 // top steel strain when the axis sits above it
)

// NeutralAxis locates the cracked-section neutral axis under a bending
// moment M (kN·m, positive tensions the bottom fiber) and an axial
// force N (kN, negative is compression).
//
// Rectangular sections solve the homogenized quadratic in closed form;
// every other variant runs a damped force-balance iteration on the
// compressed-zone resultant.
func (s *Section) NeutralAxis(mKNm, nKN float64) (*NeutralAxisResult, error) {
	if s.As() <= 0 {
		return nil, configErrorf("section has no tension reinforcement")
	}
	if s.Kind() == "rettangolare" {
		return s.neutralAxisClosedForm()
	}
	return s.neutralAxisIterative(nKN)
}

// pinnedStrains reads the strain state off the plane section through a
// neutral axis at depth x, with the top concrete fiber pinned at the
// plateau strain.
func (s *Section) pinnedStrains(x float64) (epsTop, epsBottom, epsS, epsSp float64) {
	h := s.Dimensions()["h"]
	d, dp := s.EffectiveDepth(), s.TopDepth()
	epsTop = plateauStrain
	epsBottom = -plateauStrain * (h - x) / x
	epsS = plateauStrain * (d - x) / x
	epsSp = compressedTopEps
	if x > dp {
		epsSp = plateauStrain * (x - dp) / x
	}
	return epsTop, epsBottom, epsS, epsSp
}

// neutralAxisClosedForm solves
//
//	(b/2)·x² + n·(As+As′)·x − n·(As·d + As′·d′) = 0
//
// and pins the strain profile on the resulting plane section.
func (s *Section) neutralAxisClosedForm() (*NeutralAxisResult, error) {
	dims := s.Dimensions()
	b, h := dims["b"], dims["h"]
	n := s.Homogenization()
	as, asp := s.As(), s.AsPrime()
	d, dp := s.EffectiveDepth(), s.TopDepth()

	qa := b / 2
	qb := n * (as + asp)
	qc := -n * (as*d + asp*dp)

	var x float64
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		x = d / 3
	} else {
		x = (-qb + math.Sqrt(disc)) / (2 * qa)
	}
	x = clamp(x, minNeutralDepth, h-edgeMargin)

	epsTop, epsBottom, epsS, epsSp := s.pinnedStrains(x)
	res := &NeutralAxisResult{
		X:                 x,
		EpsConcreteTop:    epsTop,
		EpsConcreteBottom: epsBottom,
		EpsSteelBottom:    epsS,
		EpsSteelTop:       epsSp,
		Converged:         true,
	}
	res.Mode = s.failureMode(epsTop, epsS)
	return res, nil
}

// neutralAxisIterative balances the compressed-zone resultant (concrete
// block at its allowable stress plus compression steel) against the
// tension steel and the axial force. The correction step is damped to
// half the equivalent-depth error.
func (s *Section) neutralAxisIterative(nKN float64) (*NeutralAxisResult, error) {
	dims := s.Dimensions()
	b, h := dims["b"], dims["h"]
	as, asp := s.As(), s.AsPrime()
	naxial := units.KNToN(nKN)

	x := clamp(s.Properties().CentroidY, minNeutralDepth, h-edgeMargin)

	res := &NeutralAxisResult{}
	for i := 0; i < maxIterations; i++ {
		res.Iterations = i + 1

		area, _ := s.CompressedArea(x)
		fc := area * s.Concrete.SigmaAllowable

		epsTop, epsBottom, epsS, epsSp := s.pinnedStrains(x)
		fs := as * s.Steel.Stress(epsS)
		fsp := asp * s.Steel.Stress(epsSp)

		residual := fc + fsp - fs + naxial

		res.X = x
		res.EpsConcreteTop = epsTop
		res.EpsConcreteBottom = epsBottom
		res.EpsSteelBottom = epsS
		res.EpsSteelTop = epsSp

		if math.Abs(residual) < residualToler {
			res.Converged = true
			break
		}
		dx := -residual / b
		x = clamp(x+dx*0.5, minNeutralDepth, h-edgeMargin)
	}

	res.Mode = s.failureMode(res.EpsConcreteTop, res.EpsSteelBottom)
	return res, nil
}

// failureMode classifies the strain state against the material limits.
func (s *Section) failureMode(epsConcrete, epsSteel float64) FailureMode {
	epsAllow := s.Steel.SigmaAllowable / s.Steel.Modulus
	switch {
	case math.Abs(epsSteel) > epsAllow:
		return SteelGoverned
	case epsConcrete >= plateauStrain:
		return ConcreteGoverned
	default:
		return Balanced
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
