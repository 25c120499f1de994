// Package section models reinforced-concrete cross sections for
// allowable-stress verification: the eight parametric shape variants,
// the reinforcement attached to a section, and the neutral-axis solvers.
//
// Conventions (all lengths in mm, stresses in MPa, forces in N):
//   - y is measured downward from the top (compression) fiber;
//   - positive bending moment puts the bottom fiber in tension;
//   - negative axial force is compression.
package section

import (
	"fmt"
	"math"
)

// Point is a 2D contour coordinate in mm.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bar is a group of longitudinal bars at a common depth.
type Bar struct {
	Diameter float64 `json:"diameter"` // mm
	Count    int     `json:"count"`
	Y        float64 `json:"y"`           // depth of the group centroid from the top fiber (mm)
	X        float64 `json:"x,omitempty"` // optional horizontal position (mm)
}

// Area returns the total steel area of the group (mm²).
func (b Bar) Area() float64 {
	return float64(b.Count) * math.Pi * b.Diameter * b.Diameter / 4.0
}

// Stirrup is the single stirrup configuration of a section.
type Stirrup struct {
	Diameter float64 `json:"diameter"` // mm
	Legs     int     `json:"legs"`
	Spacing  float64 `json:"spacing"` // mm
}

// LegArea returns the total area of the stirrup legs (mm²).
func (s Stirrup) LegArea() float64 {
	return float64(s.Legs) * math.Pi * s.Diameter * s.Diameter / 4.0
}

// BentBars is a group of longitudinal bars bent up to resist shear.
type BentBars struct {
	Diameter    float64 `json:"diameter"`    // mm
	Count       int     `json:"count"`
	Inclination float64 `json:"inclination"` // degrees from the beam axis, typically 45
}

// Area returns the total bent-bar area (mm²).
func (f BentBars) Area() float64 {
	return float64(f.Count) * math.Pi * f.Diameter * f.Diameter / 4.0
}

// GeometricProperties are the gross-section properties of a shape,
// recomputed on every call and never cached.
type GeometricProperties struct {
	Area      float64 // mm²
	CentroidY float64 // depth of the centroid from the top fiber (mm)
	Ix        float64 // moment of inertia about the horizontal centroidal axis (mm⁴)
	Iy        float64 // moment of inertia about the vertical centroidal axis (mm⁴)
	Wtop      float64 // section modulus, top fiber (mm³)
	Wbottom   float64 // section modulus, bottom fiber (mm³)
}

// FailureMode classifies which material governs the strain profile at
// the solved neutral axis.
type FailureMode string

const (
	ConcreteGoverned FailureMode = "cls"
	SteelGoverned    FailureMode = "acciaio"
	Balanced         FailureMode = "bilanciato"
)

// NeutralAxisResult is the output of the equilibrium solve.
type NeutralAxisResult struct {
	// X is the neutral-axis depth from the top fiber (mm).
	X float64

	Mode FailureMode

	// Strains of the pinned plane-sections profile.
	EpsConcreteTop    float64
	EpsConcreteBottom float64
	EpsSteelBottom    float64
	EpsSteelTop       float64

	// Converged is false when the iterative path exhausted its budget;
	// X is then the last iterate.
	Converged  bool
	Iterations int
}

// GeometryError reports non-positive or structurally inconsistent shape
// dimensions at construction time.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string {
	return e.msg
}

func geometryErrorf(format string, args ...any) *GeometryError {
	return &GeometryError{msg: fmt.Sprintf(format, args...)}
}

// ConfigError reports a section that is missing the materials or
// reinforcement an operation requires.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// NewConfigError builds a ConfigError; the verification layer reports
// missing or inconsistent check inputs with the same kind the section
// constructors use.
func NewConfigError(format string, args ...any) *ConfigError {
	return configErrorf(format, args...)
}
