// Package batch runs verification over element lists imported from CSV
// or XLSX files. The element schema is
//
//	id,type,p1..p6,material,As,As_prime,M_kNm,N_kN
//
// where type is a section factory keyword, p1..p6 its positional
// dimensions, material a library entry name and As/As_prime total steel
// areas replaced by equivalent ⌀10 bar groups.
package batch

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcv/internal/material"
	"github.com/alexiusacademia/gorcv/internal/matlib"
	"github.com/alexiusacademia/gorcv/internal/section"
	"github.com/alexiusacademia/gorcv/internal/verify"
)

// defaultCover is the concrete cover assumed for imported elements (mm).
const defaultCover = 30.0

// equivalentBarDiameter is the diameter used to re-materialize a total
// steel area as a bar group.
const equivalentBarDiameter = 10.0

// Element is one row of an element file.
type Element struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Params   [6]float64 `json:"params"`
	Material string     `json:"material"`
	As       float64    `json:"as"`       // mm²
	AsPrime  float64    `json:"as_prime"` // mm²
	M        float64    `json:"m_knm"`
	N        float64    `json:"n_kn"`
}

// Result is the verification outcome of one element. Error keeps the
// run going over the remaining rows.
type Result struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	Area      float64 `json:"area"`       // mm²
	CentroidY float64 `json:"centroid_y"` // mm

	NeutralAxis float64 `json:"neutral_axis"` // mm
	Converged   bool    `json:"converged"`
	Mode        string  `json:"mode,omitempty"`

	MomentResistance float64 `json:"moment_resistance"` // kN·m
	Utilization      float64 `json:"utilization"`
	Verified         bool    `json:"verified"`

	Error string `json:"error,omitempty"`
}

// equivalentBars returns the ⌀10 bar count covering a steel area.
func equivalentBars(area float64) int {
	one := math.Pi * equivalentBarDiameter * equivalentBarDiameter / 4
	n := int(math.Round(area / one))
	if n < 1 {
		return 1
	}
	return n
}

// BuildSection assembles the section an element describes, resolving
// its material against the library. Entries that define only one of the
// two materials fall back to the stock C30 concrete or FeB32k steel.
func BuildSection(lib matlib.Library, e Element) (*section.Section, error) {
	sh, err := section.NewShape(e.Type, e.Params[:]...)
	if err != nil {
		return nil, err
	}

	entry, ok := lib[e.Material]
	if e.Material != "" && !ok {
		return nil, fmt.Errorf("element %s: material %q not in library", e.ID, e.Material)
	}

	concrete, err := resolveConcrete(entry)
	if err != nil {
		return nil, err
	}
	steel, err := resolveSteel(entry)
	if err != nil {
		return nil, err
	}

	sec, err := section.New(sh, concrete, steel, defaultCover)
	if err != nil {
		return nil, err
	}
	if e.As > 0 {
		sec.AddBottomBar(equivalentBarDiameter, equivalentBars(e.As))
	}
	if e.AsPrime > 0 {
		sec.AddTopBar(equivalentBarDiameter, equivalentBars(e.AsPrime))
	}
	return sec, nil
}

func resolveConcrete(entry matlib.Entry) (*material.Concrete, error) {
	if entry.IsConcrete() {
		return entry.ToConcrete()
	}
	return material.NewConcrete(30)
}

func resolveSteel(entry matlib.Entry) (*material.Steel, error) {
	if entry.IsSteel() {
		return entry.ToSteel()
	}
	return material.NewSteel(320, material.Soft)
}

// Run verifies every element in flexure and collects one result per
// row; a failing row is reported in its result instead of aborting the
// run.
func Run(lib matlib.Library, elements []Element) []Result {
	results := make([]Result, 0, len(elements))
	for _, e := range elements {
		results = append(results, runOne(lib, e))
	}
	return results
}

func runOne(lib matlib.Library, e Element) Result {
	res := Result{ID: e.ID, Kind: e.Type}

	sec, err := BuildSection(lib, e)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	props := sec.Properties()
	res.Area = props.Area
	res.CentroidY = props.CentroidY

	if e.M == 0 {
		// Nothing to verify: geometric properties only.
		res.Converged = true
		return res
	}
	if sec.As() == 0 {
		// A moment without tension steel is a data error, not a quiet
		// properties-only row.
		res.Error = fmt.Sprintf("element %s: section has no tension reinforcement", e.ID)
		return res
	}

	flex, err := verify.Flexure(sec, e.M)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.NeutralAxis = flex.NeutralAxis.X
	res.Converged = flex.NeutralAxis.Converged
	res.Mode = string(flex.NeutralAxis.Mode)
	res.MomentResistance = flex.MomentResistance
	res.Utilization = math.Max(flex.UtilizationConcrete, flex.UtilizationSteel)
	res.Verified = flex.Verified
	return res
}
