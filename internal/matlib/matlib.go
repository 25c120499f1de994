// Package matlib manages the named material library: a set of built-in
// presets merged with user entries persisted as a JSON file. Entry
// values are informational (they round-trip through the file as-is);
// the engine materials are rebuilt from the defining parameter through
// the material constructors.
package matlib

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/alexiusacademia/gorcv/internal/material"
	"github.com/alexiusacademia/gorcv/internal/rd2229"
	"github.com/alexiusacademia/gorcv/internal/units"
)

// Entry is one library record. Concrete entries carry rck (or the
// legacy resistance), steel entries fyk (or the legacy yield); an entry
// naming a catalog grade resolves through the grade tables instead.
// SI values and legacy kg/cm² values sit side by side.
type Entry struct {
	// Concrete
	Rck             float64 `json:"rck,omitempty"`              // MPa
	Ec              float64 `json:"ec,omitempty"`               // MPa
	SigmaConcrete   float64 `json:"sigma_cls_amm,omitempty"`    // MPa
	ResistanceKgCm2 float64 `json:"resistenza_kgcm2,omitempty"` // legacy
	Cement          string  `json:"cemento,omitempty"`
	WaterCement     float64 `json:"acqua_cemento,omitempty"`

	// Steel
	Fyk        float64 `json:"fyk,omitempty"`        // MPa
	Es         float64 `json:"es,omitempty"`         // MPa
	SigmaSteel float64 `json:"sigma_s_amm,omitempty"`
	YieldKgCm2 float64 `json:"fyk_kgcm2,omitempty"` // legacy
	Hard       bool    `json:"duro,omitempty"`

	// Grade resolves against the modern designations first, then the
	// historical catalog.
	Grade string `json:"grade,omitempty"`
}

// IsConcrete reports whether the entry defines a concrete.
func (e Entry) IsConcrete() bool {
	if e.Grade != "" {
		_, ok := rd2229.FindConcreteGrade(e.Grade)
		return ok
	}
	return e.Rck > 0 || e.ResistanceKgCm2 > 0
}

// IsSteel reports whether the entry defines a steel.
func (e Entry) IsSteel() bool {
	if e.Grade != "" {
		if _, err := material.NewSteelFromType(e.Grade); err == nil {
			return true
		}
		_, ok := rd2229.FindSteelGrade(e.Grade)
		return ok
	}
	return e.Fyk > 0 || e.YieldKgCm2 > 0
}

func (e Entry) family() material.GradeFamily {
	if e.Hard {
		return material.Hard
	}
	return material.Soft
}

func (e Entry) cement() rd2229.CementType {
	if e.Cement == "" {
		return rd2229.CementNormal
	}
	return rd2229.CementType(e.Cement)
}

// ToConcrete builds the engine concrete the entry defines.
func (e Entry) ToConcrete() (*material.Concrete, error) {
	switch {
	case e.Grade != "":
		return material.NewConcreteFromHistoricalGrade(e.Grade)
	case e.ResistanceKgCm2 > 0:
		return material.NewHistoricalConcrete(e.ResistanceKgCm2, e.cement(), e.WaterCement)
	case e.Rck > 0:
		return material.NewConcrete(e.Rck)
	default:
		return nil, fmt.Errorf("entry defines no concrete strength")
	}
}

// ToSteel builds the engine steel the entry defines.
func (e Entry) ToSteel() (*material.Steel, error) {
	switch {
	case e.Grade != "":
		// A legacy yield value marks the grade as historical; FeB names
		// exist in both catalogs.
		if e.YieldKgCm2 > 0 {
			return material.NewSteelFromHistoricalGrade(e.Grade)
		}
		if s, err := material.NewSteelFromType(e.Grade); err == nil {
			return s, nil
		}
		return material.NewSteelFromHistoricalGrade(e.Grade)
	case e.YieldKgCm2 > 0:
		return material.NewHistoricalSteel(e.YieldKgCm2, e.family())
	case e.Fyk > 0:
		return material.NewSteel(e.Fyk, e.family())
	default:
		return nil, fmt.Errorf("entry defines no steel yield strength")
	}
}

// Library maps material names to entries. The zero value is usable.
type Library map[string]Entry

// Default returns the built-in library: the modern presets plus every
// historical catalog grade.
func Default() Library {
	lib := Library{
		"C30 (Rck30)": {Rck: 30, Ec: 24200, SigmaConcrete: 3.0},
		"C25 (Rck25)": {Rck: 25, Ec: 22800, SigmaConcrete: 2.6},
		"FeB32k":      {Grade: "FeB32k", Fyk: 320, Es: 206000, SigmaSteel: 139.1},
	}
	for _, g := range rd2229.ConcreteGrades {
		lib[g.Name+" (storico)"] = Entry{
			Grade:           g.Name,
			Rck:             units.KgCm2ToMPa(g.Resistance),
			ResistanceKgCm2: g.Resistance,
			SigmaConcrete:   units.KgCm2ToMPa(g.SigmaAllowable),
			Cement:          string(g.Cement),
			WaterCement:     g.WaterCement,
		}
	}
	for _, g := range rd2229.SteelGrades {
		name := g.Name
		if _, exists := lib[name]; exists || g.Yield > 1000 {
			// FeB designations exist in both eras; suffix the legacy ones.
			name = g.Name + " (storico)"
		}
		lib[name] = Entry{
			Grade:      g.Name,
			Fyk:        units.KgCm2ToMPa(g.Yield),
			YieldKgCm2: g.Yield,
			SigmaSteel: units.KgCm2ToMPa(g.SigmaAllowable),
			Hard:       g.Yield > rd2229.SigmaSteelSoft,
		}
	}
	return lib
}

// Load reads a library file and merges it over the defaults. A missing
// file is not an error: the defaults are returned unchanged.
func Load(path string) (Library, error) {
	lib := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return lib, nil
	}
	if err != nil {
		return nil, err
	}
	var user Library
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("material library %s: %w", path, err)
	}
	lib.Merge(user)
	return lib, nil
}

// Save writes the library as indented JSON.
func (l Library) Save(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Merge copies the other library's entries in, overwriting on name
// collision.
func (l Library) Merge(other Library) {
	for name, e := range other {
		l[name] = e
	}
}

// Names returns the entry names in sorted order.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Concrete resolves a named concrete entry.
func (l Library) Concrete(name string) (*material.Concrete, error) {
	e, ok := l[name]
	if !ok {
		return nil, fmt.Errorf("material %q not in library", name)
	}
	if !e.IsConcrete() {
		return nil, fmt.Errorf("material %q is not a concrete", name)
	}
	c, err := e.ToConcrete()
	if err != nil {
		return nil, err
	}
	if c.Name == "" {
		c.Name = name
	}
	return c, nil
}

// Steel resolves a named steel entry.
func (l Library) Steel(name string) (*material.Steel, error) {
	e, ok := l[name]
	if !ok {
		return nil, fmt.Errorf("material %q not in library", name)
	}
	if !e.IsSteel() {
		return nil, fmt.Errorf("material %q is not a steel", name)
	}
	s, err := e.ToSteel()
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}
