package section

import "fmt"

// shapeParams maps factory keywords to the ordered parameter slots each
// variant consumes from p1..p6.
var shapeParams = map[string][]string{
	"rettangolare":   {"b", "h"},
	"T":              {"bw", "h", "bf", "tf"},
	"I":              {"bw", "h", "bf_sup", "tf_sup", "bf_inf", "tf_inf"},
	"L":              {"b1", "t1", "h", "b2", "t2"},
	"U":              {"b", "h", "tf", "tw"},
	"rett_cava":      {"b", "h", "tw", "ts", "ti"},
	"circolare":      {"D"},
	"circolare_cava": {"De", "Di"},
}

// Kinds returns the supported factory keywords.
func Kinds() []string {
	return []string{
		"rettangolare", "T", "I", "L", "U",
		"rett_cava", "circolare", "circolare_cava",
	}
}

// ParamNames returns the ordered parameter names a keyword expects, or
// nil for an unknown keyword.
func ParamNames(kind string) []string {
	return shapeParams[kind]
}

// NewShape builds a validated shape from a factory keyword and its
// positional parameters in millimeters.
func NewShape(kind string, params ...float64) (Shape, error) {
	names, ok := shapeParams[kind]
	if !ok {
		return nil, configErrorf("unknown section type %q (valid: %v)", kind, Kinds())
	}
	if len(params) < len(names) {
		return nil, configErrorf("section type %q requires %d parameters (%v), got %d",
			kind, len(names), names, len(params))
	}
	p := params
	var sh Shape
	switch kind {
	case "rettangolare":
		sh = &Rectangular{B: p[0], H: p[1]}
	case "T":
		sh = &Tee{Bw: p[0], H: p[1], Bf: p[2], Tf: p[3]}
	case "I":
		sh = &ISection{Bw: p[0], H: p[1], BfTop: p[2], TfTop: p[3], BfBot: p[4], TfBot: p[5]}
	case "L":
		sh = &LSection{B1: p[0], T1: p[1], H: p[2], B2: p[3], T2: p[4]}
	case "U":
		sh = &Channel{B: p[0], H: p[1], Tf: p[2], Tw: p[3]}
	case "rett_cava":
		sh = &HollowRect{B: p[0], H: p[1], Tw: p[2], Ts: p[3], Ti: p[4]}
	case "circolare":
		sh = &Circular{D: p[0]}
	case "circolare_cava":
		sh = &HollowCircular{De: p[0], Di: p[1]}
	default:
		return nil, configErrorf("unknown section type %q", kind)
	}
	if err := sh.Validate(); err != nil {
		return nil, fmt.Errorf("section type %q: %w", kind, err)
	}
	return sh, nil
}
