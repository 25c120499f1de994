package rd2229

// ConcreteGrade is a named historical concrete mix with its documented
// parameters, from the Santarella handbooks. All stresses and moduli in
// kg/cm².
type ConcreteGrade struct {
	Name            string
	Resistance      float64 // σc at 28 days
	SigmaAllowable  float64 // bending compression
	TauAllowable    float64 // shear
	Modulus         float64 // Ec
	Homogenization  float64 // n = Es/Ec
	Cement          CementType
	WaterCement     float64
	Notes           string
}

// SteelGrade is a named historical reinforcement steel with its
// documented parameters, in kg/cm².
type SteelGrade struct {
	Name           string
	Designation    string
	Yield          float64
	SigmaAllowable float64
	Modulus        float64
	ImprovedBond   bool
	Notes          string
}

// ConcreteGrades lists the historical mixes most common in existing-
// building verification, low to high resistance.
var ConcreteGrades = []ConcreteGrade{
	{
		Name: "C150", Resistance: 150, SigmaAllowable: 15, TauAllowable: 2.5,
		Modulus: 250000, Homogenization: 8.0, Cement: CementNormal, WaterCement: 1.10,
		Notes: "edilizia ordinaria",
	},
	{
		Name: "C200", Resistance: 200, SigmaAllowable: 20, TauAllowable: 3.0,
		Modulus: 303000, Homogenization: 6.6, Cement: CementNormal, WaterCement: 0.95,
		Notes: "uso generale",
	},
	{
		Name: "C240", Resistance: 240, SigmaAllowable: 24, TauAllowable: 3.5,
		Modulus: 340000, Homogenization: 5.9, Cement: CementNormal, WaterCement: 0.80,
		Notes: "strutture ordinarie importanti",
	},
	{
		Name: "C280", Resistance: 280, SigmaAllowable: 28, TauAllowable: 4.0,
		Modulus: 373000, Homogenization: 5.4, Cement: CementNormal, WaterCement: 0.70,
		Notes: "calcestruzzo standard dell'epoca",
	},
	{
		Name: "C330", Resistance: 330, SigmaAllowable: 33, TauAllowable: 4.5,
		Modulus: 407000, Homogenization: 4.9, Cement: CementHighResistance, WaterCement: 0.60,
		Notes: "alta resistenza",
	},
	{
		Name: "C400", Resistance: 400, SigmaAllowable: 40, TauAllowable: 5.0,
		Modulus: 441000, Homogenization: 4.5, Cement: CementHighResistance, WaterCement: 0.50,
		Notes: "ponti e strutture critiche",
	},
}

// SteelGrades lists the historical reinforcement steels (FeB plain bars
// and Aq qualified rolled steels).
var SteelGrades = []SteelGrade{
	{
		Name: "FeB32k", Designation: "FeB32k", Yield: 1400, SigmaAllowable: 609,
		Modulus: SteelModulus, ImprovedBond: false, Notes: "acciaio dolce, barre lisce",
	},
	{
		Name: "FeB38k", Designation: "FeB38k", Yield: 1800, SigmaAllowable: 800,
		Modulus: SteelModulus, ImprovedBond: true, Notes: "acciaio semiduro",
	},
	{
		Name: "FeB44k", Designation: "FeB44k", Yield: 2000, SigmaAllowable: 880,
		Modulus: SteelModulus, ImprovedBond: true, Notes: "acciaio duro",
	},
	{
		Name: "Aq50", Designation: "Aq50", Yield: 500, SigmaAllowable: 220,
		Modulus: 2050000, ImprovedBond: true, Notes: "laminato qualificato",
	},
	{
		Name: "Aq60", Designation: "Aq60", Yield: 600, SigmaAllowable: 264,
		Modulus: 2050000, ImprovedBond: true, Notes: "laminato qualificato",
	},
	{
		Name: "Aq70", Designation: "Aq70", Yield: 700, SigmaAllowable: 308,
		Modulus: 2050000, ImprovedBond: true, Notes: "laminato qualificato",
	},
	{
		Name: "Aq80", Designation: "Aq80", Yield: 800, SigmaAllowable: 352,
		Modulus: 2050000, ImprovedBond: true, Notes: "laminato qualificato",
	},
}

// FindConcreteGrade returns the named historical mix, or false.
func FindConcreteGrade(name string) (ConcreteGrade, bool) {
	for _, g := range ConcreteGrades {
		if g.Name == name {
			return g, true
		}
	}
	return ConcreteGrade{}, false
}

// FindSteelGrade returns the named historical steel, or false.
func FindSteelGrade(name string) (SteelGrade, bool) {
	for _, g := range SteelGrades {
		if g.Name == name || g.Designation == name {
			return g, true
		}
	}
	return SteelGrade{}, false
}
