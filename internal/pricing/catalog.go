package pricing

// Category is a top-level waste classification. The set is closed.
type Category string

const (
	CategoryPlastic     Category = "plastic"
	CategoryPaper       Category = "paper"
	CategoryElectronics Category = "electronics"
	CategoryGlass       Category = "glass"
	CategoryMetal       Category = "metal"
	CategoryOrganic     Category = "organic"
	CategoryOther       Category = "other"
)

// Subtype refines a category. Each subtype has exactly one rate row.
type Subtype string

const (
	SubtypePETBottles   Subtype = "pet_bottles"
	SubtypeHDPE         Subtype = "hdpe"
	SubtypeMixedPlastic Subtype = "mixed_plastic"

	SubtypeNewspaper   Subtype = "newspaper"
	SubtypeCardboard   Subtype = "cardboard"
	SubtypeOfficePaper Subtype = "office_paper"

	SubtypeLaptop       Subtype = "laptop"
	SubtypePhone        Subtype = "phone"
	SubtypeCables       Subtype = "cables"
	SubtypeCircuitBoard Subtype = "circuit_board"

	SubtypeGlassBottles Subtype = "glass_bottles"
	SubtypeGlassCullet  Subtype = "glass_cullet"

	SubtypeCopper    Subtype = "copper"
	SubtypeBrass     Subtype = "brass"
	SubtypeAluminum  Subtype = "aluminum"
	SubtypeIron      Subtype = "iron"
	SubtypeTin       Subtype = "tin"
	SubtypeStainless Subtype = "stainless"

	SubtypeGardenWaste Subtype = "garden_waste"
	SubtypeFoodWaste   Subtype = "food_waste"

	SubtypeMixedWaste Subtype = "mixed_waste"
)

// Unit of pricing for a subtype. Weight is always collected in kilograms;
// for PerItem subtypes the rate is a flat amount per pickup regardless of the
// entered weight.
type Unit string

const (
	PerKilogram Unit = "per_kg"
	PerItem     Unit = "per_item"
)

// Rate is the static price range for one subtype, in rupees.
type Rate struct {
	Min  float64
	Max  float64
	Unit Unit
}

var catalog = map[Category][]Subtype{
	CategoryPlastic:     {SubtypePETBottles, SubtypeHDPE, SubtypeMixedPlastic},
	CategoryPaper:       {SubtypeNewspaper, SubtypeCardboard, SubtypeOfficePaper},
	CategoryElectronics: {SubtypeLaptop, SubtypePhone, SubtypeCables, SubtypeCircuitBoard},
	CategoryGlass:       {SubtypeGlassBottles, SubtypeGlassCullet},
	CategoryMetal:       {SubtypeCopper, SubtypeBrass, SubtypeAluminum, SubtypeIron, SubtypeTin, SubtypeStainless},
	CategoryOrganic:     {SubtypeGardenWaste, SubtypeFoodWaste},
	CategoryOther:       {SubtypeMixedWaste},
}

var rates = map[Subtype]Rate{
	SubtypePETBottles:   {Min: 15, Max: 25, Unit: PerKilogram},
	SubtypeHDPE:         {Min: 20, Max: 35, Unit: PerKilogram},
	SubtypeMixedPlastic: {Min: 8, Max: 14, Unit: PerKilogram},

	SubtypeNewspaper:   {Min: 10, Max: 14, Unit: PerKilogram},
	SubtypeCardboard:   {Min: 7, Max: 12, Unit: PerKilogram},
	SubtypeOfficePaper: {Min: 12, Max: 18, Unit: PerKilogram},

	SubtypeLaptop:       {Min: 300, Max: 1200, Unit: PerItem},
	SubtypePhone:        {Min: 100, Max: 450, Unit: PerItem},
	SubtypeCables:       {Min: 60, Max: 110, Unit: PerKilogram},
	SubtypeCircuitBoard: {Min: 180, Max: 320, Unit: PerKilogram},

	SubtypeGlassBottles: {Min: 2, Max: 4, Unit: PerKilogram},
	SubtypeGlassCullet:  {Min: 1, Max: 3, Unit: PerKilogram},

	SubtypeCopper:    {Min: 400, Max: 570, Unit: PerKilogram},
	SubtypeBrass:     {Min: 280, Max: 360, Unit: PerKilogram},
	SubtypeAluminum:  {Min: 100, Max: 150, Unit: PerKilogram},
	SubtypeIron:      {Min: 25, Max: 40, Unit: PerKilogram},
	SubtypeTin:       {Min: 20, Max: 32, Unit: PerKilogram},
	SubtypeStainless: {Min: 35, Max: 55, Unit: PerKilogram},

	SubtypeGardenWaste: {Min: 1, Max: 2, Unit: PerKilogram},
	SubtypeFoodWaste:   {Min: 1, Max: 2, Unit: PerKilogram},

	SubtypeMixedWaste: {Min: 2, Max: 5, Unit: PerKilogram},
}

// Categories returns the closed category set in catalog order.
func Categories() []Category {
	return []Category{
		CategoryPlastic,
		CategoryPaper,
		CategoryElectronics,
		CategoryGlass,
		CategoryMetal,
		CategoryOrganic,
		CategoryOther,
	}
}

// Subtypes returns the subtypes registered under a category, or nil for an
// unknown category.
func Subtypes(category Category) []Subtype {
	return catalog[category]
}

// IsKnown reports whether subtype is registered under category.
func IsKnown(category Category, subtype Subtype) bool {
	for _, s := range catalog[category] {
		if s == subtype {
			return true
		}
	}
	return false
}
