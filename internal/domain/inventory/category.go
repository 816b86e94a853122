package inventory

// Category is the fixed vocabulary for stock classification.
type Category string

const (
	CategoryFluids       Category = "Fluidos"
	CategoryFilters      Category = "Filtros"
	CategoryBrakes       Category = "Frenos"
	CategoryElectrical   Category = "Eléctrico"
	CategoryBelts        Category = "Correas"
	CategoryIgnition     Category = "Encendido"
	CategorySuspension   Category = "Suspensión"
	CategoryTransmission Category = "Transmisión"
	CategoryEngine       Category = "Motor"
	CategoryOther        Category = "Otros"
)

var categories = []Category{
	CategoryFluids,
	CategoryFilters,
	CategoryBrakes,
	CategoryElectrical,
	CategoryBelts,
	CategoryIgnition,
	CategorySuspension,
	CategoryTransmission,
	CategoryEngine,
	CategoryOther,
}

// Categories returns the vocabulary in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Stock bands used by the inventory movement report.
const (
	BandLow     = "Bajo"
	BandMedium  = "Medio"
	BandOptimal = "Óptimo"
)

// Band classifies an on-hand quantity.
func Band(quantity int) string {
	switch {
	case quantity < 5:
		return BandLow
	case quantity < 10:
		return BandMedium
	default:
		return BandOptimal
	}
}
