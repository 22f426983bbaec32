package billing

// Floor identifies a floor of the building
type Floor string

// BedType identifies the kind of accommodation on a floor
type BedType string

const (
	FloorSecond Floor = "2nd"
	FloorThird  Floor = "3rd"

	BedTypeBed     BedType = "Bed"
	BedTypeRoom    BedType = "Room"
	BedTypeSpecial BedType = "Special" // only offered on the 2nd floor
)

// RateKey identifies one entry in the rate table
type RateKey struct {
	Floor   Floor
	BedType BedType
}

// RateTable maps (floor, bed type) to the monthly rent amount.
// Every combination active for some member must have an entry.
type RateTable map[RateKey]int64

// Lookup returns the monthly rent for a floor/bed-type pair, or a
// ConfigurationError when no entry exists
func (t RateTable) Lookup(floor Floor, bedType BedType) (int64, error) {
	rent, ok := t[RateKey{Floor: floor, BedType: bedType}]
	if !ok {
		return 0, &ConfigurationError{Floor: floor, BedType: bedType}
	}
	return rent, nil
}

// ValidFloor reports whether the floor is one the building has
func ValidFloor(f Floor) bool {
	return f == FloorSecond || f == FloorThird
}

// ValidBedType reports whether the bed type exists on the given floor.
// Special beds are only available on the 2nd floor.
func ValidBedType(f Floor, b BedType) bool {
	switch b {
	case BedTypeBed, BedTypeRoom:
		return true
	case BedTypeSpecial:
		return f == FloorSecond
	default:
		return false
	}
}
