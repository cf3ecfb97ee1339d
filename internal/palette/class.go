package palette

// Class enumerates the circuit element kinds a pixel can belong to.
type Class uint8

const (
	// ClassEmpty marks background pixels. Empty pixels never form regions.
	ClassEmpty Class = iota
	// ClassRedWire is the first wire colour.
	ClassRedWire
	// ClassBlueWire is the second wire colour.
	ClassBlueWire
	// ClassInput reads adjacent wires.
	ClassInput
	// ClassOutput drives adjacent wires.
	ClassOutput
	// ClassXor computes the parity of its adjacent inputs.
	ClassXor
	// ClassAnd computes the conjunction of its adjacent inputs.
	ClassAnd

	numClasses
)

// Classes lists every non-empty class in declaration order.
func Classes() []Class {
	return []Class{ClassRedWire, ClassBlueWire, ClassInput, ClassOutput, ClassXor, ClassAnd}
}

func (c Class) String() string {
	switch c {
	case ClassEmpty:
		return "empty"
	case ClassRedWire:
		return "red wire"
	case ClassBlueWire:
		return "blue wire"
	case ClassInput:
		return "input"
	case ClassOutput:
		return "output"
	case ClassXor:
		return "xor"
	case ClassAnd:
		return "and"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the declared classes.
func (c Class) Valid() bool { return c < numClasses }

// IsWire reports whether c is either wire colour.
func (c Class) IsWire() bool { return c == ClassRedWire || c == ClassBlueWire }

// IsGate reports whether c is a logic gate.
func (c Class) IsGate() bool { return c == ClassXor || c == ClassAnd }

// Resel is the classification of a single pixel.
type Resel struct {
	Class  Class
	Active bool
}

// Empty is the resel of a background pixel.
var Empty = Resel{Class: ClassEmpty}

// IsEmpty reports whether r is background.
func (r Resel) IsEmpty() bool { return r.Class == ClassEmpty }

// Normalize drops the state of empty resels so that every background pixel
// compares equal.
func (r Resel) Normalize() Resel {
	if r.Class == ClassEmpty {
		return Empty
	}
	return r
}

func (r Resel) String() string {
	if r.Class == ClassEmpty {
		return r.Class.String()
	}
	if r.Active {
		return r.Class.String() + " (on)"
	}
	return r.Class.String() + " (off)"
}
