package schema

// Kind identifies how a field's raw bits are interpreted.
type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindBool
	KindFloat
	KindEnum
)

var kindNames = [...]string{
	KindUint:  "uint",
	KindInt:   "int",
	KindBool:  "bool",
	KindFloat: "float",
	KindEnum:  "enum",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Integral reports whether the kind carries an integer payload.
func (k Kind) Integral() bool {
	switch k {
	case KindUint, KindInt, KindEnum:
		return true
	default:
		return false
	}
}

// BitOrder is the within-byte bit numbering convention for a field.
type BitOrder uint8

const (
	// MSBFirst numbers bit 0 of the field at the highest-order unconsumed
	// bit of each byte. This is the convention of most wire protocols.
	MSBFirst BitOrder = iota
	// LSBFirst numbers bit 0 at the lowest-order unconsumed bit, the
	// convention of C bitfields on little-endian targets and many register maps.
	LSBFirst
)

func (o BitOrder) String() string {
	if o == LSBFirst {
		return "lsb"
	}
	return "msb"
}

// ByteOrder is the multi-byte combination convention for fields wider
// than one byte.
type ByteOrder uint8

const (
	// BigEndian treats the first byte in address order as the most significant.
	BigEndian ByteOrder = iota
	// LittleEndian treats the last byte in address order as the most significant.
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little"
	}
	return "big"
}
