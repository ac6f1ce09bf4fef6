// Package lexicon holds the English number-word tables shared by the
// formatter and the parser.
//
// A Lexicon is built once, validated, and never mutated afterwards, so a
// single value can serve any number of concurrent conversions.
package lexicon

// Role is the arithmetic role a word plays when parsing.
type Role int

const (
	// RoleUnit covers zero through nineteen.
	RoleUnit Role = iota
	// RoleTens covers twenty through ninety.
	RoleTens
	// RoleScale covers hundred, thousand, million and up.
	RoleScale
	// RoleConnective is the zero-effect word "and".
	RoleConnective
)

func (r Role) String() string {
	switch r {
	case RoleUnit:
		return "unit"
	case RoleTens:
		return "tens"
	case RoleScale:
		return "scale"
	case RoleConnective:
		return "connective"
	default:
		return "unknown"
	}
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseRole maps the textual role used by lexicon sources back to a Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "unit":
		return RoleUnit, true
	case "tens":
		return RoleTens, true
	case "scale":
		return RoleScale, true
	case "connective":
		return RoleConnective, true
	}
	return 0, false
}

// Entry is a single lexicon word and its (multiplier, increment) pair.
// The parser applies an entry as current = current*Multiplier + Increment.
type Entry struct {
	// Word is the canonical lowercase spelling.
	Word string `json:"word"`

	// Role is the word's arithmetic role.
	Role Role `json:"role"`

	// Multiplier is 1 for units, tens and the connective, and the scale
	// magnitude (100, 1000, 1000000, ...) for scale words.
	Multiplier int64 `json:"multiplier"`

	// Increment is the value added after multiplying (0 for scales).
	Increment int64 `json:"increment"`
}

// Stats summarises a lexicon for diagnostics.
type Stats struct {
	Units    int   `json:"units"`
	Tens     int   `json:"tens"`
	Scales   int   `json:"scales"`
	Words    int   `json:"words"`
	MaxScale int64 `json:"max_scale"`
}

// Reserved words that carry meaning outside the lexicon tables. A lexicon
// source may not reuse them for number words.
const (
	ConnectiveWord = "and"
	NegationWord   = "negative"
	PointWord      = "point"
)
