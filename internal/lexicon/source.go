package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Spec is the serialised form of a lexicon: three ordered word tables.
type Spec struct {
	// Units holds zero through nineteen, index = value.
	Units []string `json:"units" yaml:"units" toml:"units" validate:"len=20,dive,required,alpha,lowercase"`

	// Tens holds the spelling of n*10 at index n; indices 0 and 1 are empty.
	Tens []string `json:"tens" yaml:"tens" toml:"tens" validate:"len=10,dive,omitempty,alpha,lowercase"`

	// Scales holds hundred, thousand, million, ... in increasing magnitude.
	Scales []string `json:"scales" yaml:"scales" toml:"scales" validate:"min=2,max=7,dive,required,alpha,lowercase"`
}

// Format names a lexicon file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported lexicon file extension %q", filepath.Ext(path))
}

// LoadFile reads, decodes and validates a lexicon file.
func LoadFile(path string) (*Lexicon, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file: %w", err)
	}

	lex, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return lex, nil
}

// Decode parses data in the given format and builds a validated Lexicon.
func Decode(data []byte, format Format) (*Lexicon, error) {
	var spec Spec
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &spec)
	case FormatYAML:
		err = yaml.Unmarshal(data, &spec)
	case FormatTOML:
		err = toml.Unmarshal(data, &spec)
	default:
		return nil, fmt.Errorf("unsupported lexicon format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s lexicon: %w", format, err)
	}

	return FromSpec(spec)
}

// FromSpec validates the tables field by field and then applies the
// structural checks of New.
func FromSpec(spec Spec) (*Lexicon, error) {
	if err := validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	return New(spec.Units, spec.Tens, spec.Scales)
}
