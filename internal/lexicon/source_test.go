package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonLexicon = `{
  "units": ["zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
            "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
            "seventeen", "eighteen", "nineteen"],
  "tens": ["", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"],
  "scales": ["hundred", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion"]
}`

const yamlLexicon = `units: [zero, one, two, three, four, five, six, seven, eight, nine, ten, eleven,
  twelve, thirteen, fourteen, fifteen, sixteen, seventeen, eighteen, nineteen]
tens: ["", "", twenty, thirty, forty, fifty, sixty, seventy, eighty, ninety]
scales: [hundred, thousand, million]
`

const tomlLexicon = `units = ["zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
  "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
  "seventeen", "eighteen", "nineteen"]
tens = ["", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"]
scales = ["hundred", "thousand", "million", "billion"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		wantScales int
		wantTop    string
	}{
		{"json", "lexicon.json", jsonLexicon, 7, "quintillion"},
		{"yaml", "lexicon.yaml", yamlLexicon, 3, "million"},
		{"yml", "lexicon.yml", yamlLexicon, 3, "million"},
		{"toml", "lexicon.toml", tomlLexicon, 4, "billion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, err := LoadFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, tt.wantScales, lex.Groups())
			assert.Equal(t, tt.wantTop, lex.GroupScale(tt.wantScales-1))
			assert.Equal(t, "nineteen", lex.Unit(19))
			assert.Equal(t, "ninety", lex.Tens(9))
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "lexicon.ini", jsonLexicon))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "lexicon.json", `{"units": [`))
		assert.Error(t, err)
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "lexicon.json", `{"units": ["zero"], "tens": [], "scales": []}`))
		assert.ErrorIs(t, err, ErrInvalidLexicon)
	})
}

func TestFromSpecValidation(t *testing.T) {
	good := Default().Spec()

	lex, err := FromSpec(good)
	require.NoError(t, err)
	assert.Equal(t, Default().Words(), lex.Words())

	bad := Default().Spec()
	bad.Tens[4] = "Forty"
	_, err = FromSpec(bad)
	assert.ErrorIs(t, err, ErrInvalidLexicon)

	bad = Default().Spec()
	bad.Units[7] = "sev3n"
	_, err = FromSpec(bad)
	assert.ErrorIs(t, err, ErrInvalidLexicon)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.json":     FormatJSON,
		"b.YAML":     FormatYAML,
		"c.yml":      FormatYAML,
		"dir/d.toml": FormatTOML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("lexicon")
	assert.Error(t, err)
}
