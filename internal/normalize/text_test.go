package normalize

import (
	"bytes"
	"log"
	"reflect"
	"strings"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple phrase",
			input: "forty two",
			want:  []string{"forty", "two"},
		},
		{
			name:  "mixed case",
			input: "One Hundred And Forty Two",
			want:  []string{"one", "hundred", "and", "forty", "two"},
		},
		{
			name:  "extra whitespace",
			input: "  negative\tseven \n thousand  ",
			want:  []string{"negative", "seven", "thousand"},
		},
		{
			name:  "hyphen and comma",
			input: "one million, forty-two",
			want:  []string{"one", "million", "forty", "two"},
		},
		{
			name:  "full width letters",
			input: "ＴＷＯ",
			want:  []string{"two"},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("  Three   POINT one "); got != "three point one" {
		t.Errorf("Canonical() = %q", got)
	}
}

func TestTokensDebugTracesTokens(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	got := TokensDebug(true, "Forty-Two")
	if !reflect.DeepEqual(got, []string{"forty", "two"}) {
		t.Fatalf("TokensDebug() = %v", got)
	}

	out := buf.String()
	for _, want := range []string{"DEBUG START", `Tokens (2): [0]"forty" [1]"two"`, "DEBUG END"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug trace missing %q:\n%s", want, out)
		}
	}
}
