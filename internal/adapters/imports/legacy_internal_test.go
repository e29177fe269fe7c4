package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormaliseLegacy(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		want        string
		wantChanged bool
	}{
		{"except comma", "except ValueError, e:", "except ValueError as e:", true},
		{"raise comma", `raise ValueError, "bad"`, `raise ValueError("bad")`, true},
		{"backticks", "s = `x`", "s = repr(x)", true},
		{"diamond", "if a <> b:", "if a != b:", true},
		{"octal", "os.chmod(p, 0755)", "os.chmod(p, 0o755)", true},
		{"long literal", "n = 10L", "n = 10", true},
		{"raw unicode", `p = ur"\d"`, `p = r"\d"`, true},
		{"modern source", "import os", "import os", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normaliseLegacy(tt.src)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.want, got)
		})
	}
}
