package conda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleFromPath(t *testing.T) {
	tests := []struct {
		rel    string
		want   string
		wantOK bool
	}{
		{"numpy/__init__.py", "numpy", true},
		{"numpy/core/__init__.py", "numpy.core", true},
		{"six.py", "six", true},
		{"numpy/core/multiarray.cpython-36m-x86_64-linux-gnu.so", "numpy.core.multiarray", true},
		{"_ssl.pyd", "_ssl", true},
		{"__init__.py", "", false},
		{"README.txt", "", false},
		{"data/.so", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got, ok := moduleFromPath(tt.rel)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequirementName(t *testing.T) {
	tests := []struct {
		req    string
		want   string
		wantOK bool
	}{
		{"idna (<2.6,>=2.5)", "idna", true},
		{"python_dateutil>=2", "python-dateutil", true},
		{"PySocks (>=1.5.6); extra == 'socks'", "", false},
		{"win-inet-pton; sys_platform == \"win32\"", "win-inet-pton", true},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.req, func(t *testing.T) {
			got, ok := requirementName(tt.req)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManifestFromFileName(t *testing.T) {
	m := manifestFromFileName("python-dateutil-2.6.0-py36_0.json")
	assert.Equal(t, "python-dateutil", m.Name)
	assert.Equal(t, "2.6.0", m.Version)
	assert.Equal(t, "py36_0", m.Build)
}

func TestParseRequiresTxt(t *testing.T) {
	got := parseRequiresTxt([]byte("six>=1.0\nRequests\n\n[security]\npyOpenSSL\n"))
	assert.Equal(t, []string{"six", "requests"}, got)
}
