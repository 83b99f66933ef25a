package ident

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+-[0-9a-f]{8}$`)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBase string
	}{
		{name: "simple name", input: "Jane Doe", wantBase: "jane-doe"},
		{name: "extra whitespace", input: "  Jane    Doe  ", wantBase: "jane-doe"},
		{name: "punctuation dropped", input: "O'Brien & Sons!", wantBase: "obrien-sons"},
		{name: "digits kept", input: "Guest 42", wantBase: "guest-42"},
		{name: "tabs and newlines", input: "Ana\tMaria\nLopez", wantBase: "ana-maria-lopez"},
		{name: "non ascii only", input: "Ñoño", wantBase: "oo"},
		{name: "nothing usable", input: "!!!", wantBase: "guest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug := GenerateSlug(tt.input)
			assert.Regexp(t, slugPattern, slug)
			assert.True(t, strings.HasPrefix(slug, tt.wantBase+"-"), "slug %q should start with %q", slug, tt.wantBase)
			assert.Equal(t, strings.ToLower(slug), slug)
		})
	}
}

func TestGenerateSlugFitsColumn(t *testing.T) {
	long := strings.Repeat("a", 300)
	slug := GenerateSlug(long)
	assert.Len(t, slug, MaxSlugLength)
	assert.Regexp(t, slugPattern, slug)

	// A cut that lands on a word boundary must not leave a dangling dash.
	words := strings.Repeat("a", maxSlugBase-1) + " bbbb"
	base := SlugBase(words)
	assert.Equal(t, strings.Repeat("a", maxSlugBase-1), base)
	assert.LessOrEqual(t, len(GenerateSlug(words)), MaxSlugLength)
	assert.NotContains(t, GenerateSlug(words), "--")
}

func TestGenerateSlugSuffixDiffers(t *testing.T) {
	a := GenerateSlug("Same Name")
	b := GenerateSlug("Same Name")
	assert.NotEqual(t, a, b)
}

func TestGenerateQRString(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := GenerateQRString()
		require.NoError(t, err)
		assert.Len(t, code, DefaultQRLength)
		assert.True(t, IsValidQRString(code, DefaultQRLength), "unexpected code %q", code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 150)
}

func TestGenerateQRStringN(t *testing.T) {
	code, err := GenerateQRStringN(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)

	_, err = GenerateQRStringN(0)
	assert.Error(t, err)
}

func TestIsValidQRString(t *testing.T) {
	assert.True(t, IsValidQRString("AB12Z", 5))
	assert.False(t, IsValidQRString("ab12z", 5))
	assert.False(t, IsValidQRString("AB12", 5))
	assert.False(t, IsValidQRString("AB-2Z", 5))
}

func TestNormalizeQRString(t *testing.T) {
	assert.Equal(t, "AB12Z", NormalizeQRString("  ab12z \n"))
}
