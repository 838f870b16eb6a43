package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "saude", Fold("Saúde"))
	assert.Equal(t, "financas", Fold("  Finanças "))
	assert.Equal(t, "work", Fold("WORK"))
	assert.Equal(t, "", Fold("   "))
}

func TestResolver_Normalize(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name        string
		raw         string
		wantName    string
		wantDisplay string
	}{
		{name: "canonical passes through", raw: "saude", wantName: "saude", wantDisplay: "Saúde"},
		{name: "accented input folds", raw: "Saúde", wantName: "saude", wantDisplay: "Saúde"},
		{name: "english synonym", raw: "Health", wantName: "saude", wantDisplay: "Saúde"},
		{name: "workout synonym", raw: "workout", wantName: "fitness", wantDisplay: "Fitness"},
		{name: "study synonym", raw: "Study", wantName: "estudos", wantDisplay: "Estudos"},
		{name: "near miss matches fuzzily", raw: "helth", wantName: "saude", wantDisplay: "Saúde"},
		{name: "unknown becomes ad hoc", raw: "Gardening Club", wantName: "gardening club", wantDisplay: "Gardening Club"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Normalize(tt.raw)
			assert.Equal(t, tt.wantName, got.CanonicalName)
			assert.Equal(t, tt.wantDisplay, got.DisplayName)
		})
	}
}

func TestResolver_NormalizeIdempotent(t *testing.T) {
	r := NewResolver()

	for _, raw := range []string{"Saúde", "workout", "Gardening Club", "helth"} {
		first := r.Normalize(raw)
		second := r.Normalize(first.CanonicalName)
		assert.Equal(t, first.CanonicalName, second.CanonicalName, "normalize(%q) is not idempotent", raw)
	}
}

func TestResolver_NormalizeEmpty(t *testing.T) {
	r := NewResolver()
	got := r.Normalize("   ")
	assert.Empty(t, got.CanonicalName)
	assert.Equal(t, "tag", got.Icon)
}

func TestResolver_ResolveFromTags(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name   string
		tags   []string
		want   string
		wantOK bool
	}{
		{name: "direct tag match", tags: []string{"gym"}, want: "fitness", wantOK: true},
		{name: "accented tag folds", tags: []string{"Saúde"}, want: "saude", wantOK: true},
		{name: "first table entry wins", tags: []string{"journal", "sleep"}, want: "saude", wantOK: true},
		{name: "synonym fallback", tags: []string{"wellness"}, want: "saude", wantOK: true},
		{name: "no match", tags: []string{"zzz", "misc"}, wantOK: false},
		{name: "empty tags", tags: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolveFromTags(tt.tags)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
