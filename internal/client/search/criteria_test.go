package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{in: "", want: SortKey{}},
		{in: "name-asc", want: SortKey{Field: FieldName}},
		{in: "name-desc", want: SortKey{Field: FieldName, Desc: true}},
		{in: "population-asc", want: SortKey{Field: FieldPopulation}},
		{in: "Population-Desc", want: SortKey{Field: FieldPopulation, Desc: true}},
		{in: "area-asc", want: SortKey{Field: FieldArea}},
		{in: "area-desc", want: SortKey{Field: FieldArea, Desc: true}},
		{in: "name", wantErr: true},
		{in: "capital-asc", wantErr: true},
		{in: "name-up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortKey(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSortKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortKey_String(t *testing.T) {
	assert.Equal(t, "", SortKey{}.String())
	assert.Equal(t, "name-asc", SortKey{Field: FieldName}.String())
	assert.Equal(t, "area-desc", SortKey{Field: FieldArea, Desc: true}.String())
}

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     Source
		refine   Refinement
	}{
		{
			name:     "query wins over everything",
			criteria: Criteria{Query: "ind", Region: "Asia", Language: "English"},
			want:     SourceName,
			refine:   Refinement{Query: true, Region: true, Language: true},
		},
		{
			name:     "region before language",
			criteria: Criteria{Region: "Asia", Language: "English"},
			want:     SourceRegion,
			refine:   Refinement{Language: true},
		},
		{
			name:     "language alone",
			criteria: Criteria{Language: "French"},
			want:     SourceLanguage,
		},
		{
			name:     "nothing set",
			criteria: Criteria{FavoritesOnly: true},
			want:     SourceDataset,
		},
		{
			name:     "blank query is ignored",
			criteria: Criteria{Query: "   ", Region: "Europe"},
			want:     SourceRegion,
			refine:   Refinement{Language: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectStrategy(tt.criteria)
			assert.Equal(t, tt.want, got.Source)
			assert.Equal(t, tt.refine, got.Refine)
		})
	}
}
