package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContactStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ContactStatus
		wantErr error
	}{
		{name: "lead", raw: "lead", want: StatusLead},
		{name: "prospect", raw: "prospect", want: StatusProspect},
		{name: "customer", raw: "customer", want: StatusCustomer},
		{name: "churned", raw: "churned", want: StatusChurned},
		{name: "unknown rejected", raw: "vip", wantErr: ErrInvalidValue},
		{name: "empty rejected", raw: "", wantErr: ErrInvalidValue},
		{name: "case sensitive", raw: "Lead", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseContactStatus(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagListRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tags TagList
	}{
		{name: "empty", tags: TagList{}},
		{name: "nil encodes as empty", tags: nil},
		{name: "single", tags: TagList{"enterprise"}},
		{name: "multiple ordered", tags: TagList{"startup", "tech", "startup"}},
		{name: "delimiter characters survive", tags: TagList{"a|b", "c,d", `e"f`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := tt.tags.Encode()
			require.NoError(t, err)

			decoded, err := DecodeTags(encoded)
			require.NoError(t, err)

			want := tt.tags
			if want == nil {
				want = TagList{}
			}
			assert.Equal(t, want, decoded)
		})
	}
}

func TestDecodeTagsEmptyString(t *testing.T) {
	decoded, err := DecodeTags("")
	require.NoError(t, err)
	assert.Equal(t, TagList{}, decoded)
}

func TestTagListHas(t *testing.T) {
	tags := TagList{"enterprise", "tech"}
	assert.True(t, tags.Has("tech"))
	assert.False(t, tags.Has("startup"))
	assert.False(t, TagList{}.Has("anything"))
}
