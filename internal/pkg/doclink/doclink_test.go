package doclink

import (
	"testing"

	"github.com/stretchr/testify/require"

	appErr "github.com/astrumlab/tzbrief/internal/pkg/errors"
)

func TestBuild(t *testing.T) {
	require.Equal(t,
		"https://tma.astrum.app/doc/550e8400-e29b-41d4-a716-446655440001",
		Build(DefaultBase, "550e8400-e29b-41d4-a716-446655440001"))
	require.Equal(t,
		"https://example.com/doc/abc",
		Build("https://example.com/", "abc"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		want    string
		wantErr bool
	}{
		{
			name: "canonical link",
			link: "https://tma.astrum.app/doc/550e8400-e29b-41d4-a716-446655440001",
			want: "550e8400-e29b-41d4-a716-446655440001",
		},
		{
			name: "foreign host still parses",
			link: "https://other.example/doc/550e8400-e29b-41d4-a716-446655440002?ref=tg",
			want: "550e8400-e29b-41d4-a716-446655440002",
		},
		{name: "no document path", link: "https://tma.astrum.app/about", wantErr: true},
		{name: "uppercase id rejected", link: "https://tma.astrum.app/doc/ABCDEF", wantErr: true},
		{name: "empty", link: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.link)
			if tt.wantErr {
				require.ErrorIs(t, err, appErr.ErrInvalid)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
