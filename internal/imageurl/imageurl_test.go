package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	r, err := NewResolver("http://api.example.com/")
	require.NoError(t, err)

	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{
			name:   "empty path falls back to placeholder",
			stored: "",
			want:   Placeholder,
		},
		{
			name:   "plain filename gains uploads prefix",
			stored: "chair.png",
			want:   "http://api.example.com/uploads/chair.png",
		},
		{
			name:   "uploads prefix is not doubled",
			stored: "uploads/chair.png",
			want:   "http://api.example.com/uploads/chair.png",
		},
		{
			name:   "windows separators are converted",
			stored: `uploads\images\chair.png`,
			want:   "http://api.example.com/uploads/images/chair.png",
		},
		{
			name:   "leading slash is dropped",
			stored: "/uploads/chair.png",
			want:   "http://api.example.com/uploads/chair.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.stored))
		})
	}
}

func TestResolveMemoized(t *testing.T) {
	r, err := NewResolver("http://api.example.com")
	require.NoError(t, err)

	first := r.Resolve("chair.png")
	second := r.Resolve("chair.png")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.memo.Len())
}
