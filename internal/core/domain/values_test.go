package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThumbnailSet(t *testing.T) {
	ts, err := NewThumbnailSet("dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/default.jpg", ts.LowResURL())
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg", ts.MediumResURL())
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", ts.HighResURL())
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/sddefault.jpg", ts.StandardResURL())
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", ts.MaxResURL())

	_, err = NewThumbnailSet("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewStatistics(t *testing.T) {
	tests := []struct {
		name      string
		views     int64
		likes     int64
		dislikes  int64
		wantField string
		rating    float64
	}{
		{"no votes", 10, 0, 0, "", 0},
		{"only likes", 10, 5, 0, "", 5},
		{"only dislikes", 10, 0, 5, "", 1},
		{"even split", 10, 5, 5, "", 3},
		{"negative views", -1, 0, 0, "viewCount", 0},
		{"negative likes", 0, -1, 0, "likeCount", 0},
		{"negative dislikes", 0, 0, -1, "dislikeCount", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStatistics(tt.views, tt.likes, tt.dislikes)
			if tt.wantField != "" {
				var argErr *InvalidArgumentError
				require.ErrorAs(t, err, &argErr)
				assert.Equal(t, tt.wantField, argErr.Field)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.views, s.ViewCount())
			assert.Equal(t, tt.likes, s.LikeCount())
			assert.Equal(t, tt.dislikes, s.DislikeCount())
			assert.InDelta(t, tt.rating, s.AverageRating(), 1e-9)
		})
	}
}

func TestNewLanguage(t *testing.T) {
	assert.Equal(t, Language{Code: "en", Name: "English"}, NewLanguage("en"))
	assert.Equal(t, Language{Code: "de", Name: "German"}, NewLanguage("de"))
	assert.Equal(t, "not a tag!", NewLanguage("not a tag!").Name)
}

func TestNewCaptionTrackInfo(t *testing.T) {
	track, err := NewCaptionTrackInfo("https://example.com/t", NewLanguage("en"), "vtt", true)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/t", track.URL())
	assert.Equal(t, "en", track.Language().Code)
	assert.Equal(t, "vtt", track.Format())
	assert.True(t, track.IsAutoGenerated())
	assert.Equal(t, "English (auto-generated)", track.String())

	_, err = NewCaptionTrackInfo("", NewLanguage("en"), "vtt", false)
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "url", argErr.Field)

	_, err = NewCaptionTrackInfo("https://example.com/t", Language{}, "vtt", false)
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "language", argErr.Field)
}
