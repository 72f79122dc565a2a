package render

import (
	"TUI_video_metadata/internal/core/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{90 * time.Second, "1:30"},
		{3*time.Minute + 33*time.Second, "3:33"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{1499 * time.Millisecond, "0:01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Duration(tt.in))
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1500000000, "1,500,000,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.in))
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "unknown", Date(time.Time{}))
	assert.Equal(t, "2020-01-01 00:00 +00:00", Date(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestVideoDetail(t *testing.T) {
	thumbnails, err := domain.NewThumbnailSet("abc123")
	require.NoError(t, err)
	stats, err := domain.NewStatistics(1234, 10, 0)
	require.NoError(t, err)
	track, err := domain.NewCaptionTrackInfo("https://example.com/t", domain.NewLanguage("en"), "vtt", true)
	require.NoError(t, err)

	v, err := domain.NewVideoMetadata("abc123", "chXYZ", "Jane", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		"Hello", "A description", thumbnails, 90*time.Second, []string{"a", "b"}, stats,
		[]*domain.CaptionTrackInfo{track})
	require.NoError(t, err)

	out := VideoDetail(v, 60)
	for _, want := range []string{
		"Hello", "abc123", "Jane (chXYZ)", "2020-01-01", "1:30", "1,234", "5.00 / 5",
		"https://img.youtube.com/vi/abc123/hqdefault.jpg", "English (auto-generated)", "#a", "#b", "A description",
	} {
		assert.Contains(t, out, want)
	}

	assert.Equal(t, "Hello  [1:30, 1,234 views]", VideoLine(v))
}
