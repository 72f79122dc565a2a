package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"TUI_video_metadata/infrastructure/logger"
	"TUI_video_metadata/internal/core/domain"
	"TUI_video_metadata/internal/core/usecases"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoUseCase struct {
	usecases.VideoUseCase
	videos map[string]*domain.VideoMetadata
}

func (f *fakeVideoUseCase) GetVideoByURL(ctx context.Context, url string) (*domain.VideoMetadata, error) {
	if v, ok := f.videos[url]; ok {
		return v, nil
	}
	return nil, errors.New("video not found")
}

func (f *fakeVideoUseCase) GetPlaylistByURL(ctx context.Context, url string) (domain.Playlist, error) {
	id, ok := domain.ParsePlaylistID(url)
	if !ok {
		return domain.Playlist{}, usecases.ErrInvalidPlaylistURL
	}
	return domain.Playlist{ID: id, Title: "From URL"}, nil
}

func (f *fakeVideoUseCase) SortPlaylist(playlist *domain.Playlist, criteria usecases.SortCriteria) error {
	return usecases.NewVideoUseCase(nil, logger.NewNopLogger()).SortPlaylist(playlist, criteria)
}

func testVideo(t *testing.T, id, title string, d time.Duration, views int64) *domain.VideoMetadata {
	t.Helper()
	thumbnails, err := domain.NewThumbnailSet(id)
	require.NoError(t, err)
	stats, err := domain.NewStatistics(views, 0, 0)
	require.NoError(t, err)
	v, err := domain.NewVideoMetadata(id, "", "author", time.Time{}, title, "", thumbnails, d, []string{}, stats, nil)
	require.NoError(t, err)
	return v
}

func newTestApp(uc usecases.VideoUseCase) *AppModel {
	return &AppModel{
		videoUseCase: uc,
		logger:       logger.NewNopLogger(),
		appContext:   context.Background(),
		width:        80,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func ids(videos []*domain.VideoMetadata) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID()
	}
	return out
}

func TestVideosModel_SortKeys(t *testing.T) {
	playlist := domain.Playlist{ID: "PL1", Title: "Mix", Videos: []*domain.VideoMetadata{
		testVideo(t, "aaaaaaaaaaa", "Charlie", 3*time.Minute, 10),
		testVideo(t, "bbbbbbbbbbb", "Alpha", 1*time.Minute, 5),
		testVideo(t, "ccccccccccc", "Bravo", 2*time.Minute, 50),
	}}

	tests := []struct {
		key  string
		want []string
	}{
		{"t", []string{"bbbbbbbbbbb", "ccccccccccc", "aaaaaaaaaaa"}},
		{"d", []string{"bbbbbbbbbbb", "ccccccccccc", "aaaaaaaaaaa"}},
		{"v", []string{"ccccccccccc", "aaaaaaaaaaa", "bbbbbbbbbbb"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p := playlist
			p.Videos = append([]*domain.VideoMetadata(nil), playlist.Videos...)
			m := NewVideosModel(newTestApp(&fakeVideoUseCase{}), p)
			m.cursor = 2

			_, cmd := m.Update(keyRunes(tt.key))
			assert.Nil(t, cmd)
			assert.NoError(t, m.err)
			assert.Equal(t, 0, m.cursor)
			assert.Equal(t, tt.want, ids(m.playlist.Videos))
			assert.Contains(t, m.View(), "Sorted by")
		})
	}
}

func TestVideosModel_EnterLoadsVideo(t *testing.T) {
	video := testVideo(t, "aaaaaaaaaaa", "Charlie", time.Minute, 1)
	uc := &fakeVideoUseCase{videos: map[string]*domain.VideoMetadata{video.ID(): video}}
	m := NewVideosModel(newTestApp(uc), domain.Playlist{Title: "Mix", Videos: []*domain.VideoMetadata{video}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	msg := m.loadVideoCmd(video.ID())()
	show, ok := msg.(showVideoMsg)
	require.True(t, ok)
	assert.Same(t, video, show.video)
	assert.Equal(t, viewVideos, show.back)

	m.resume()
	assert.False(t, m.loading)
	_, _ = m.Update(keyRunes("t"))
	assert.Equal(t, "Sorted by title (A-Z).", m.statusMessage)
}

func TestVideosModel_LoadError(t *testing.T) {
	m := NewVideosModel(newTestApp(&fakeVideoUseCase{}), domain.Playlist{Title: "Mix"})
	m.loading = true

	msg := m.loadVideoCmd("zzzzzzzzzzz")()
	_, _ = m.Update(msg)

	assert.False(t, m.loading)
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "video not found")
}

func TestURLModel_RoutesByLinkKind(t *testing.T) {
	video := testVideo(t, "dQw4w9WgXcQ", "Never", 3*time.Minute, 1)
	uc := &fakeVideoUseCase{videos: map[string]*domain.VideoMetadata{
		"https://youtu.be/dQw4w9WgXcQ": video,
	}}

	t.Run("video link", func(t *testing.T) {
		m := NewURLModel(newTestApp(uc))
		cmd := m.lookupCmd("https://youtu.be/dQw4w9WgXcQ")
		require.NotNil(t, cmd)
		show, ok := cmd().(showVideoMsg)
		require.True(t, ok)
		assert.Same(t, video, show.video)
		assert.Equal(t, viewURL, show.back)
	})

	t.Run("playlist link", func(t *testing.T) {
		m := NewURLModel(newTestApp(uc))
		cmd := m.lookupCmd("https://www.youtube.com/playlist?list=PLabc123")
		require.NotNil(t, cmd)
		show, ok := cmd().(showVideosMsg)
		require.True(t, ok)
		assert.Equal(t, "PLabc123", show.playlist.ID)
	})

	t.Run("unrecognized", func(t *testing.T) {
		m := NewURLModel(newTestApp(uc))
		assert.Nil(t, m.lookupCmd("https://example.com/"))
	})
}

func TestVideoModel_BackNavigation(t *testing.T) {
	tests := []struct {
		back currentView
		want tea.Msg
	}{
		{viewVideos, backToVideosMsg{}},
		{viewURL, showURLMsg{}},
		{viewPlaylists, showPlaylistsMsg{}},
	}

	for _, tt := range tests {
		m := NewVideoModel(newTestApp(&fakeVideoUseCase{}), nil, tt.back)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		require.NotNil(t, cmd)
		assert.Equal(t, tt.want, cmd())
	}

	m := NewVideoModel(newTestApp(&fakeVideoUseCase{}), nil, viewPlaylists)
	assert.Contains(t, m.View(), "No video selected")
}
