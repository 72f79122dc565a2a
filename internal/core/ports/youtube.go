package ports

import (
	"TUI_video_metadata/internal/core/domain"
	"context"
)

type YoutubePort interface {
	GetMinePlaylists(ctx context.Context) ([]domain.Playlist, error)
	GetPlaylistByID(ctx context.Context, playlistID string) (domain.Playlist, error)
	GetVideoByID(ctx context.Context, videoID string) (*domain.VideoMetadata, error)
}
