package usecases

import (
	"TUI_video_metadata/internal/core/domain"
	"TUI_video_metadata/internal/core/ports"
	"context"
	"errors"
)

var (
	ErrInvalidVideoURL    = errors.New("invalid video URL or id")
	ErrInvalidPlaylistURL = errors.New("invalid playlist URL or id")
	ErrUnknownCriteria    = errors.New("unknown sort criteria")
)

type SortCriteria string

const (
	SortByTitle      SortCriteria = "title"
	SortByDuration   SortCriteria = "duration"
	SortByUploadDate SortCriteria = "upload"
	SortByViews      SortCriteria = "views"
)

type videoUseCase struct {
	service ports.YoutubePort
	log     ports.LoggerPort
}

type VideoUseCase interface {
	GetMinePlaylists(ctx context.Context) ([]domain.Playlist, error)
	GetPlaylistByURL(ctx context.Context, url string) (domain.Playlist, error)
	GetVideoByURL(ctx context.Context, url string) (*domain.VideoMetadata, error)
	SortPlaylist(playlist *domain.Playlist, criteria SortCriteria) error
}

func NewVideoUseCase(service ports.YoutubePort, logger ports.LoggerPort) VideoUseCase {
	return &videoUseCase{
		service: service,
		log:     logger,
	}
}
