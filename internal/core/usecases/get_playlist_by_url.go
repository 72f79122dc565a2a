package usecases

import (
	"TUI_video_metadata/internal/core/domain"
	"context"
	"fmt"
)

func (uc *videoUseCase) GetPlaylistByURL(ctx context.Context, url string) (domain.Playlist, error) {
	uc.log.Info("Init Get Playlist By URL")

	playlistID, ok := domain.ParsePlaylistID(url)
	if !ok {
		uc.log.Warning(fmt.Sprintf("Rejected playlist input %q", url))
		return domain.Playlist{}, fmt.Errorf("%w: %q", ErrInvalidPlaylistURL, url)
	}

	playlist, err := uc.service.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		uc.log.Error("Failed to get playlist by URL", err)
		return domain.Playlist{}, fmt.Errorf("error while getting playlist %s: %w", playlistID, err)
	}

	uc.log.Info("Get Playlist By URL Completed")

	return playlist, nil
}
