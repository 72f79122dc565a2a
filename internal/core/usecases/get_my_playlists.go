package usecases

import (
	"TUI_video_metadata/internal/core/domain"
	"context"
	"fmt"
)

func (uc *videoUseCase) GetMinePlaylists(ctx context.Context) ([]domain.Playlist, error) {
	uc.log.Info("Init Get my playlists")

	playlists, err := uc.service.GetMinePlaylists(ctx)
	if err != nil {
		uc.log.Error("Failed to get playlists from user", err)
		return nil, fmt.Errorf("error while getting playlists from user: %w", err)
	}

	defer uc.log.Info(fmt.Sprintf("Get my playlists done: %d playlists", len(playlists)))

	return playlists, nil
}
