package usecases

import (
	"TUI_video_metadata/internal/core/domain"
	"context"
	"fmt"
)

func (uc *videoUseCase) GetVideoByURL(ctx context.Context, url string) (*domain.VideoMetadata, error) {
	uc.log.Info("Init Get Video By URL")

	videoID, ok := domain.ParseVideoID(url)
	if !ok {
		uc.log.Warning(fmt.Sprintf("Rejected video input %q", url))
		return nil, fmt.Errorf("%w: %q", ErrInvalidVideoURL, url)
	}

	video, err := uc.service.GetVideoByID(ctx, videoID)
	if err != nil {
		uc.log.Error("Failed to get video by URL", err)
		return nil, fmt.Errorf("error while getting video %s: %w", videoID, err)
	}

	uc.log.Info(fmt.Sprintf("Get Video By URL Completed: %s", video))

	return video, nil
}
