package usecases

import (
	"TUI_video_metadata/internal/core/domain"
	"fmt"
)

func (uc *videoUseCase) SortPlaylist(playlist *domain.Playlist, criteria SortCriteria) error {
	switch criteria {
	case SortByTitle:
		playlist.SortByTitle()
	case SortByDuration:
		playlist.SortByDuration()
	case SortByUploadDate:
		playlist.SortByUploadDate()
	case SortByViews:
		playlist.SortByViews()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCriteria, criteria)
	}

	uc.log.Info(fmt.Sprintf("Sorted playlist %s by %s", playlist.ID, criteria))

	return nil
}
