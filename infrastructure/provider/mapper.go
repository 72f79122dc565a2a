package provider

import (
	"TUI_video_metadata/internal/core/domain"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sosodev/duration"
	"google.golang.org/api/youtube/v3"
)

const captionURLFormat = "https://www.googleapis.com/youtube/v3/captions/%s?tfmt=%s"

var errMissingSnippet = errors.New("video has no snippet")

func toPlaylist(item *youtube.Playlist) domain.Playlist {
	playlist := domain.Playlist{ID: item.Id}
	if item.Snippet != nil {
		playlist.ChannelID = item.Snippet.ChannelId
		playlist.Title = item.Snippet.Title
	}
	return playlist
}

func toVideoMetadata(item *youtube.Video, tracks []*domain.CaptionTrackInfo) (*domain.VideoMetadata, error) {
	if item.Snippet == nil {
		return nil, errMissingSnippet
	}

	var length time.Duration
	if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
		parsed, err := duration.Parse(item.ContentDetails.Duration)
		if err != nil {
			return nil, fmt.Errorf("error while parsing video duration: %w", err)
		}
		length = parsed.ToTimeDuration()
	}

	var published time.Time
	if item.Snippet.PublishedAt != "" {
		parsed, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("error while parsing video published: %w", err)
		}
		published = parsed
	}

	thumbnails, err := domain.NewThumbnailSet(item.Id)
	if err != nil {
		return nil, err
	}

	statistics, err := toStatistics(item.Statistics)
	if err != nil {
		return nil, err
	}

	// the API omits tags entirely when a video has none
	keywords := item.Snippet.Tags
	if keywords == nil {
		keywords = []string{}
	}

	return domain.NewVideoMetadataBuilder().
		ID(item.Id).
		ChannelID(item.Snippet.ChannelId).
		Author(item.Snippet.ChannelTitle).
		UploadDate(published).
		Title(item.Snippet.Title).
		Description(item.Snippet.Description).
		Thumbnails(thumbnails).
		Duration(length).
		Keywords(keywords).
		Statistics(statistics).
		CaptionTrackInfos(tracks).
		Build()
}

func toStatistics(stats *youtube.VideoStatistics) (*domain.Statistics, error) {
	if stats == nil {
		return domain.NewStatistics(0, 0, 0)
	}
	return domain.NewStatistics(int64(stats.ViewCount), int64(stats.LikeCount), int64(stats.DislikeCount))
}

func toCaptionTrackInfo(item *youtube.Caption, format string) (*domain.CaptionTrackInfo, error) {
	if item.Snippet == nil {
		return nil, errors.New("caption has no snippet")
	}

	lang := domain.NewLanguage(item.Snippet.Language)
	if item.Snippet.Name != "" {
		lang.Name = fmt.Sprintf("%s (%s)", lang.Name, item.Snippet.Name)
	}

	return domain.NewCaptionTrackInfo(
		fmt.Sprintf(captionURLFormat, item.Id, format),
		lang,
		format,
		strings.EqualFold(item.Snippet.TrackKind, "asr"),
	)
}
