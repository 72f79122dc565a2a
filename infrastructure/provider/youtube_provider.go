package provider

import (
	"TUI_video_metadata/internal/core/domain"
	"TUI_video_metadata/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/samber/hot"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	maxResults        = 50
	defaultCacheSize  = 256
	captionListFormat = "vtt"
)

var videoParts = []string{"snippet", "contentDetails", "statistics"}

var (
	ErrVideoNotFound    = errors.New("video not found")
	ErrPlaylistNotFound = errors.New("playlist not found")
)

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// ClientSource hands out an HTTP client that refreshes and persists the
// stored OAuth token.
type ClientSource interface {
	GetAuthenticatedClient(ctx context.Context) (*http.Client, *oauth2.Token, error)
}

type youtubeProvider struct {
	clients ClientSource
	log     ports.LoggerPort
	service *youtube.Service
	options []option.ClientOption
	cache   *hot.HotCache[string, *domain.VideoMetadata]
	mu      sync.Mutex
}

// NewYoutubeProvider returns the Data API backed YoutubePort. Extra client
// options are appended after the authenticated client. A nil clients is only
// useful together with option.WithHTTPClient.
func NewYoutubeProvider(clients ClientSource, logger ports.LoggerPort, cacheConfig CacheConfig, opts ...option.ClientOption) ports.YoutubePort {
	return &youtubeProvider{
		clients: clients,
		log:     logger,
		options: opts,
		cache:   newVideoCache(cacheConfig),
	}
}

func newVideoCache(cfg CacheConfig) *hot.HotCache[string, *domain.VideoMetadata] {
	size := cfg.Size
	if size <= 0 {
		size = defaultCacheSize
	}

	builder := hot.NewHotCache[string, *domain.VideoMetadata](hot.LRU, size)
	if cfg.TTL > 0 {
		builder = builder.WithTTL(cfg.TTL)
	}
	return builder.Build()
}

func (s *youtubeProvider) getYoutubeService(ctx context.Context) (*youtube.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service != nil {
		return s.service, nil
	}

	opts := s.options
	if s.clients != nil {
		client, _, err := s.clients.GetAuthenticatedClient(ctx)
		if err != nil {
			s.log.Error("error while load token", err)
			return nil, fmt.Errorf("error while load token: %w", err)
		}
		s.log.Info("Load token completed")
		opts = append([]option.ClientOption{option.WithHTTPClient(client)}, s.options...)
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		s.log.Error("error while create youtube service", err)
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	s.service = service
	s.log.Info("Create youtube service completed")

	return service, nil
}

func (s *youtubeProvider) GetMinePlaylists(ctx context.Context) ([]domain.Playlist, error) {
	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while create youtube provider: %w", err)
	}

	var playlists []domain.Playlist
	pageToken := ""

	for {
		response, err := service.Playlists.List([]string{"id", "snippet"}).
			Mine(true).
			MaxResults(maxResults).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			s.log.Error("error while call youtube service", err)
			return nil, fmt.Errorf("error in call youtube api: %w", err)
		}

		for _, item := range response.Items {
			playlists = append(playlists, toPlaylist(item))
		}

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	if len(playlists) == 0 {
		s.log.Warning("No youtube playlists found")
		return []domain.Playlist{}, nil
	}

	s.log.Info("Get all playlists completed")

	return playlists, nil
}

func (s *youtubeProvider) GetPlaylistByID(ctx context.Context, playlistID string) (domain.Playlist, error) {
	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("error while create youtube provider: %w", err)
	}

	response, err := service.Playlists.List([]string{"id", "snippet"}).Id(playlistID).Context(ctx).Do()
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("error in call youtube api: %w", err)
	}

	if len(response.Items) == 0 {
		return domain.Playlist{}, fmt.Errorf("%w: %s", ErrPlaylistNotFound, playlistID)
	}

	playlist := toPlaylist(response.Items[0])

	videos, err := s.getPlaylistVideos(ctx, service, playlistID)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("error in getPlaylistVideos while get videos: %w", err)
	}
	playlist.Videos = videos

	s.log.Info(fmt.Sprintf("Get playlist %s completed with %d videos", playlistID, len(videos)))

	return playlist, nil
}

// GetVideoByID is served from the cache when possible. Instances are
// immutable, so handing the same pointer to several callers is safe.
func (s *youtubeProvider) GetVideoByID(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	if video, found, err := s.cache.Get(videoID); err == nil && found {
		s.log.Debug("Video cache hit: " + videoID)
		return video, nil
	}

	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while create youtube provider: %w", err)
	}

	response, err := service.Videos.List(videoParts).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("error while getting video details: %w", err)
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	tracks := s.getCaptionTracks(ctx, service, videoID)

	video, err := toVideoMetadata(response.Items[0], tracks)
	if err != nil {
		return nil, fmt.Errorf("error while mapping video %s: %w", videoID, err)
	}

	s.cache.Set(videoID, video)

	return video, nil
}

func (s *youtubeProvider) getPlaylistVideos(ctx context.Context, service *youtube.Service, playlistID string) ([]*domain.VideoMetadata, error) {
	pageToken := ""
	videos := []*domain.VideoMetadata{}

	for {
		returnedVideos, nextPageToken, err := s.enrich(ctx, service, playlistID, pageToken)
		if err != nil {
			return nil, fmt.Errorf("error while getting youtube videos: %w", err)
		}

		videos = append(videos, returnedVideos...)

		if nextPageToken == "" {
			break
		}

		pageToken = nextPageToken
	}

	return videos, nil
}

// enrich turns one page of playlist items into videos with a single
// videos.list call. Deleted or private entries are skipped.
func (s *youtubeProvider) enrich(ctx context.Context, service *youtube.Service, playlistID, pageToken string) ([]*domain.VideoMetadata, string, error) {
	response, err := service.PlaylistItems.List([]string{"id", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		PageToken(pageToken).
		Context(ctx).
		Do()
	if err != nil {
		return nil, "", fmt.Errorf("error in call youtube api: %w", err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		ids = append(ids, item.ContentDetails.VideoId)
	}

	if len(ids) == 0 {
		return nil, response.NextPageToken, nil
	}

	details, err := service.Videos.List(videoParts).Id(ids...).Context(ctx).Do()
	if err != nil {
		return nil, "", fmt.Errorf("error while getting video details: %w", err)
	}

	byID := make(map[string]*youtube.Video, len(details.Items))
	for _, item := range details.Items {
		byID[item.Id] = item
	}

	videos := make([]*domain.VideoMetadata, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			s.log.Warning(fmt.Sprintf("Video %s in playlist %s is unavailable", id, playlistID))
			continue
		}

		video, err := toVideoMetadata(item, nil)
		if err != nil {
			s.log.Error(fmt.Sprintf("Skipping video %s", id), err)
			continue
		}
		videos = append(videos, video)
	}

	return videos, response.NextPageToken, nil
}

// getCaptionTracks returns nil when captions cannot be listed; the Data API
// only lists captions of videos the caller can edit.
func (s *youtubeProvider) getCaptionTracks(ctx context.Context, service *youtube.Service, videoID string) []*domain.CaptionTrackInfo {
	response, err := service.Captions.List([]string{"snippet"}, videoID).Context(ctx).Do()
	if err != nil {
		s.log.Warning(fmt.Sprintf("Caption tracks unavailable for %s: %v", videoID, err))
		return nil
	}

	tracks := make([]*domain.CaptionTrackInfo, 0, len(response.Items))
	for _, item := range response.Items {
		track, err := toCaptionTrackInfo(item, captionListFormat)
		if err != nil {
			s.log.Error(fmt.Sprintf("Skipping caption track of %s", videoID), err)
			continue
		}
		tracks = append(tracks, track)
	}

	return tracks
}
