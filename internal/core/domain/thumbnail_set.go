package domain

import "fmt"

const thumbnailHost = "https://img.youtube.com/vi"

// ThumbnailSet references the thumbnails YouTube publishes for a video.
type ThumbnailSet struct {
	videoID string
}

func NewThumbnailSet(videoID string) (*ThumbnailSet, error) {
	id, err := guardNotEmpty(videoID, "videoId")
	if err != nil {
		return nil, err
	}
	return &ThumbnailSet{videoID: id}, nil
}

func (t *ThumbnailSet) url(name string) string {
	return fmt.Sprintf("%s/%s/%s.jpg", thumbnailHost, t.videoID, name)
}

// LowResURL is 120x90.
func (t *ThumbnailSet) LowResURL() string { return t.url("default") }

// MediumResURL is 320x180.
func (t *ThumbnailSet) MediumResURL() string { return t.url("mqdefault") }

// HighResURL is 480x360.
func (t *ThumbnailSet) HighResURL() string { return t.url("hqdefault") }

// StandardResURL is 640x480.
func (t *ThumbnailSet) StandardResURL() string { return t.url("sddefault") }

// MaxResURL is only present for HD uploads.
func (t *ThumbnailSet) MaxResURL() string { return t.url("maxresdefault") }
