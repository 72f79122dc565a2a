package domain

import (
	"slices"
	"time"
)

// VideoMetadata is an immutable snapshot of the metadata of a single YouTube video.
// Instances are only obtainable through NewVideoMetadata or VideoMetadataBuilder.Build,
// so every instance in circulation has passed validation. There is no value
// equality: instances built from the same inputs are equal field by field
// (reflect.DeepEqual) but are different pointers.
//
// ChannelID may be empty: videos listed through a playlist do not always carry
// their channel. The field is still required, so callers on that path pass "".
type VideoMetadata struct {
	id                string
	channelID         string
	author            string
	uploadDate        time.Time
	title             string
	description       string
	thumbnails        *ThumbnailSet
	duration          time.Duration
	keywords          []string
	statistics        *Statistics
	captionTrackInfos []*CaptionTrackInfo
}

// NewVideoMetadata builds a VideoMetadata from every field at once.
func NewVideoMetadata(
	id, channelID, author string,
	uploadDate time.Time,
	title, description string,
	thumbnails *ThumbnailSet,
	duration time.Duration,
	keywords []string,
	statistics *Statistics,
	captionTrackInfos []*CaptionTrackInfo,
) (*VideoMetadata, error) {
	return NewVideoMetadataBuilder().
		ID(id).
		ChannelID(channelID).
		Author(author).
		UploadDate(uploadDate).
		Title(title).
		Description(description).
		Thumbnails(thumbnails).
		Duration(duration).
		Keywords(keywords).
		Statistics(statistics).
		CaptionTrackInfos(captionTrackInfos).
		Build()
}

func (v *VideoMetadata) ID() string { return v.id }

// ChannelID is empty when the channel is unknown.
func (v *VideoMetadata) ChannelID() string { return v.channelID }

func (v *VideoMetadata) HasChannelID() bool { return v.channelID != "" }

func (v *VideoMetadata) Author() string { return v.author }

func (v *VideoMetadata) UploadDate() time.Time { return v.uploadDate }

func (v *VideoMetadata) Title() string { return v.title }

func (v *VideoMetadata) Description() string { return v.description }

func (v *VideoMetadata) Thumbnails() *ThumbnailSet { return v.thumbnails }

func (v *VideoMetadata) Duration() time.Duration { return v.duration }

// Keywords returns a copy; the instance keeps its own.
func (v *VideoMetadata) Keywords() []string { return slices.Clone(v.keywords) }

func (v *VideoMetadata) Statistics() *Statistics { return v.statistics }

// CaptionTrackInfos may be nil.
func (v *VideoMetadata) CaptionTrackInfos() []*CaptionTrackInfo {
	return slices.Clone(v.captionTrackInfos)
}

func (v *VideoMetadata) String() string { return v.title }
