package domain

import (
	"slices"
	"time"
)

type field uint16

const (
	fieldID field = 1 << iota
	fieldChannelID
	fieldAuthor
	fieldTitle
	fieldDescription
)

// VideoMetadataBuilder collects fields for a VideoMetadata. A string field that
// was never set counts as absent; setting it to "" counts as present.
// The zero value is ready to use.
type VideoMetadataBuilder struct {
	set               field
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

func NewVideoMetadataBuilder() *VideoMetadataBuilder {
	return &VideoMetadataBuilder{}
}

func (b *VideoMetadataBuilder) ID(id string) *VideoMetadataBuilder {
	b.id = id
	b.set |= fieldID
	return b
}

func (b *VideoMetadataBuilder) ChannelID(channelID string) *VideoMetadataBuilder {
	b.channelID = channelID
	b.set |= fieldChannelID
	return b
}

func (b *VideoMetadataBuilder) Author(author string) *VideoMetadataBuilder {
	b.author = author
	b.set |= fieldAuthor
	return b
}

func (b *VideoMetadataBuilder) UploadDate(uploadDate time.Time) *VideoMetadataBuilder {
	b.uploadDate = uploadDate
	return b
}

func (b *VideoMetadataBuilder) Title(title string) *VideoMetadataBuilder {
	b.title = title
	b.set |= fieldTitle
	return b
}

func (b *VideoMetadataBuilder) Description(description string) *VideoMetadataBuilder {
	b.description = description
	b.set |= fieldDescription
	return b
}

func (b *VideoMetadataBuilder) Thumbnails(thumbnails *ThumbnailSet) *VideoMetadataBuilder {
	b.thumbnails = thumbnails
	return b
}

func (b *VideoMetadataBuilder) Duration(duration time.Duration) *VideoMetadataBuilder {
	b.duration = duration
	return b
}

func (b *VideoMetadataBuilder) Keywords(keywords []string) *VideoMetadataBuilder {
	b.keywords = keywords
	return b
}

func (b *VideoMetadataBuilder) Statistics(statistics *Statistics) *VideoMetadataBuilder {
	b.statistics = statistics
	return b
}

func (b *VideoMetadataBuilder) CaptionTrackInfos(trackInfos []*CaptionTrackInfo) *VideoMetadataBuilder {
	b.captionTrackInfos = trackInfos
	return b
}

// Build validates the collected fields and returns the first failure as an
// *InvalidArgumentError. No instance is returned on failure.
func (b *VideoMetadataBuilder) Build() (*VideoMetadata, error) {
	if err := guardSet(b.set&fieldID != 0, "id"); err != nil {
		return nil, err
	}
	id, err := guardNotEmpty(b.id, "id")
	if err != nil {
		return nil, err
	}
	if err := guardSet(b.set&fieldChannelID != 0, "channelId"); err != nil {
		return nil, err
	}
	if err := guardSet(b.set&fieldAuthor != 0, "author"); err != nil {
		return nil, err
	}
	if err := guardSet(b.set&fieldTitle != 0, "title"); err != nil {
		return nil, err
	}
	if err := guardSet(b.set&fieldDescription != 0, "description"); err != nil {
		return nil, err
	}
	thumbnails, err := guardNotNil(b.thumbnails, "thumbnails")
	if err != nil {
		return nil, err
	}
	duration, err := guardNotNegative(b.duration, "duration")
	if err != nil {
		return nil, err
	}
	keywords, err := guardNotNilSlice(b.keywords, "keywords")
	if err != nil {
		return nil, err
	}
	statistics, err := guardNotNil(b.statistics, "statistics")
	if err != nil {
		return nil, err
	}

	return &VideoMetadata{
		id:                id,
		channelID:         b.channelID,
		author:            b.author,
		uploadDate:        b.uploadDate,
		title:             b.title,
		description:       b.description,
		thumbnails:        thumbnails,
		duration:          duration,
		keywords:          slices.Clone(keywords),
		statistics:        statistics,
		captionTrackInfos: slices.Clone(b.captionTrackInfos),
	}, nil
}
