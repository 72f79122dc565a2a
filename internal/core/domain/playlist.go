package domain

import (
	"sort"
	"time"
)

// Playlist owns the order of its videos; the videos themselves are shared and
// never modified.
type Playlist struct {
	ID        string
	ChannelID string
	Title     string
	Videos    []*VideoMetadata
}

func (p *Playlist) SortByTitle() {
	sort.SliceStable(p.Videos, func(i, j int) bool {
		return p.Videos[i].Title() < p.Videos[j].Title()
	})
}

func (p *Playlist) SortByDuration() {
	sort.SliceStable(p.Videos, func(i, j int) bool {
		return p.Videos[i].Duration() < p.Videos[j].Duration()
	})
}

func (p *Playlist) SortByUploadDate() {
	sort.SliceStable(p.Videos, func(i, j int) bool {
		return p.Videos[i].UploadDate().Before(p.Videos[j].UploadDate())
	})
}

// SortByViews puts the most viewed first.
func (p *Playlist) SortByViews() {
	sort.SliceStable(p.Videos, func(i, j int) bool {
		return p.Videos[i].Statistics().ViewCount() > p.Videos[j].Statistics().ViewCount()
	})
}

func (p *Playlist) TotalDuration() time.Duration {
	var total time.Duration
	for _, v := range p.Videos {
		total += v.Duration()
	}
	return total
}
