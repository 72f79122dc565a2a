package domain

// Statistics holds the engagement counters of a video.
type Statistics struct {
	viewCount    int64
	likeCount    int64
	dislikeCount int64
}

// NewStatistics rejects negative counters. The Data API stopped exposing
// dislikes, so dislikeCount is usually 0.
func NewStatistics(viewCount, likeCount, dislikeCount int64) (*Statistics, error) {
	views, err := guardNotNegativeCount(viewCount, "viewCount")
	if err != nil {
		return nil, err
	}
	likes, err := guardNotNegativeCount(likeCount, "likeCount")
	if err != nil {
		return nil, err
	}
	dislikes, err := guardNotNegativeCount(dislikeCount, "dislikeCount")
	if err != nil {
		return nil, err
	}
	return &Statistics{viewCount: views, likeCount: likes, dislikeCount: dislikes}, nil
}

func (s *Statistics) ViewCount() int64 { return s.viewCount }

func (s *Statistics) LikeCount() int64 { return s.likeCount }

func (s *Statistics) DislikeCount() int64 { return s.dislikeCount }

// AverageRating maps the like ratio onto a 1..5 scale, or 0 without votes.
func (s *Statistics) AverageRating() float64 {
	total := s.likeCount + s.dislikeCount
	if total == 0 {
		return 0
	}
	return 1 + 4.0*float64(s.likeCount)/float64(total)
}
