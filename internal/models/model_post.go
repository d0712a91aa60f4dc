package models

import "time"

type PostStatus string

const (
	StatusPending PostStatus = "pending"
	StatusWorking PostStatus = "working"
	StatusSolved  PostStatus = "solved"
)

// Statuses lists every status in tab order.
var Statuses = []PostStatus{StatusPending, StatusWorking, StatusSolved}

func (s PostStatus) Valid() bool {
	switch s {
	case StatusPending, StatusWorking, StatusSolved:
		return true
	}
	return false
}

// Post is a civic issue report. IsUpvoted is computed for the viewer that
// asked for the post and is never shared between viewers.
type Post struct {
	ID             string     `json:"id"`
	AuthorUsername string     `json:"authorUsername"`
	MunicipalityID string     `json:"municipalityId,omitempty"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Images         []string   `json:"images"`
	Hashtag        []string   `json:"hashtag"`
	UpvoteCount    int        `json:"upvoteCount"`
	IsUpvoted      bool       `json:"isUpvotedByCurrentUser"`
	CommentCount   int        `json:"commentCount"`
	Status         PostStatus `json:"status"`
	RepostOf       string     `json:"repostOf,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastUpdatedAt  time.Time  `json:"lastUpdatedAt"`
}

type Comment struct {
	ID             string    `json:"id"`
	PostID         string    `json:"postId"`
	AuthorUsername string    `json:"authorUsername"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PostFields carries a partial edit. Nil means "leave unchanged".
type PostFields struct {
	Title   *string
	Content *string
}

type StatusCounts struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Working int `json:"working"`
	Solved  int `json:"solved"`
}

func (c *StatusCounts) Add(s PostStatus) {
	c.Total++
	switch s {
	case StatusPending:
		c.Pending++
	case StatusWorking:
		c.Working++
	case StatusSolved:
		c.Solved++
	}
}
