package types

import (
	"errors"
	"time"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrInvalidComment = errors.New("invalid comment")
	ErrThreadFull     = errors.New("comment thread full")
)

type Text struct {
	En string `json:"en"`
	Hi string `json:"hi"`
}

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post counters are never negative.
type Post struct {
	ID       string    `json:"id"`
	Author   string    `json:"author"`
	Text     Text      `json:"text"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Likes    int       `json:"likes"`
	Comments int       `json:"comments"`
	Shares   int       `json:"shares"`
	Thread   []Comment `json:"thread"`
}

type Group struct {
	ID      string `json:"id"`
	Name    Text   `json:"name"`
	Members int    `json:"members"`
}
