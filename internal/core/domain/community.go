package domain

import "time"

// CommunityReply is a reply embedded in a community post, in insertion order.
type CommunityReply struct {
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommunityPost is a discussion board entry.
type CommunityPost struct {
	PostID    string           `json:"postId"`
	Author    string           `json:"author"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Category  string           `json:"category"`
	Replies   []CommunityReply `json:"replies"`
	CreatedAt time.Time        `json:"createdAt"`
}
