// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// PostAuthor is the embedded author record on a post.
type PostAuthor struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl"`
	Role      string `json:"role"`
}

// Post is a user post with engagement counters. Read-only from the
// admin console.
type Post struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	ImageURLs    []string   `json:"imageUrls"`
	LikeCount    int        `json:"likeCount"`
	CommentCount int        `json:"commentCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt"`
	Author       PostAuthor `json:"author"`
}

// PaginatedPosts is the posts list envelope.
type PaginatedPosts struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
}

// Activity types.
const (
	ActivityPostCreated = "post_created"
	ActivityPostDeleted = "post_deleted"
	ActivityLiked       = "liked"
	ActivityCommented   = "commented"
)

// UserActivity is a single entry in a user's activity feed.
type UserActivity struct {
	UserID         string    `json:"userId"`
	ActivityType   string    `json:"activityType"`
	EntityID       string    `json:"entityId"`
	EntityType     string    `json:"entityType"`
	ContentPreview string    `json:"contentPreview"`
	ActivityAt     time.Time `json:"activityAt"`
	ImageURLs      []string  `json:"imageUrls"`
}

// PaginatedActivity is the activity list envelope.
type PaginatedActivity struct {
	Activities []UserActivity `json:"activities"`
	Total      int            `json:"total"`
}
