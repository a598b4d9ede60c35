// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Analytics intervals. The backend buckets series by the requested
// interval; the console never aggregates client-side.
const (
	IntervalDay   = "day"
	IntervalWeek  = "week"
	IntervalMonth = "month"
)

// AnalyticsOverview holds the platform-wide aggregate counters.
type AnalyticsOverview struct {
	TotalUsers              int     `json:"totalUsers"`
	ActiveUsers             int     `json:"activeUsers"`
	PendingUsers            int     `json:"pendingUsers"`
	TotalConnections        int     `json:"totalConnections"`
	PendingConnections      int     `json:"pendingConnections"`
	AvgConnectionsPerUser   float64 `json:"avgConnectionsPerUser"`
	TotalPosts              int     `json:"totalPosts"`
	TotalLikes              int     `json:"totalLikes"`
	TotalComments           int     `json:"totalComments"`
	TotalEvents             int     `json:"totalEvents"`
	TotalEventRegistrations int     `json:"totalEventRegistrations"`
	TotalSpeakers           int     `json:"totalSpeakers"`
}

// UserGrowthPoint is one bucket of the cumulative user count series.
type UserGrowthPoint struct {
	Date      string `json:"date"`
	UserCount int    `json:"userCount"`
}

// ConnectionActivityPoint is one bucket of connection request activity.
type ConnectionActivityPoint struct {
	Date          string `json:"date"`
	SentCount     int    `json:"sentCount"`
	AcceptedCount int    `json:"acceptedCount"`
	RejectedCount int    `json:"rejectedCount"`
}

// ContentEngagementPoint is one bucket of post/like/comment volume.
type ContentEngagementPoint struct {
	Date          string `json:"date"`
	PostsCount    int    `json:"postsCount"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
}

// EventInterestPoint is one calendar month of event activity.
type EventInterestPoint struct {
	Month              int `json:"month"`
	RegistrationsCount int `json:"registrationsCount"`
	EventsCount        int `json:"eventsCount"`
}

// TopInterest ranks an interest by how many users selected it.
type TopInterest struct {
	InterestID   string `json:"interestId"`
	InterestName string `json:"interestName"`
	UserCount    int    `json:"userCount"`
}

// UserRetentionPoint is one bucket of the retention series.
type UserRetentionPoint struct {
	Date          string  `json:"date"`
	ActiveUsers   int     `json:"activeUsers"`
	TotalUsers    int     `json:"totalUsers"`
	RetentionRate float64 `json:"retentionRate"`
}

// SpeakerAnalytics ranks a speaker by event and registration volume.
type SpeakerAnalytics struct {
	SpeakerID                string  `json:"speakerId"`
	FirstName                string  `json:"firstName"`
	LastName                 string  `json:"lastName"`
	EventsCount              int     `json:"eventsCount"`
	TotalRegistrations       int     `json:"totalRegistrations"`
	AvgRegistrationsPerEvent float64 `json:"avgRegistrationsPerEvent"`
}
