// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Event relation types.
const (
	EventRelationCreated    = "created"
	EventRelationRegistered = "registered"
)

// UserEventRelation links a user to an event they created or
// registered for.
type UserEventRelation struct {
	UserID                string     `json:"userId"`
	EventRelationType     string     `json:"eventRelationType"`
	EventID               string     `json:"eventId"`
	Name                  string     `json:"name"`
	IsOnline              bool       `json:"isOnline"`
	EventDate             time.Time  `json:"eventDate"`
	Location              string     `json:"location"`
	Link                  string     `json:"link"`
	Description           string     `json:"description"`
	ImageURLs             []string   `json:"imageUrls"`
	Tags                  []string   `json:"tags"`
	LimitParticipants     *int       `json:"limitParticipants"`
	ParticipantCount      int        `json:"participantCount"`
	CreatedAt             time.Time  `json:"createdAt"`
	RegistrationComment   string     `json:"registrationComment"`
	RegistrationCreatedAt *time.Time `json:"registrationCreatedAt"`
}

// PaginatedEvents is the user-events list envelope.
type PaginatedEvents struct {
	Events []UserEventRelation `json:"events"`
	Total  int                 `json:"total"`
}
