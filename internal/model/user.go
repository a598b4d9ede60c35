// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// User statuses. Status is mutated via PATCH; users are never deleted
// from the admin console.
const (
	UserStatusPending  = "pending"
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User roles.
const (
	UserRoleStandard = "standard_user"
	UserRoleSpeaker  = "speaker"
)

// ValidUserStatuses contains all statuses accepted by the status PATCH.
var ValidUserStatuses = []string{UserStatusPending, UserStatusActive, UserStatusInactive}

// ValidUserRoles contains all roles accepted by the role PATCH.
var ValidUserRoles = []string{UserRoleStandard, UserRoleSpeaker}

// User represents a platform user as returned by the backend.
type User struct {
	ID                   string            `json:"id"`
	Email                string            `json:"email"`
	FirstName            string            `json:"firstName"`
	LastName             string            `json:"lastName"`
	AvatarURL            string            `json:"avatarUrl"`
	Position             string            `json:"position"`
	ContactInfo          map[string]string `json:"contactInfo"`
	ShortDescription     string            `json:"shortDescription"`
	Status               string            `json:"status"`
	Role                 string            `json:"role"`
	CreatedAt            time.Time         `json:"createdAt"`
	LastActivityAt       *time.Time        `json:"lastActivityAt"`
	Interests            []Interest        `json:"interests"`
	TotalConnections     int               `json:"totalConnections"`
	PendingSentCount     int               `json:"pendingSentCount"`
	PendingReceivedCount int               `json:"pendingReceivedCount"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Initials returns the avatar fallback initials for users without an
// avatar image.
func (u *User) Initials() string {
	var b []byte
	if u.FirstName != "" {
		b = append(b, u.FirstName[0])
	}
	if u.LastName != "" {
		b = append(b, u.LastName[0])
	}
	if len(b) == 0 {
		return "?"
	}
	return string(b)
}

// PaginatedUsers is the users list envelope. Total is authoritative
// for page-count math.
type PaginatedUsers struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// IsValidUserStatus checks if a status is accepted by the backend.
func IsValidUserStatus(status string) bool {
	for _, s := range ValidUserStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidUserRole checks if a role is accepted by the backend.
func IsValidUserRole(role string) bool {
	for _, r := range ValidUserRoles {
		if r == role {
			return true
		}
	}
	return false
}
