// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the records mirrored from the Veracity backend API:
// admins, users, moderators, interests, content, and analytics series.
package model

// Admin roles.
const (
	AdminRoleModerator = "moderator"
	AdminRoleOwner     = "owner"
)

// AdminInfo identifies the authenticated admin account.
type AdminInfo struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsOwner returns true if the admin has the owner role.
func (a *AdminInfo) IsOwner() bool {
	return a.Role == AdminRoleOwner
}

// Moderator represents an admin account in the moderators list.
// The record with the owner role is immutable: it is never offered
// a delete action.
type Moderator struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsOwner returns true if the moderator record is the owner account.
func (m *Moderator) IsOwner() bool {
	return m.Role == AdminRoleOwner
}

// PaginatedModerators is the moderators list envelope.
type PaginatedModerators struct {
	Moderators []Moderator `json:"moderators"`
	Total      int         `json:"total"`
}
