// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Interest is a user-selectable tag in the platform taxonomy.
type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaginatedInterests is the interests list envelope.
type PaginatedInterests struct {
	Interests []Interest `json:"interests"`
	Total     int        `json:"total"`
}
