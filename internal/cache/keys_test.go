// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"net/url"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		params   url.Values
		want     string
	}{
		{
			name:     "no params",
			resource: "interests",
			params:   nil,
			want:     "interests",
		},
		{
			name:     "sorted params",
			resource: "users",
			params:   url.Values{"offset": {"10"}, "limit": {"10"}},
			want:     "users?limit=10&offset=10",
		},
		{
			name:     "empty values dropped",
			resource: "users",
			params:   url.Values{"limit": {"10"}, "search": {""}, "status": {""}},
			want:     "users?limit=10",
		},
		{
			name:     "all values empty",
			resource: "users",
			params:   url.Values{"search": {""}},
			want:     "users",
		},
		{
			name:     "values escaped",
			resource: "users",
			params:   url.Values{"search": {"a b&c"}},
			want:     "users?search=a+b%26c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.resource, tt.params); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyOrderIndependent(t *testing.T) {
	a := Key("users", url.Values{"limit": {"10"}, "offset": {"20"}, "status": {"active"}})
	b := Key("users", url.Values{"status": {"active"}, "offset": {"20"}, "limit": {"10"}})
	if a != b {
		t.Errorf("keys differ for identical params: %q vs %q", a, b)
	}
}

func TestDetailKey(t *testing.T) {
	if got := DetailKey(FamilyUser, "42"); got != "user:42" {
		t.Errorf("DetailKey() = %q, want %q", got, "user:42")
	}
}

func TestGenerations(t *testing.T) {
	g := NewGenerations()

	snap := g.Current(FamilyUsers)
	if !g.Fresh(FamilyUsers, snap) {
		t.Fatal("snapshot should be fresh before any bump")
	}

	g.Bump(FamilyUsers)
	if g.Fresh(FamilyUsers, snap) {
		t.Fatal("snapshot should be stale after bump")
	}

	// Other families are unaffected.
	other := g.Current(FamilyInterests)
	if !g.Fresh(FamilyInterests, other) {
		t.Fatal("unrelated family bumped")
	}

	snap = g.Current(FamilyUsers)
	if !g.Fresh(FamilyUsers, snap) {
		t.Fatal("new snapshot should be fresh")
	}
}
