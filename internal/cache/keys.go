// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Key families. Each family groups the keys a mutation on that
// resource needs to invalidate together.
const (
	FamilyUsers        = "users"
	FamilyUser         = "user"
	FamilyModerators   = "moderators"
	FamilyInterests    = "interests"
	FamilyCurrentAdmin = "current-admin"
	FamilyAnalytics    = "analytics"
)

// Key builds a deterministic cache key from a resource name and
// request parameters. Parameters are sorted and empty values dropped,
// so logically identical requests share an entry regardless of the
// order the caller added them in.
func Key(resource string, params url.Values) string {
	if len(params) == 0 {
		return resource
	}

	names := make([]string, 0, len(params))
	for name, vals := range params {
		keep := false
		for _, v := range vals {
			if v != "" {
				keep = true
				break
			}
		}
		if keep {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return resource
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(resource)
	b.WriteByte('?')
	first := true
	for _, name := range names {
		for _, v := range params[name] {
			if v == "" {
				continue
			}
			if !first {
				b.WriteByte('&')
			}
			first = false
			b.WriteString(url.QueryEscape(name))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

// DetailKey builds a key for a single entity within a family,
// e.g. DetailKey(FamilyUser, id).
func DetailKey(family, id string) string {
	return family + ":" + id
}

// Generations tracks an invalidation generation per key family.
// A fetch snapshots the family generation before calling the backend;
// if a mutation bumped the generation while the request was in flight,
// the response is stale and must not be cached.
type Generations struct {
	mu   sync.Mutex
	gens map[string]uint64
}

// NewGenerations creates an empty generation tracker.
func NewGenerations() *Generations {
	return &Generations{gens: make(map[string]uint64)}
}

// Current returns the current generation for a family.
func (g *Generations) Current(family string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[family]
}

// Bump advances the family generation. Called alongside every
// invalidation of that family.
func (g *Generations) Bump(family string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gens[family]++
}

// Fresh reports whether a snapshot taken with Current is still the
// live generation for the family.
func (g *Generations) Fresh(family string, snapshot uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[family] == snapshot
}
