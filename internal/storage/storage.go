// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storage resolves media references returned by the backend
// into absolute URLs the browser can load.
package storage

import "strings"

// Resolver turns backend media paths into absolute URLs.
// The backend stores either absolute URLs (external avatars) or paths
// relative to the storage service.
type Resolver struct {
	baseURL string
}

// NewResolver creates a resolver for the given storage base URL.
// An empty base URL leaves relative paths unresolved.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve returns the absolute URL for a media reference, or "" when
// the reference is empty. Callers render an initials badge in that case.
func (r *Resolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	if r.baseURL == "" {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return r.baseURL + ref
}

// ResolveAll maps Resolve over a slice of references, keeping order.
func (r *Resolver) ResolveAll(refs []string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = r.Resolve(ref)
	}
	return out
}
