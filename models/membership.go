package models

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// MembershipKind selects which of the user's two video sets an operation
// works on.
type MembershipKind string

const (
	// MembershipLiked is the set of videos the user has liked.
	MembershipLiked MembershipKind = "liked"

	// MembershipShared is the set of videos the user has shared.
	MembershipShared MembershipKind = "shared"
)

// Valid reports whether k is one of the known membership kinds.
func (k MembershipKind) Valid() bool {
	return k == MembershipLiked || k == MembershipShared
}

// ResponseField returns the JSON field name under which the set of this kind
// is returned to clients ("likedVideos" / "sharedVideos").
func (k MembershipKind) ResponseField() string {
	return string(k) + "Videos"
}

// MembershipSet is an ordered collection of video identifiers without
// duplicates. Entries keep their insertion order.
//
// Identifiers are compared by exact string equality after trimming
// surrounding whitespace; no existence check against the catalog is made, so
// the set may hold ids of videos that no longer (or never) existed.
type MembershipSet []string

// NormalizeVideoID returns the canonical textual form of a video id.
func NormalizeVideoID(id string) string {
	return strings.TrimSpace(id)
}

// Contains reports whether id is present in the set.
func (s MembershipSet) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Toggle flips the membership of id and returns the resulting set together
// with added == true when id was appended and false when it was removed.
//
// The receiver is never modified. Toggling the same id twice yields a set
// equal to the original.
func (s MembershipSet) Toggle(id string) (MembershipSet, bool) {
	id = NormalizeVideoID(id)

	if idx := s.indexOf(id); idx >= 0 {
		next := make(MembershipSet, 0, len(s)-1)
		next = append(next, s[:idx]...)
		next = append(next, s[idx+1:]...)
		return next, false
	}

	next := make(MembershipSet, 0, len(s)+1)
	next = append(next, s...)
	next = append(next, id)
	return next, true
}

// Validate checks the no-duplicates invariant.
func (s MembershipSet) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, id := range s {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate video id %q in membership set", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// SortVideos orders videos by the position of their ids in the set, oldest
// membership first. Videos whose id is not in the set go last.
func (s MembershipSet) SortVideos(videos []Video) {
	position := make(map[string]int, len(s))
	for i, id := range s {
		position[NormalizeVideoID(id)] = i
	}
	rank := func(v Video) int {
		if i, ok := position[v.VideoID]; ok {
			return i
		}
		return len(s)
	}

	slices.SortStableFunc(videos, func(a, b Video) int {
		return cmp.Compare(rank(a), rank(b))
	})
}

func (s MembershipSet) indexOf(id string) int {
	id = NormalizeVideoID(id)
	for i, stored := range s {
		if NormalizeVideoID(stored) == id {
			return i
		}
	}
	return -1
}
