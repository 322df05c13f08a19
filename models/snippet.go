// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SnippetType defines how Snippet.Content must be interpreted.
type SnippetType string

const (
	// SnippetText is plain UTF-8 text copied by the user.
	SnippetText SnippetType = "text"

	// SnippetImage is an image stored as a base64 data URI
	// (e.g. "data:image/png;base64,...").
	SnippetImage SnippetType = "image"
)

// TagAuto marks snippets that were created from the pending capture queue
// rather than saved explicitly by the user.
const TagAuto = "auto"

// Snippet is a single clipboard entry of the vault. Snippets exist in
// plaintext only inside an unlocked session; at rest the whole collection is
// encrypted as one envelope.
type Snippet struct {
	// ID is a UUID assigned at creation. It never changes.
	ID string `json:"id"`

	// Type is either "text" or "image".
	Type SnippetType `json:"type"`

	// Content holds the text itself or an image data URI.
	Content string `json:"content"`

	// MetaText is an optional caption. Only images carry one.
	MetaText string `json:"metaText,omitempty"`

	// Tags is an ordered list of free-form labels.
	Tags []string `json:"tags"`

	// Date is the creation time of the snippet.
	Date time.Time `json:"date"`
}

// HasTag reports whether s is labelled with tag.
func (s Snippet) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Collection is the full ordered list of snippets, most recent first.
// It is the unit of encryption: it is always sealed and persisted as a whole.
type Collection []Snippet

// Clone returns a deep copy of c so callers can't alias session state.
func (c Collection) Clone() Collection {
	if c == nil {
		return Collection{}
	}
	out := make(Collection, len(c))
	for i, s := range c {
		out[i] = s
		if s.Tags != nil {
			out[i].Tags = append([]string(nil), s.Tags...)
		}
	}
	return out
}

// ContainsContent reports whether any snippet has exactly the given content.
func (c Collection) ContainsContent(content string) bool {
	for _, s := range c {
		if s.Content == content {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the snippet with the given id or -1.
func (c Collection) IndexOf(id string) int {
	for i, s := range c {
		if s.ID == id {
			return i
		}
	}
	return -1
}
