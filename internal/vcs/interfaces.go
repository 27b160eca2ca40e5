package vcs

import "context"

// Release is the provider-neutral view of a published release.
type Release struct {
	TagName string
	Name    string
	Body    string
	URL     string
}

// ReleaseClient defines what release syncing needs from a provider API.
type ReleaseClient interface {
	// GetRelease returns the release for a tag, or nil when none exists.
	GetRelease(ctx context.Context, tag string) (*Release, error)
	// CreateRelease publishes a release for an existing tag.
	CreateRelease(ctx context.Context, tag, name, body string) (*Release, error)
}
