package regex

import "regexp"

var (
	// Tag and version patterns
	TagVersion = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)$`)

	// Classifier output patterns (two-line TYPE/REASON contract)
	ClassifierType   = regexp.MustCompile(`(?i)^\s*(?:TYPE|TIPO)\s*:\s*(major|minor|patch)\s*$`)
	ClassifierReason = regexp.MustCompile(`(?i)^\s*(?:REASON|RAZ[OÓ]N)\s*:\s*(.+)$`)

	// Git and repo patterns
	SSHRepo   = regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	HTTPSRepo = regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)
	RemoteTag = regexp.MustCompile(`^([0-9a-f]{40})\s+refs/tags/(.+)$`)

	// AI output cleanup
	MarkdownFence = regexp.MustCompile("(?s)```(?:[a-z]*)\n?(.*?)```")
)
