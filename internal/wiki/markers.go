// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package wiki

import (
	"fmt"
	"strings"
)

// Schema region markers delimit the compiler-managed section of an entity
// page. They are HTML comments so wiki parser passes leave them intact.
// Everything outside the pair is wiki-editor territory.
const (
	SchemaRegionStart = "<!-- SemanticSchemas Schema Start -->"
	SchemaRegionEnd   = "<!-- SemanticSchemas Schema End -->"
)

// UpdateWithinMarkers replaces the content between the start and end markers
// of existing with region, preserving every byte outside the pair. When the
// markers are absent, a new marker block is appended after the existing
// content, separated by a blank line. A page carrying only one of the two
// markers, or the end marker before the start marker, is malformed.
func UpdateWithinMarkers(existing, region, start, end string) (string, error) {
	startIdx := strings.Index(existing, start)
	endIdx := strings.Index(existing, end)

	switch {
	case startIdx < 0 && endIdx < 0:
		return appendRegion(existing, region, start, end), nil
	case startIdx < 0 || endIdx < 0:
		return "", fmt.Errorf("%w: only one marker present", ErrMalformedMarkers)
	case endIdx < startIdx:
		return "", fmt.Errorf("%w: end marker before start marker", ErrMalformedMarkers)
	}

	var b strings.Builder
	b.WriteString(existing[:startIdx+len(start)])
	b.WriteString("\n")
	if region != "" {
		b.WriteString(strings.TrimRight(region, "\n"))
		b.WriteString("\n")
	}
	b.WriteString(existing[endIdx:])
	return b.String(), nil
}

func appendRegion(existing, region, start, end string) string {
	block := markerBlock(region, start, end)
	if existing == "" {
		return block
	}
	switch {
	case strings.HasSuffix(existing, "\n\n"):
		return existing + block
	case strings.HasSuffix(existing, "\n"):
		return existing + "\n" + block
	default:
		return existing + "\n\n" + block
	}
}

func markerBlock(region, start, end string) string {
	if region == "" {
		return start + "\n" + end + "\n"
	}
	return start + "\n" + strings.TrimRight(region, "\n") + "\n" + end + "\n"
}

// ExtractRegion returns the content between the markers, trimmed of the
// newline framing UpdateWithinMarkers adds. found is false when the page
// has no marker pair.
func ExtractRegion(content, start, end string) (region string, found bool, err error) {
	startIdx := strings.Index(content, start)
	endIdx := strings.Index(content, end)

	switch {
	case startIdx < 0 && endIdx < 0:
		return "", false, nil
	case startIdx < 0 || endIdx < 0:
		return "", false, fmt.Errorf("%w: only one marker present", ErrMalformedMarkers)
	case endIdx < startIdx:
		return "", false, fmt.Errorf("%w: end marker before start marker", ErrMalformedMarkers)
	}

	inner := content[startIdx+len(start) : endIdx]
	return strings.Trim(inner, "\n"), true, nil
}

// HasRegion reports whether content carries a well-formed marker pair.
func HasRegion(content, start, end string) bool {
	_, found, err := ExtractRegion(content, start, end)
	return err == nil && found
}
