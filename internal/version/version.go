// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package version carries build-time version information. The variables
// are injected with -ldflags at release build time; development builds
// report "dev".
package version

import "runtime"

var (
	// Name is the product name.
	Name = "semanticschemas"
	// Version is the release version, e.g. "v0.3.1".
	Version = "dev"
	// GitRevision is the git commit the binary was built from.
	GitRevision = "unknown"
	// BuildTime is the UTC build timestamp in RFC 3339.
	BuildTime = "unknown"
)

// Info bundles the build information of the running binary.
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	GitRevision string `json:"gitRevision"`
	BuildTime   string `json:"buildTime"`
	GoOS        string `json:"goOS"`
	GoArch      string `json:"goArch"`
	GoVersion   string `json:"goVersion"`
}

// Get returns the build information.
func Get() Info {
	return Info{
		Name:        Name,
		Version:     Version,
		GitRevision: GitRevision,
		BuildTime:   BuildTime,
		GoOS:        runtime.GOOS,
		GoArch:      runtime.GOARCH,
		GoVersion:   runtime.Version(),
	}
}
