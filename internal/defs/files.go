package defs

import "io/fs"

// Common file names used across the project.
const (
	// ManifestYAML is the per-template metadata file inside each
	// embedded template directory.
	ManifestYAML = "manifest.yaml"

	// ConfigYAML is the optional user defaults file under the scarff
	// config directory.
	ConfigYAML = "config.yaml"

	// TemplateSuffix marks a content source as parameterized; sources
	// without it are copied verbatim.
	TemplateSuffix = ".tmpl"
)

// Filesystem permissions for generated artifacts.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)

// Prefixes for the transaction's sibling work directories. Dotted so
// half-cleaned remnants are easy to spot and never collide with project
// names, which may not start with a dot.
const (
	StagingPrefix = ".scarff-stage-"
	BackupPrefix  = ".scarff-old-"
)
