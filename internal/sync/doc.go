// Package sync installs registry components into a project and
// reconciles the installed copies with their canonical sources: it
// computes unified diffs against the registry and rewrites drifted
// files with a backup of the local version.
package sync
