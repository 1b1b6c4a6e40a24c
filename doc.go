// Package main implements the bumpsemver CLI tool.
//
// The bumpsemver tool is a build-automation step that increments a semantic
// version stored on its own in a text file. It reads the file, checks that it
// holds exactly <major>.<minor>.<patch> (a single trailing "\n" or "\r\n" is
// allowed), bumps the requested component, and writes the new version back to
// the same file without a trailing line terminator. When the file does not hold
// a valid version nothing is written and the tool exits with status 1.
//
// Command Usage:
//
//	bumpsemver [flags]
//
// Flags (each can also be set from the environment variable in brackets):
//
//	--workspace:        Base directory. [GITHUB_WORKSPACE] (Defaults to ".")
//	--target-directory: Directory of the version file relative to the workspace.
//	                    [INPUT_TARGET_DIRECTORY] (Defaults to ".")
//	--target-file:      Name of the version file. [INPUT_TARGET_FILE] (Required)
//	--bump:             One of patch, minor or major. [INPUT_BUMP] (Defaults to "patch")
//	--log-level:        debug, info, warn or error. [LOG_LEVEL] (Defaults to "info")
//	--version:          Displays the version of the bumpsemver CLI tool and exits.
//
// Examples:
//
//	# Bump the patch version (e.g. 1.2.3 → 1.2.4)
//	bumpsemver --target-file VERSION
//
//	# Bump the minor version (e.g. 1.2.3 → 1.3.0)
//	bumpsemver --target-file VERSION --bump minor
//
//	# Bump the major version (e.g. 1.2.3 → 2.0.0)
//	bumpsemver --target-file VERSION --bump major
//
//	# Configure entirely from the environment, as a CI step does
//	GITHUB_WORKSPACE=/src INPUT_TARGET_DIRECTORY=build INPUT_TARGET_FILE=semver bumpsemver
//
// For the library API, see the documentation in the "pkg" package.
package main
