// Package bumpsemver increments the semantic version recorded in a plain text file.
//
// It provides functionalities for:
//   - Validating a version string of the exact form <major>.<minor>.<patch>,
//     optionally followed by a single "\n" or "\r\n".
//   - Bumping the major, minor or patch component and resetting the lower ones.
//   - Reading the version file through an afero.Fs, writing the bumped version
//     back to the same path, and reporting what changed.
//
// The version file holds nothing but the version. The written version never
// ends with a line terminator, whether or not the original did.
//
// This library is used by the bumpsemver command-line tool in the module root
// and can be called directly from other Go programs.
//
// Usage Example:
//
//	import (
//	    "log"
//
//	    "github.com/spf13/afero"
//
//	    bumpsemver "github.com/bcomnes/bumpsemver/pkg"
//	)
//
//	func main() {
//	    cfg := bumpsemver.Config{Workspace: ".", TargetDirectory: ".", TargetFile: "VERSION", Bump: bumpsemver.Minor}
//	    meta, err := bumpsemver.Run(afero.NewOsFs(), cfg)
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("bumped %s to %s", meta.OldVersion, meta.NewVersion)
//	}
//
// The pure transformation is available on its own:
//
//	next, err := bumpsemver.Bump("1.2.3\n", bumpsemver.Patch) // "1.2.4"
package bumpsemver
