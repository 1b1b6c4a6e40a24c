package bumpsemver

import (
	"fmt"

	"github.com/spf13/afero"
)

// ExampleBump shows the three bump kinds applied to the same version.
func ExampleBump() {
	for _, kind := range []BumpKind{Patch, Minor, Major} {
		next, err := Bump("1.2.3\n", kind)
		if err != nil {
			fmt.Println("bump failed:", err)
			return
		}
		fmt.Printf("%s: %s\n", kind, next)
	}

	if _, err := Bump("v1.2.3", Patch); err != nil {
		fmt.Println(err)
	}
	// Output:
	// patch: 1.2.4
	// minor: 1.3.0
	// major: 2.0.0
	// invalid version: expected <major>.<minor>.<patch> with decimal components
}

// ExampleRun bumps a version file held in an in-memory filesystem and prints
// the metadata and the updated file content.
func ExampleRun() {
	fsys := afero.NewMemMapFs()
	cfg := Config{Workspace: "/workspace", TargetDirectory: "release", TargetFile: "VERSION", Bump: Minor}
	if err := afero.WriteFile(fsys, cfg.Path(), []byte("0.9.4\n"), 0644); err != nil {
		fmt.Println("failed to write version file:", err)
		return
	}

	meta, err := Run(fsys, cfg)
	if err != nil {
		fmt.Println("version bump failed:", err)
		return
	}
	fmt.Println("Old Version:", meta.OldVersion)
	fmt.Println("New Version:", meta.NewVersion)
	fmt.Println("Bump Type:", meta.BumpType)

	data, err := afero.ReadFile(fsys, cfg.Path())
	if err != nil {
		fmt.Println("failed to read version file:", err)
		return
	}
	fmt.Printf("File: %q\n", string(data))
	// Output:
	// Old Version: 0.9.4
	// New Version: 0.10.0
	// Bump Type: minor
	// File: "0.10.0"
}
