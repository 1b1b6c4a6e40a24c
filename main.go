// Package main implements a CLI tool that bumps the semantic version recorded
// in a plain text file.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	bumpsemver "github.com/bcomnes/bumpsemver/pkg"
	"github.com/bcomnes/bumpsemver/pkg/logging"
)

const name = "bumpsemver"

// configFromCmd resolves flags and their environment sources into a Config.
func configFromCmd(cmd *cli.Command) (bumpsemver.Config, error) {
	kind, err := bumpsemver.ParseBumpKind(cmd.String("bump"))
	if err != nil {
		return bumpsemver.Config{}, err
	}
	cfg := bumpsemver.Config{
		Workspace:       cmd.String("workspace"),
		TargetDirectory: cmd.String("target-directory"),
		TargetFile:      cmd.String("target-file"),
		Bump:            kind,
	}
	if err := cfg.Validate(); err != nil {
		return bumpsemver.Config{}, err
	}
	return cfg, nil
}

func printSummary(meta bumpsemver.VersionMeta) {
	green := color.New(color.FgGreen).SprintFunc()
	label := color.New(color.Faint).SprintFunc()

	fmt.Println(green("Version bump successful!"))
	fmt.Printf("%s %s\n", label("Old Version:"), meta.OldVersion)
	fmt.Printf("%s %s\n", label("New Version:"), meta.NewVersion)
	fmt.Printf("%s   %s\n", label("Bump Type:"), meta.BumpType)
	fmt.Printf("%s        %s\n", label("File:"), meta.Path)
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Increment the semantic version recorded in a file",
		Version: Version,
		Description: `Reads <workspace>/<target-directory>/<target-file>, which must contain exactly
<major>.<minor>.<patch> (optionally followed by one line terminator), bumps the
requested component and writes the new version back without a line terminator.

Examples:
  bumpsemver --target-file VERSION
  bumpsemver --target-directory build --target-file semver --bump minor
  GITHUB_WORKSPACE=$PWD INPUT_TARGET_FILE=semver INPUT_BUMP=major bumpsemver`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "workspace",
				Value:   ".",
				Usage:   "Base directory the target directory is relative to",
				Sources: cli.EnvVars("GITHUB_WORKSPACE"),
			},
			&cli.StringFlag{
				Name:    "target-directory",
				Value:   ".",
				Usage:   "Directory containing the version file, relative to the workspace",
				Sources: cli.EnvVars("INPUT_TARGET_DIRECTORY"),
			},
			&cli.StringFlag{
				Name:    "target-file",
				Usage:   "Name of the file holding the version",
				Sources: cli.EnvVars("INPUT_TARGET_FILE"),
			},
			&cli.StringFlag{
				Name:    "bump",
				Value:   bumpsemver.Patch.String(),
				Usage:   fmt.Sprintf("Component to increment (supported values: %s)", strings.Join(bumpsemver.SupportedBumpKinds(), ", ")),
				Sources: cli.EnvVars("INPUT_BUMP"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			logging.SetDefaultLogger(name, Version, cmd.String("log-level"))

			cfg, err := configFromCmd(cmd)
			if err != nil {
				return err
			}

			meta, err := bumpsemver.Run(afero.NewOsFs(), cfg)
			if err != nil {
				return err
			}
			printSummary(meta)
			return nil
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
