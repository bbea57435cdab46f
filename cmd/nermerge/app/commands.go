package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/corpuskit/nermerge/cmd/nermerge/cmd/convert"
	"github.com/corpuskit/nermerge/cmd/nermerge/cmd/inspect"
	"github.com/corpuskit/nermerge/cmd/nermerge/cmd/merge"
)

// NewMergeCommand creates the merge command with app dependencies.
func (a *App) NewMergeCommand() *cobra.Command {
	return merge.NewCommand(a)
}

// NewConvertCommand creates the convert command with app dependencies.
func (a *App) NewConvertCommand() *cobra.Command {
	return convert.NewCommand(a)
}

// NewInspectCommand creates the inspect command with app dependencies.
func (a *App) NewInspectCommand() *cobra.Command {
	return inspect.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the nermerge CLI.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("nermerge version %s\n", a.version)
			fmt.Printf("commit: %s\n", a.commit)
			fmt.Printf("built: %s\n", a.date)
			fmt.Printf("built by: %s\n", a.builtBy)
			fmt.Printf("go version: %s\n", runtime.Version())
			fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
