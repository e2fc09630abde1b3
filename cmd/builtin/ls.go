package builtin

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/dustin/go-humanize"
	"github.com/mwantia/mirrorfs/cmd"
)

type LsCommand struct {
}

// Name returns the command identifier
func (ls *LsCommand) Name() string {
	return "ls"
}

// Description returns human-readable help text
func (ls *LsCommand) Description() string {
	return "List directories and files of a directory"
}

// Usage returns a usage string for help
func (ls *LsCommand) Usage() string {
	return "ls [-l] [-d] [--filter <glob>] [path]"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (ls *LsCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	dir := args.Arg(0, "")
	if dir != "" && !api.DirectoryExists(ctx, dir) {
		return 1, fmt.Errorf("ls: '%s': no such directory", dir)
	}

	long := args.Bool("long")

	for _, sub := range api.GetDirectories(ctx, dir) {
		if !long {
			fmt.Fprintf(writer, "%s/\n", path.Base(sub))
			continue
		}

		modified, _ := api.GetLastModified(ctx, sub)
		fmt.Fprintf(writer, "d %10s  %-16s %s/\n", "-", humanize.Time(modified), path.Base(sub))
	}

	if args.Bool("directories") {
		return 0, nil
	}

	for _, file := range api.GetFiles(ctx, dir, args.String("filter")) {
		if !long {
			fmt.Fprintln(writer, path.Base(file))
			continue
		}

		size, _ := api.GetSize(ctx, file)
		modified, _ := api.GetLastModified(ctx, file)
		fmt.Fprintf(writer, "- %10s  %-16s %s\n", humanize.Bytes(uint64(size)), humanize.Time(modified), path.Base(file))
	}

	return 0, nil
}

// GetFlags returns the flag set for this command
func (ls *LsCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"long": {
				Name:        "long",
				Short:       "l",
				Type:        "bool",
				Default:     false,
				Description: "Show size and modification time",
			},
			"directories": {
				Name:        "directories",
				Short:       "d",
				Type:        "bool",
				Default:     false,
				Description: "List directories only",
			},
			"filter": {
				Name:        "filter",
				Type:        "string",
				Default:     "*",
				Description: "Glob pattern matched against file names",
			},
		},
	}
}
