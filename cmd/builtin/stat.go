package builtin

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mwantia/mirrorfs/cmd"
)

type StatCommand struct {
}

func (s *StatCommand) Name() string {
	return "stat"
}

func (s *StatCommand) Description() string {
	return "Show local paths, URL, size and timestamps of a file or directory"
}

func (s *StatCommand) Usage() string {
	return "stat <path>"
}

func (s *StatCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if err := requireArgs(s, args, 1); err != nil {
		return 2, err
	}

	path := args.Args[0]

	var kind string
	switch {
	case api.DirectoryExists(ctx, path):
		kind = "directory"
	case api.FileExists(ctx, path):
		kind = "file"
	default:
		return 1, fmt.Errorf("stat: '%s': no such file or directory", path)
	}

	modified, err := api.GetLastModified(ctx, path)
	if err != nil {
		return 1, err
	}
	created, err := api.GetCreated(ctx, path)
	if err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "  Path: %s\n", api.GetFullPath(path))
	fmt.Fprintf(writer, "   URL: %s\n", api.GetURL(path))
	fmt.Fprintf(writer, "  Type: %s\n", kind)

	if kind == "file" {
		size, err := api.GetSize(ctx, path)
		if err != nil {
			return 1, err
		}
		fmt.Fprintf(writer, "  Size: %s (%s bytes)\n", humanize.Bytes(uint64(size)), humanize.Comma(size))
	}

	fmt.Fprintf(writer, "Modify: %s (%s)\n", modified.Format(time.RFC3339), humanize.Time(modified))
	fmt.Fprintf(writer, " Birth: %s (%s)\n", created.Format(time.RFC3339), humanize.Time(created))

	return 0, nil
}

func (s *StatCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
