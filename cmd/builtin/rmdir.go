package builtin

import (
	"context"
	"io"

	"github.com/mwantia/mirrorfs/cmd"
)

type RmdirCommand struct {
}

func (rd *RmdirCommand) Name() string {
	return "rmdir"
}

func (rd *RmdirCommand) Description() string {
	return "Delete a directory and its remote objects"
}

func (rd *RmdirCommand) Usage() string {
	return "rmdir [-r] <path>"
}

func (rd *RmdirCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if err := requireArgs(rd, args, 1); err != nil {
		return 2, err
	}

	if err := api.DeleteDirectory(ctx, args.Args[0], args.Bool("recursive")); err != nil {
		return 1, err
	}

	return 0, nil
}

func (rd *RmdirCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"recursive": {
				Name:        "recursive",
				Short:       "r",
				Type:        "bool",
				Default:     false,
				Description: "Delete the directory including its content",
			},
		},
	}
}
