package builtin

import (
	"context"
	"io"

	"github.com/mwantia/mirrorfs/cmd"
)

type RmCommand struct {
}

func (rm *RmCommand) Name() string {
	return "rm"
}

func (rm *RmCommand) Description() string {
	return "Delete one or more files"
}

func (rm *RmCommand) Usage() string {
	return "rm <path>..."
}

func (rm *RmCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if err := requireArgs(rm, args, 1); err != nil {
		return 2, err
	}

	for _, path := range args.Args {
		if err := api.DeleteFile(ctx, path); err != nil {
			return 1, err
		}
	}

	return 0, nil
}

func (rm *RmCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
