package builtin

import (
	"context"
	"io"

	"github.com/mwantia/mirrorfs/cmd"
)

type CatCommand struct {
}

func (c *CatCommand) Name() string {
	return "cat"
}

func (c *CatCommand) Description() string {
	return "Print the content of a file"
}

func (c *CatCommand) Usage() string {
	return "cat <path>"
}

func (c *CatCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if err := requireArgs(c, args, 1); err != nil {
		return 2, err
	}

	rc, err := api.OpenFile(ctx, args.Args[0])
	if err != nil {
		return 1, err
	}
	defer rc.Close()

	if _, err := io.Copy(writer, rc); err != nil {
		return 1, err
	}

	return 0, nil
}

func (c *CatCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
