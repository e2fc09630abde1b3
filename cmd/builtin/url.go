package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/mirrorfs/cmd"
)

type UrlCommand struct {
}

func (u *UrlCommand) Name() string {
	return "url"
}

func (u *UrlCommand) Description() string {
	return "Print the public URL of one or more paths"
}

func (u *UrlCommand) Usage() string {
	return "url <path>..."
}

func (u *UrlCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if err := requireArgs(u, args, 1); err != nil {
		return 2, err
	}

	for _, path := range args.Args {
		fmt.Fprintln(writer, api.GetURL(path))
	}

	return 0, nil
}

func (u *UrlCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
