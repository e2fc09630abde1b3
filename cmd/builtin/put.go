package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mwantia/mirrorfs/cmd"
)

type PutCommand struct {
}

func (p *PutCommand) Name() string {
	return "put"
}

func (p *PutCommand) Description() string {
	return "Copy a local file into the storage area"
}

func (p *PutCommand) Usage() string {
	return "put [-f] <source> <path>"
}

func (p *PutCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if err := requireArgs(p, args, 2); err != nil {
		return 2, err
	}

	source, target := args.Args[0], args.Args[1]

	f, err := os.Open(source)
	if err != nil {
		return 1, err
	}
	defer f.Close()

	if err := api.AddFile(ctx, target, f, args.Bool("force")); err != nil {
		return 1, err
	}

	fmt.Fprintln(writer, api.GetURL(target))
	return 0, nil
}

func (p *PutCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"force": {
				Name:        "force",
				Short:       "f",
				Type:        "bool",
				Default:     false,
				Description: "Overwrite an existing file",
			},
		},
	}
}
