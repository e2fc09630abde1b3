package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/mirrorfs/cmd"
)

type ContentTypeCommand struct {
}

func (ct *ContentTypeCommand) Name() string {
	return "content-type"
}

func (ct *ContentTypeCommand) Description() string {
	return "Rewrite the content type of every remote object in a container"
}

func (ct *ContentTypeCommand) Usage() string {
	return "content-type <container> <content-type>"
}

func (ct *ContentTypeCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if err := requireArgs(ct, args, 2); err != nil {
		return 2, err
	}

	count, err := api.SetContentTypeForContainer(ctx, args.Args[0], args.Args[1])
	if err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "updated %d objects\n", count)
	return 0, nil
}

func (ct *ContentTypeCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
