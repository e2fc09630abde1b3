package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/mirrorfs/cmd"
)

type VerifyCommand struct {
}

func (v *VerifyCommand) Name() string {
	return "verify"
}

func (v *VerifyCommand) Description() string {
	return "Compare local files with their remote copies"
}

func (v *VerifyCommand) Usage() string {
	return "verify <path>..."
}

// Execute exits with 1 if any remote copy is missing or differs.
func (v *VerifyCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if err := requireArgs(v, args, 1); err != nil {
		return 2, err
	}

	code := 0
	for _, path := range args.Args {
		matches, err := api.VerifyFile(ctx, path)
		if err != nil {
			return 1, err
		}

		status := "ok"
		if !matches {
			status = "mismatch"
			code = 1
		}
		fmt.Fprintf(writer, "%-8s %s\n", status, path)
	}

	return code, nil
}

func (v *VerifyCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
