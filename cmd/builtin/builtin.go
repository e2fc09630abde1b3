package builtin

import (
	"fmt"

	"github.com/mwantia/mirrorfs/cmd"
)

// Commands returns a fresh instance of every builtin command.
func Commands() []cmd.Command {
	return []cmd.Command{
		&PutCommand{},
		&CatCommand{},
		&RmCommand{},
		&RmdirCommand{},
		&LsCommand{},
		&StatCommand{},
		&UrlCommand{},
		&VerifyCommand{},
		&ContentTypeCommand{},
	}
}

func requireArgs(c cmd.Command, args *cmd.CommandArgs, n int) error {
	if len(args.Args) < n {
		return fmt.Errorf("usage: %s", c.Usage())
	}
	return nil
}
