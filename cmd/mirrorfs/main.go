package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwantia/mirrorfs"
	"github.com/mwantia/mirrorfs/cmd"
	"github.com/mwantia/mirrorfs/data"
	"github.com/mwantia/mirrorfs/log"
)

const connectionEnv = "MIRRORFS_CONNECTION"

var globalFlags = &cmd.CommandFlagSet{
	Flags: map[string]*cmd.CommandFlag{
		"root":            {Name: "root", Type: "string", Required: true, Description: "Local directory backing the storage area"},
		"virtual-root":    {Name: "virtual-root", Type: "string", Default: "~/media", Description: "Logical root of the storage area"},
		"url":             {Name: "url", Type: "string", Description: "Public URL prefix (defaults to the virtual root)"},
		"connection":      {Name: "connection", Type: "string", Description: "Remote connection string (falls back to $" + connectionEnv + ")"},
		"mirror":          {Name: "mirror", Type: "bool", Default: false, Description: "Mirror writes and deletes to the remote"},
		"strip-container": {Name: "strip-container", Type: "string", Description: "Substring removed before deriving the container"},
		"strip-key":       {Name: "strip-key", Type: "string", Description: "'|'-separated substrings removed from object keys"},
		"policy":          {Name: "policy", Type: "string", Default: "ignore", Description: "Remote failure policy: ignore, journal or strict"},
		"journal":         {Name: "journal", Type: "string", Description: "Failure journal (sqlite://<path> or postgres://...)"},
		"log-level":       {Name: "log-level", Type: "string", Default: "warn", Description: "Log level"},
		"log-file":        {Name: "log-file", Type: "string", Description: "Write logs to a rotated file"},
	},
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, raw []string) int {
	args, err := cmd.NewParser(globalFlags).StopAtFirstArg().Parse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mirrorfs: %v\n", err)
		return 2
	}

	fs, err := open(ctx, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mirrorfs: %v\n", err)
		return 1
	}
	defer fs.Close(ctx)

	if len(args.Args) == 0 {
		usage(fs)
		return 2
	}

	code, err := fs.Execute(ctx, os.Stdout, args.Args...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mirrorfs: %v\n", err)
	}

	return code
}

func open(ctx context.Context, args *cmd.CommandArgs) (*mirrorfs.MirroredFileSystem, error) {
	level, err := log.ParseLevel(args.String("log-level"))
	if err != nil {
		return nil, err
	}

	policy, err := data.ParseMirrorPolicy(args.String("policy"))
	if err != nil {
		return nil, err
	}

	connection := args.String("connection")
	if connection == "" {
		connection = os.Getenv(connectionEnv)
	}

	opts := []mirrorfs.Option{
		mirrorfs.WithLogLevel(level),
		mirrorfs.WithMirrorPolicy(policy),
	}
	if file := args.String("log-file"); file != "" {
		opts = append(opts, mirrorfs.WithLogFile(file), mirrorfs.WithoutTerminalLog())
	}
	if address := args.String("journal"); address != "" {
		j, err := mirrorfs.OpenJournal(ctx, address)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mirrorfs.WithJournal(j))
	}

	return mirrorfs.NewMirroredFileSystem(ctx, mirrorfs.Config{
		VirtualRoot:          args.String("virtual-root"),
		LocalRoot:            args.String("root"),
		URLPrefix:            args.String("url"),
		ConnectionString:     connection,
		MirrorEnabled:        args.Bool("mirror"),
		ContainerStripPrefix: args.String("strip-container"),
		KeyStripPrefix:       args.String("strip-key"),
	}, opts...)
}

func usage(fs *mirrorfs.MirroredFileSystem) {
	fmt.Fprintln(os.Stderr, "usage: mirrorfs --root <dir> [flags] <command> [args]")
	fmt.Fprintln(os.Stderr, "\ncommands:")
	for _, c := range fs.Commands() {
		fmt.Fprintf(os.Stderr, "  %-40s %s\n", c.Usage(), c.Description())
	}
}
