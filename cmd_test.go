package mirrorfs_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwantia/mirrorfs/cmd"
)

type echoCommand struct{}

func (*echoCommand) Name() string        { return "echo" }
func (*echoCommand) Description() string { return "Print the arguments" }
func (*echoCommand) Usage() string       { return "echo <text>..." }
func (*echoCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}

func (*echoCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	_, err := io.WriteString(writer, strings.Join(args.Args, " ")+"\n")
	return 0, err
}

// TestExecute_Builtins runs the builtin commands against a mirrored storage area.
func TestExecute_Builtins(t *testing.T) {
	ctx := t.Context()
	fs, spy := newMirroredTestFileSystem(t)

	source := filepath.Join(t.TempDir(), "source.jpg")
	if err := os.WriteFile(source, []byte("jpeg"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	run := func(args ...string) string {
		t.Helper()

		var out bytes.Buffer
		code, err := fs.Execute(ctx, &out, args...)
		if err != nil || code != 0 {
			t.Fatalf("Execute %v failed with %d: %v", args, code, err)
		}
		return out.String()
	}

	if out := run("put", source, "images/2024/pic.jpg"); out != "/media/images/2024/pic.jpg\n" {
		t.Errorf("Unexpected put output: %q", out)
	}
	if _, found := readRemote(t, spy, "images", "2024/pic.jpg"); !found {
		t.Errorf("Expected put to mirror the file")
	}

	if code, err := fs.Execute(ctx, io.Discard, "put", source, "images/2024/pic.jpg"); err == nil || code == 0 {
		t.Errorf("Expected put without -f to fail on an existing file")
	}
	run("put", "-f", source, "images/2024/pic.jpg")

	if out := run("cat", "images/2024/pic.jpg"); out != "jpeg" {
		t.Errorf("Unexpected cat output: %q", out)
	}
	if out := run("ls", "images"); out != "2024/\n" {
		t.Errorf("Unexpected ls output: %q", out)
	}
	if out := run("ls", "--filter", "*.png", "images/2024"); out != "" {
		t.Errorf("Unexpected filtered ls output: %q", out)
	}
	if out := run("ls", "-l", "images/2024"); !strings.Contains(out, "pic.jpg") || !strings.Contains(out, "4 B") {
		t.Errorf("Unexpected long ls output: %q", out)
	}
	if out := run("url", "images/2024/pic.jpg"); out != "/media/images/2024/pic.jpg\n" {
		t.Errorf("Unexpected url output: %q", out)
	}
	if out := run("stat", "images/2024/pic.jpg"); !strings.Contains(out, "Type: file") {
		t.Errorf("Unexpected stat output: %q", out)
	}
	if out := run("verify", "images/2024/pic.jpg"); !strings.HasPrefix(out, "ok") {
		t.Errorf("Unexpected verify output: %q", out)
	}
	if out := run("content-type", "images", "image/jpeg"); out != "updated 1 objects\n" {
		t.Errorf("Unexpected content-type output: %q", out)
	}

	run("rmdir", "-r", "images/2024")
	if fs.DirectoryExists(ctx, "images/2024") {
		t.Errorf("Expected rmdir to remove the directory")
	}
	if spy.Len() != 0 {
		t.Errorf("Expected rmdir to remove remote objects, %d left", spy.Len())
	}
}

// TestExecute_CustomCommands verifies registration of additional commands.
func TestExecute_CustomCommands(t *testing.T) {
	ctx := t.Context()
	fs, _ := newMirroredTestFileSystem(t)

	if err := fs.RegisterCommand(&echoCommand{}); err != nil {
		t.Fatalf("RegisterCommand failed: %v", err)
	}
	if err := fs.RegisterCommand(&echoCommand{}); err == nil {
		t.Errorf("Expected duplicate registration to fail")
	}

	var out bytes.Buffer
	if _, err := fs.Execute(ctx, &out, "echo", "hello", "world"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.String() != "hello world\n" {
		t.Errorf("Unexpected output: %q", out.String())
	}

	if ok, err := fs.UnregisterCommand("echo"); !ok || err != nil {
		t.Fatalf("UnregisterCommand failed: %v", err)
	}
	if _, err := fs.Execute(ctx, &out, "echo"); err == nil {
		t.Errorf("Expected unknown command to fail")
	}
	if _, err := fs.Execute(ctx, &out); err == nil {
		t.Errorf("Expected empty command to fail")
	}
}
