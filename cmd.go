package mirrorfs

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/mwantia/mirrorfs/cmd"
	"github.com/mwantia/mirrorfs/cmd/builtin"
)

// CommandManager handles command registration, parsing, and execution
type CommandManager struct {
	mu   sync.RWMutex
	api  cmd.API
	cmds map[string]cmd.Command
}

func newCommandManager(api cmd.API) *CommandManager {
	cm := &CommandManager{
		api:  api,
		cmds: make(map[string]cmd.Command),
	}

	for _, c := range builtin.Commands() {
		cm.cmds[c.Name()] = c
	}

	return cm
}

// Register registers a custom command
func (cm *CommandManager) Register(c cmd.Command) error {
	if c == nil {
		return fmt.Errorf("command cannot be nil")
	}

	name := c.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	if _, exists := cm.cmds[name]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}

	cm.cmds[name] = c
	return nil
}

// Unregister removes a registered command
func (cm *CommandManager) Unregister(name string) (bool, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if _, exists := cm.cmds[name]; !exists {
		return false, fmt.Errorf("command not found: %s", name)
	}

	delete(cm.cmds, name)
	return true, nil
}

// Get returns a command by name
func (cm *CommandManager) Get(name string) (cmd.Command, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	c, exists := cm.cmds[name]
	if !exists {
		return nil, fmt.Errorf("command not found: %s", name)
	}

	return c, nil
}

// List returns all registered commands ordered by name
func (cm *CommandManager) List() []cmd.Command {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	commands := make([]cmd.Command, 0, len(cm.cmds))
	for _, c := range cm.cmds {
		commands = append(commands, c)
	}

	slices.SortFunc(commands, func(a, b cmd.Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return commands
}

// Execute parses and executes a command
func (cm *CommandManager) Execute(ctx context.Context, writer io.Writer, args ...string) (int, error) {
	if len(args) == 0 {
		return 1, fmt.Errorf("no command specified")
	}

	c, err := cm.Get(args[0])
	if err != nil {
		return 1, err
	}

	parsed, err := cmd.NewParser(c.GetFlags()).Parse(args[1:])
	if err != nil {
		return 1, fmt.Errorf("parse error: %w", err)
	}

	return c.Execute(ctx, cm.api, parsed, writer)
}

// RegisterCommand adds a custom command to this storage area.
func (mfs *MirroredFileSystem) RegisterCommand(c cmd.Command) error {
	return mfs.commands.Register(c)
}

func (mfs *MirroredFileSystem) UnregisterCommand(name string) (bool, error) {
	return mfs.commands.Unregister(name)
}

func (mfs *MirroredFileSystem) Commands() []cmd.Command {
	return mfs.commands.List()
}

// Execute runs a registered command, writing its output to writer.
func (mfs *MirroredFileSystem) Execute(ctx context.Context, writer io.Writer, args ...string) (int, error) {
	return mfs.commands.Execute(ctx, writer, args...)
}
