package cmd

// CommandArgs contains parsed command arguments
type CommandArgs struct {
	// Positional arguments (command-specific)
	Args []string

	// Parsed flags
	Flags map[string]any

	// Raw unparsed arguments (for custom parsing)
	Raw []string
}

// CommandFlagSet defines the expected flags for a command
type CommandFlagSet struct {
	Flags map[string]*CommandFlag
}

// CommandFlag represents a single command-line flag
type CommandFlag struct {
	Name        string `json:"name"`              // e.g., "type" or "t"
	Short       string `json:"short"`             // Single-char shorthand (e.g., "t")
	Type        string `json:"type"`              // "string", "bool", "int", "stringSlice"
	Default     any    `json:"default,omitempty"` // Default value
	Required    bool   `json:"required"`          // Must be provided
	Description string `json:"description"`       // Help text
	Multiple    bool   `json:"multiple"`          // Can be specified multiple times
}

// String returns the string flag value or an empty string.
func (ca *CommandArgs) String(name string) string {
	if value, ok := ca.Flags[name].(string); ok {
		return value
	}
	return ""
}

// Bool returns the bool flag value or false.
func (ca *CommandArgs) Bool(name string) bool {
	if value, ok := ca.Flags[name].(bool); ok {
		return value
	}
	return false
}

// Arg returns the positional argument at index or fallback.
func (ca *CommandArgs) Arg(index int, fallback string) string {
	if index < len(ca.Args) {
		return ca.Args[index]
	}
	return fallback
}
