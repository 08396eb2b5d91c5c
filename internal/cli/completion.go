package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "checked")
	Short     string   // short flag without "-" (e.g., "n")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "count", Short: "n", Help: "Number of terms to generate", ValueName: "number"},
	{Long: "width", Short: "w", Help: "Element width", Values: []string{"8", "16", "32", "64", "128", "big"}, ValueName: "width"},
	{Long: "checked", Help: "Stop at overflow instead of wrapping"},
	{Long: "all", Help: "Compare checked saturation across all fixed widths"},
	{Long: "tui", Help: "Open the interactive sequence viewer"},
	{Long: "timeout", Help: "Maximum run duration", Values: []string{"30s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "metrics-addr", Help: "Prometheus metrics listen address", ValueName: "address"},
	{Long: "output", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Print terms only"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh").
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh)", shell)
	}
}

func generateBashCompletion(out io.Writer) error {
	var flags []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			flags = append(flags, "--"+f.Long)
		}
		if f.Short != "" {
			flags = append(flags, "-"+f.Short)
		}
	}

	fmt.Fprintf(out, `# bash completion for fibext
_fibext() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in
`)
	for _, f := range flagRegistry {
		if len(f.Values) == 0 {
			continue
		}
		fmt.Fprintf(out, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
			f.Long, strings.Join(f.Values, " "))
	}
	fmt.Fprintf(out, `        --output)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
    return 0
}
complete -F _fibext fibext
`, strings.Join(flags, " "))
	return nil
}

func generateZshCompletion(out io.Writer) error {
	fmt.Fprintln(out, "#compdef fibext")
	fmt.Fprintln(out, "_arguments \\")

	lines := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		spec := "--" + f.Long
		if f.Long == "" {
			spec = "-" + f.Short
		}
		entry := fmt.Sprintf("  '%s[%s]", spec, f.Help)
		switch {
		case f.IsFile:
			entry += fmt.Sprintf(":%s:_files", f.ValueName)
		case len(f.Values) > 0:
			entry += fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			entry += fmt.Sprintf(":%s:", f.ValueName)
		}
		entry += "'"
		lines = append(lines, entry)
	}
	fmt.Fprintln(out, strings.Join(lines, " \\\n"))
	return nil
}
