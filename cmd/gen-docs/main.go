package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/stigoleg/idleguard/internal/config"
)

// gen-docs writes shell completions and a man page generated from the
// flag set the binary actually parses.

type flagDef struct {
	Short string
	Long  string
	Arg   string
	Desc  string
}

func main() {
	out := "."
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	flags := collectFlags()
	if err := writeCompletions(out, flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeMan(out, flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func collectFlags() []flagDef {
	var f config.Flags
	var defs []flagDef
	config.NewFlagSet(&f).VisitAll(func(fl *pflag.Flag) {
		d := flagDef{Long: "--" + fl.Name, Desc: fl.Usage}
		if fl.Shorthand != "" {
			d.Short = "-" + fl.Shorthand
		}
		if fl.Value.Type() != "bool" {
			d.Arg = "<" + fl.Value.Type() + ">"
		}
		defs = append(defs, d)
	})
	return append(defs, flagDef{Short: "-h", Long: "--help", Desc: "Show help message"})
}

func writeCompletions(out string, flags []flagDef) error {
	base := filepath.Join(out, "docs", "completions")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}
	name := config.AppName

	var opts []string
	for _, f := range flags {
		if f.Short != "" {
			opts = append(opts, f.Short)
		}
		opts = append(opts, f.Long)
	}
	bash := fmt.Sprintf(`_%[1]s() {
  local cur
  COMPREPLY=()
  cur="${COMP_WORDS[COMP_CWORD]}"
  if [[ ${cur} == -* ]] ; then
    COMPREPLY=( $(compgen -W "%[2]s" -- ${cur}) )
  fi
}
complete -F _%[1]s %[1]s
`, name, strings.Join(opts, " "))
	if err := os.WriteFile(filepath.Join(base, name+".bash"), []byte(bash), 0o644); err != nil {
		return err
	}

	var parts []string
	for _, f := range flags {
		parts = append(parts, fmt.Sprintf("'%s[%s]%s'", zshName(f), escapeBrackets(f.Desc), zshArg(f.Arg)))
	}
	zsh := "#compdef " + name + "\n_arguments " + strings.Join(parts, " ") + "\n"
	if err := os.WriteFile(filepath.Join(base, "_"+name), []byte(zsh), 0o644); err != nil {
		return err
	}

	var fish strings.Builder
	fish.WriteString("complete -c " + name + " -f\n")
	for _, f := range flags {
		fish.WriteString(fishLine(name, f))
	}
	return os.WriteFile(filepath.Join(base, name+".fish"), []byte(fish.String()), 0o644)
}

func zshName(f flagDef) string {
	if f.Arg != "" {
		return f.Long + "="
	}
	return f.Long
}

func zshArg(arg string) string {
	if arg == "" {
		return ""
	}
	return ":value:" + strings.Trim(arg, "<>")
}

func escapeBrackets(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`, "'", `'\''`).Replace(s)
}

func fishLine(name string, f flagDef) string {
	var b strings.Builder
	b.WriteString("complete -c " + name)
	if f.Short != "" {
		b.WriteString(" -s " + strings.TrimPrefix(f.Short, "-"))
	}
	b.WriteString(" -l " + strings.TrimPrefix(f.Long, "--"))
	if f.Arg != "" {
		b.WriteString(" -r")
	}
	b.WriteString(` -d "` + strings.ReplaceAll(f.Desc, `"`, `\"`) + "\"\n")
	return b.String()
}

func roffEscape(s string) string {
	return strings.ReplaceAll(s, "-", `\-`)
}

func writeMan(out string, flags []flagDef) error {
	dir := filepath.Join(out, "man")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := config.AppName

	var b strings.Builder
	fmt.Fprintf(&b, ".TH %q \"1\" \"\" %q \"User Commands\"\n", strings.ToUpper(name), name)
	fmt.Fprintf(&b, ".SH NAME\n%s \\- %s\n", name, config.AppDescription)
	fmt.Fprintf(&b, ".SH SYNOPSIS\n.B %s\n[\\fIflags\\fR]\n", name)
	fmt.Fprintf(&b, ".SH DESCRIPTION\n%s\n", config.AppDescription)
	b.WriteString("Press a key combination (default Ctrl+Shift+F12) to start or stop from any window.\n")
	b.WriteString(".SH OPTIONS\n")
	for _, f := range flags {
		names := f.Long
		if f.Short != "" {
			names = f.Short + ", " + names
		}
		if f.Arg != "" {
			names += " " + f.Arg
		}
		fmt.Fprintf(&b, ".TP\n\\fB%s\\fR\n%s\n", roffEscape(names), f.Desc)
	}
	b.WriteString(".SH EXAMPLES\n")
	fmt.Fprintf(&b, ".TP\n\\fB%s\\fR\nOpen the window with a 60 second keyboard preset.\n", name)
	fmt.Fprintf(&b, ".TP\n\\fB%s \\-i 30 \\-m scroll,move \\-s\\fR\nScroll and move the pointer every 30 seconds, starting immediately.\n", name)
	fmt.Fprintf(&b, ".TP\n\\fB%s \\-\\-modes superclean \\-t dark\\fR\nUse the Super Clean profile with the dark theme.\n", name)
	return os.WriteFile(filepath.Join(dir, name+".1"), []byte(b.String()), 0o644)
}
