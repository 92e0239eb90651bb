package hack

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// CommandKind classifies a source line.
type CommandKind int

const (
	CommandA = CommandKind(0) // @value
	CommandC = CommandKind(1) // dest=comp;jump
	CommandL = CommandKind(2) // (label)
)

func (kind CommandKind) String() string {
	switch kind {
	case CommandA:
		return "A"
	case CommandC:
		return "C"
	case CommandL:
		return "L"
	}
	return fmt.Sprintf("CommandKind(%d)", int(kind))
}

// Command is a single classified source line with its extracted fields.
type Command struct {
	Kind   CommandKind
	LineNo int    // Physical line number in the source, 1-based.
	Text   string // Line text after comment and whitespace removal.

	symbol string
	dest   string
	comp   string
	jump   string
}

// Symbol returns the address target of an A-command or the name of a label.
// Panics on a C-command.
func (cmd *Command) Symbol() string {
	if cmd.Kind == CommandC {
		panic(fmt.Sprintf("hack: Symbol() on %v-command %q", cmd.Kind, cmd.Text))
	}
	return cmd.symbol
}

// Dest returns the destination mnemonic, empty if absent. Panics unless the
// command is a C-command.
func (cmd *Command) Dest() string {
	cmd.mustC("Dest")
	return cmd.dest
}

// Comp returns the computation mnemonic. Panics unless the command is a
// C-command.
func (cmd *Command) Comp() string {
	cmd.mustC("Comp")
	return cmd.comp
}

// Jump returns the jump mnemonic, empty if absent. Panics unless the command
// is a C-command.
func (cmd *Command) Jump() string {
	cmd.mustC("Jump")
	return cmd.jump
}

func (cmd *Command) mustC(field string) {
	if cmd.Kind != CommandC {
		panic(fmt.Sprintf("hack: %v() on %v-command %q", field, cmd.Kind, cmd.Text))
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Parser reads Hack assembly text one command at a time, stripping comments
// and whitespace and skipping lines that reduce to nothing. It holds only the
// current classified command; advancing discards prior state.
type Parser struct {
	scanner *bufio.Scanner
	lineno  int
	current Command
}

func NewParser(input io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(input)}
}

// Scan advances to the next command, returning false at end of input or on a
// read error. Check Err after Scan returns false.
func (p *Parser) Scan() bool {
	for p.scanner.Scan() {
		p.lineno++

		text, _, _ := strings.Cut(p.scanner.Text(), "//")
		text = whitespaceRe.ReplaceAllString(text, "")
		if text == "" {
			continue
		}

		p.current = classify(text, p.lineno)
		return true
	}

	return false
}

// Command returns the command most recently reached by Scan.
func (p *Parser) Command() Command {
	return p.current
}

// Err returns the first read error encountered by Scan.
func (p *Parser) Err() error {
	return p.scanner.Err()
}

// classify identifies the command shape and extracts its fields. The text
// must already be free of comments and whitespace.
func classify(text string, lineno int) (cmd Command) {
	cmd = Command{LineNo: lineno, Text: text}

	switch {
	case strings.HasPrefix(text, "@"):
		cmd.Kind = CommandA
		cmd.symbol = text[1:]
	case strings.HasPrefix(text, "("):
		cmd.Kind = CommandL
		cmd.symbol = strings.TrimSuffix(text[1:], ")")
	default:
		cmd.Kind = CommandC
		rest := text
		if dest, after, ok := strings.Cut(rest, "="); ok {
			cmd.dest = dest
			rest = after
		}
		if comp, jump, ok := strings.Cut(rest, ";"); ok {
			cmd.comp = comp
			cmd.jump = jump
		} else {
			cmd.comp = rest
		}
	}

	return
}
