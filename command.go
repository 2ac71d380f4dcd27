package gridpaint

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyScript is returned when a script contains no command at all.
var ErrEmptyScript = errors.New("script has no commands")

// Op is a script command keyword.
type Op string

// The supported script commands.
const (
	OpAddRow        Op = "add-row"
	OpRemoveRow     Op = "remove-row"
	OpAddColumn     Op = "add-column"
	OpRemoveColumn  Op = "remove-column"
	OpColor         Op = "color"
	OpMode          Op = "mode"
	OpPaint         Op = "paint"
	OpFillAll       Op = "fill-all"
	OpFillUnpainted Op = "fill-unpainted"
	OpClear         Op = "clear"
)

var opAliases = map[string]Op{
	"add-col":    OpAddColumn,
	"remove-col": OpRemoveColumn,
	"colour":     OpColor,
}

// ScriptError locates a failing command inside a script.
type ScriptError struct {
	Line int
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Command is a single parsed script instruction.
type Command struct {
	Op   Op
	Line int

	Row, Col int
	Color    Color
	HasColor bool
	Mode     PaintMode
	Toggle   bool
}

// ParseScript reads a grid script, one command per line.
// Blank lines and comments introduced by '#' are ignored.
// A comment either fills the whole line or follows a standalone '#'.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := stripComment(strings.Fields(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		cmd, err := parseCommand(fields)
		if err != nil {
			return nil, &ScriptError{Line: line, Err: err}
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read the script")
	}
	if len(cmds) == 0 {
		return nil, ErrEmptyScript
	}
	return cmds, nil
}

// stripComment drops the fields of a comment. A comment starts either at the
// beginning of the line or at a standalone '#' field, so hex colors are kept.
func stripComment(fields []string) []string {
	for i, f := range fields {
		if f == "#" || (i == 0 && strings.HasPrefix(f, "#")) {
			return fields[:i]
		}
	}
	return fields
}

func parseCommand(fields []string) (Command, error) {
	keyword := strings.ToLower(fields[0])
	op := Op(keyword)
	if alias, ok := opAliases[keyword]; ok {
		op = alias
	}
	args := fields[1:]
	cmd := Command{Op: op}

	switch op {
	case OpAddRow, OpRemoveRow, OpAddColumn, OpRemoveColumn, OpClear:
		if len(args) != 0 {
			return cmd, errors.Errorf("%s takes no arguments", op)
		}
	case OpColor:
		if len(args) != 1 {
			return cmd, errors.Errorf("%s expects a single #rrggbb argument", op)
		}
		c, err := ParseHex(args[0])
		if err != nil {
			return cmd, err
		}
		cmd.Color, cmd.HasColor = c, true
	case OpFillAll, OpFillUnpainted:
		if len(args) > 1 {
			return cmd, errors.Errorf("%s accepts at most one color argument", op)
		}
		if len(args) == 1 {
			c, err := ParseHex(args[0])
			if err != nil {
				return cmd, err
			}
			cmd.Color, cmd.HasColor = c, true
		}
	case OpMode:
		if len(args) != 1 {
			return cmd, errors.Errorf("%s expects single, cross or toggle", op)
		}
		if strings.EqualFold(args[0], "toggle") {
			cmd.Toggle = true
			break
		}
		m, err := ParseMode(args[0])
		if err != nil {
			return cmd, err
		}
		cmd.Mode = m
	case OpPaint:
		if len(args) != 2 {
			return cmd, errors.Errorf("%s expects a row and a column index", op)
		}
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return cmd, errors.Wrapf(err, "invalid row index %q", args[0])
		}
		col, err := strconv.Atoi(args[1])
		if err != nil {
			return cmd, errors.Wrapf(err, "invalid column index %q", args[1])
		}
		cmd.Row, cmd.Col = row, col
	default:
		return cmd, errors.Errorf("unknown command %q", fields[0])
	}
	return cmd, nil
}

// Apply executes the command against the engine.
func (c Command) Apply(e *Engine) error {
	switch c.Op {
	case OpAddRow:
		e.AddRow()
	case OpRemoveRow:
		e.RemoveRow()
	case OpAddColumn:
		e.AddColumn()
	case OpRemoveColumn:
		e.RemoveColumn()
	case OpColor:
		e.SetActiveColor(c.Color)
	case OpMode:
		if c.Toggle {
			e.TogglePaintMode()
		} else {
			e.SetPaintMode(c.Mode)
		}
	case OpPaint:
		if _, err := e.PaintCell(c.Row, c.Col); err != nil {
			return err
		}
	case OpFillAll:
		if c.HasColor {
			e.SetActiveColor(c.Color)
		}
		e.FillAll()
	case OpFillUnpainted:
		if c.HasColor {
			e.SetActiveColor(c.Color)
		}
		e.FillUnpainted()
	case OpClear:
		e.ClearAll()
	default:
		return errors.Errorf("unknown command %q", c.Op)
	}
	return nil
}

// Run applies the commands in order and stops at the first failing one.
func Run(e *Engine, cmds []Command) error {
	for _, cmd := range cmds {
		if err := cmd.Apply(e); err != nil {
			return &ScriptError{Line: cmd.Line, Err: errors.Wrapf(err, "%s failed", cmd.Op)}
		}
	}
	return nil
}
