package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/samuelgr/xidi/keyboard"
	"github.com/samuelgr/xidi/mapper"
)

// Elements prints the fixed vocabularies accepted by mapper definitions:
// physical input slot names, actuator slot names, and optionally the
// keyboard scan code names.
type Elements struct {
	Keys bool `help:"Also list the symbolic keyboard scan code names"`
}

// Run is called by kong when the elements command is executed.
func (e *Elements) Run() error {
	fmt.Println("Controller elements (case-sensitive):")
	printColumns(mapper.SlotNames())

	fmt.Println()
	fmt.Println("Force feedback actuators (case-sensitive):")
	actuators := make([]string, mapper.ActuatorSlotCount)
	for i := range actuators {
		actuators[i] = mapper.ActuatorSlotName(i)
	}
	printColumns(actuators)

	fmt.Println()
	fmt.Println("Axes: X, Y, Z, RotX, RotY, RotZ")
	fmt.Println("Axis directions: Both (default), + (Positive), - (Negative)")
	fmt.Println("POV directions: Up, Down, Left, Right")
	fmt.Println("Mouse axes: X, Y, WheelHorizontal, WheelVertical")
	fmt.Println("Mouse buttons: Left, Middle, Right, X1, X2")

	if e.Keys {
		fmt.Println()
		fmt.Println("Keyboard scan code names (case-insensitive, DIK_ prefix optional):")
		names := keyboard.KeyNames()
		sort.Strings(names)
		printColumns(names)
	}
	return nil
}

// printColumns lays names out in columns sized to the terminal, falling back
// to one per line when stdout is not a terminal.
func printColumns(names []string) {
	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	if width <= 0 {
		for _, n := range names {
			fmt.Println("  " + n)
		}
		return
	}

	colWidth := 0
	for _, n := range names {
		if len(n) > colWidth {
			colWidth = len(n)
		}
	}
	colWidth += 2
	perLine := (width - 2) / colWidth
	if perLine < 1 {
		perLine = 1
	}

	for i := 0; i < len(names); i += perLine {
		end := i + perLine
		if end > len(names) {
			end = len(names)
		}
		var line strings.Builder
		line.WriteString("  ")
		for _, n := range names[i:end] {
			line.WriteString(n)
			line.WriteString(strings.Repeat(" ", colWidth-len(n)))
		}
		fmt.Println(strings.TrimRight(line.String(), " "))
	}
}
