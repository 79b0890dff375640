// Package anchor implements a minimal terminal reporter which keeps a
// block of labelled status lines anchored at the bottom of the screen
// while regular log lines scroll above it.
package anchor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
)

type Color color.Attribute

const (
	Red    = Color(color.FgRed)
	Green  = Color(color.FgGreen)
	Yellow = Color(color.FgYellow)
	Cyan   = Color(color.FgCyan)
)

type Anchor struct {
	mutex     sync.Mutex
	highlight *color.Color
	lots      []*Lot
	reader    *bufio.Reader
}

type Lot struct {
	anchor  *Anchor
	label   string
	message string
	closed  bool
}

func New(highlight Color) *Anchor {
	return &Anchor{
		highlight: color.New(color.Attribute(highlight)),
		reader:    bufio.NewReader(os.Stdin),
	}
}

// Printf emits a scrolling line above the anchored block.
func (anchor *Anchor) Printf(format string, a ...interface{}) {
	anchor.mutex.Lock()
	defer anchor.mutex.Unlock()

	anchor.wipe()
	fmt.Printf(format+"\n", a...)
	anchor.render()
}

// AnchorPrintf behaves as Printf, with the line highlighted.
func (anchor *Anchor) AnchorPrintf(format string, a ...interface{}) {
	anchor.mutex.Lock()
	defer anchor.mutex.Unlock()

	anchor.wipe()
	anchor.highlight.Printf(format+"\n", a...)
	anchor.render()
}

// Reads displays a prompt and blocks until a line of user input.
func (anchor *Anchor) Reads(prompt string) string {
	anchor.mutex.Lock()
	anchor.wipe()
	fmt.Print(prompt + " ")
	anchor.mutex.Unlock()

	line, err := anchor.reader.ReadString('\n')
	if err != nil {
		return ""
	}

	anchor.mutex.Lock()
	anchor.render()
	anchor.mutex.Unlock()
	return strings.TrimSpace(line)
}

// Lot returns the anchored line registered under the given label,
// creating it if needed.
func (anchor *Anchor) Lot(label string) *Lot {
	anchor.mutex.Lock()
	defer anchor.mutex.Unlock()

	for _, lot := range anchor.lots {
		if lot.label == label {
			return lot
		}
	}

	lot := &Lot{anchor: anchor, label: label}
	anchor.wipe()
	anchor.lots = append(anchor.lots, lot)
	anchor.render()
	return lot
}

func (lot *Lot) Print(message string) {
	lot.anchor.mutex.Lock()
	defer lot.anchor.mutex.Unlock()

	lot.anchor.wipe()
	lot.message = message
	lot.closed = false
	lot.anchor.render()
}

func (lot *Lot) Printf(format string, a ...interface{}) {
	lot.Print(fmt.Sprintf(format, a...))
}

// Wipe blanks the lot message keeping the labelled line in place.
func (lot *Lot) Wipe() {
	lot.Print("")
}

// Close marks the lot as done, optionally with a final message.
func (lot *Lot) Close(message ...string) {
	lot.anchor.mutex.Lock()
	defer lot.anchor.mutex.Unlock()

	lot.anchor.wipe()
	lot.closed = true
	if len(message) > 0 {
		lot.message = message[0]
	} else {
		lot.message = "done"
	}
	lot.anchor.render()
}

// wipe clears the anchored block. Callers must hold the mutex.
func (anchor *Anchor) wipe() {
	for range anchor.lots {
		cursor.Up(1)
		cursor.StartOfLine()
		cursor.ClearLine()
	}
}

// render redraws the anchored block. Callers must hold the mutex.
func (anchor *Anchor) render() {
	for _, lot := range anchor.lots {
		if lot.closed {
			fmt.Printf("%s: %s\n", lot.label, lot.message)
			continue
		}
		anchor.highlight.Printf("%s: %s\n", lot.label, lot.message)
	}
}
