package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// terminal presents dialogs and notifications on a text terminal.
type terminal struct {
	autoConfirm bool

	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

func newTerminal(in io.Reader, out, err io.Writer) *terminal {
	t := &terminal{in: bufio.NewReader(in), out: out, err: err}
	return t
}

// ShowConfirm asks the user to confirm on the terminal. Only "y" and "yes" confirm.
func (t *terminal) ShowConfirm(title, message, confirm string, callback func(bool)) {
	t.mu.Lock()
	fmt.Fprintf(t.out, "%s\n\n%s\n\n", title, message)
	var confirmed bool
	if t.autoConfirm {
		confirmed = true
	} else {
		fmt.Fprintf(t.out, "%s (y/N)? ", confirm)
		line, _ := t.in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			confirmed = true
		}
	}
	if !confirmed {
		fmt.Fprintln(t.out, "Aborted")
	}
	t.mu.Unlock()
	callback(confirmed)
}

func (t *terminal) ShowError(title, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.err, "%s: %s\n", title, message)
}

func (t *terminal) Notify(text, detail string, _ time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if detail == "" {
		fmt.Fprintln(t.out, text)
		return
	}
	fmt.Fprintf(t.out, "%s: %s\n", text, detail)
}

// SetContent prints the copied content, since there is no clipboard on a terminal.
func (t *terminal) SetContent(content string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, content)
}
