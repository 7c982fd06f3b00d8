package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/webclient"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// promptForm answers webclient.Form from command line flags and asks on the
// terminal for anything not given.
type promptForm struct {
	reader  *bufio.Reader
	out     io.Writer
	labels  map[string]string // input id -> logical field name
	secrets map[string]bool
	values  map[string]string
	asked   map[string]bool
}

func newPromptForm(cfg *webclient.FormConfig, given map[string]string, in io.Reader, out io.Writer) *promptForm {
	f := &promptForm{
		reader:  bufio.NewReader(in),
		out:     out,
		labels:  make(map[string]string, len(cfg.FieldMapping)),
		secrets: make(map[string]bool),
		values:  make(map[string]string),
		asked:   make(map[string]bool),
	}
	for name, id := range cfg.FieldMapping {
		f.labels[id] = name
		if strings.Contains(strings.ToLower(name), "password") {
			f.secrets[id] = true
		}
		if v, ok := given[name]; ok && v != "" {
			f.values[id] = v
			f.asked[id] = true
		}
	}
	return f
}

func (f *promptForm) Value(id string) string {
	if f.asked[id] {
		return f.values[id]
	}
	f.asked[id] = true

	name, ok := f.labels[id]
	if !ok {
		return ""
	}
	v, err := f.ask(id, name)
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintf(f.out, "read %s: %v\n", name, err)
	}
	f.values[id] = v
	return v
}

func (f *promptForm) ask(id, name string) (string, error) {
	if f.secrets[id] && isTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(f.out, "%s: ", name)
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(f.out)
		return string(pw), err
	}

	if name == "termsAgree" {
		fmt.Fprint(f.out, "Agree to the Terms of Service and Privacy Policy? [y/N]\n> ")
	} else {
		fmt.Fprintf(f.out, "%s\n> ", name)
	}
	line, err := f.reader.ReadString('\n')
	return strings.TrimSpace(line), err
}

func (f *promptForm) Reset() {
	clear(f.values)
	clear(f.asked)
}

// terminalFeedback prints pipeline outcomes. A terminal has no modals.
type terminalFeedback struct {
	out    io.Writer
	errOut io.Writer
}

func (t *terminalFeedback) ShowSuccess(msg string, _ time.Duration) { fmt.Fprintln(t.out, msg) }
func (t *terminalFeedback) ShowError(msg string, _ time.Duration)   { fmt.Fprintln(t.errOut, "Error:", msg) }
func (t *terminalFeedback) CloseModal(string, time.Duration)        {}
func (t *terminalFeedback) PromptLogin() {
	fmt.Fprintln(t.errOut, "Run `autohub login` to sign in again.")
}
