// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/viewmodel"
)

const banner = `Tourguide - smart tourism recommendations
Type "help" for commands, "quit" to leave.`

// Terminal owns the input stream. Build it first so the view model can be
// given its Prompter and Opener, then pass it to New.
type Terminal struct {
	in       *lineReader
	out      io.Writer
	prompter *Prompter
	opener   *BrowserOpener
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	lr := newLineReader(in)
	return &Terminal{
		in:       lr,
		out:      out,
		prompter: &Prompter{in: lr, out: out},
		opener:   NewBrowserOpener(out),
	}
}

func (t *Terminal) Prompter() *Prompter { return t.prompter }

func (t *Terminal) Opener() *BrowserOpener { return t.opener }

type command struct {
	name  string
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
}

// Shell reads commands from a Terminal and drives a ViewModel.
type Shell struct {
	vm       *viewmodel.ViewModel
	term     *Terminal
	out      io.Writer
	printer  *message.Printer
	commands map[string]*command
}

func New(vm *viewmodel.ViewModel, term *Terminal) *Shell {
	s := &Shell{
		vm:      vm,
		term:    term,
		out:     term.out,
		printer: message.NewPrinter(language.English),
	}
	s.commands = s.commandTable()
	return s
}

// Run reads and executes commands until quit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, banner)
	s.report(nil)
	for {
		fmt.Fprint(s.out, s.prompt())
		line, err := s.term.in.next(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		if quit := s.Exec(ctx, line); quit {
			return nil
		}
	}
}

// Exec runs one command line and reports the outcome. It returns true
// when the line asks to quit.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name := strings.ToLower(fields[0])
	switch name {
	case "quit", "exit":
		return true
	}

	cmd, ok := s.commands[name]
	if !ok {
		fmt.Fprintf(s.out, "Unknown command %q. Type \"help\" for the list.\n", name)
		return false
	}
	logging.Debug().Str("command", name).Msg("Shell command")
	s.report(cmd.run(ctx, fields[1:]))
	return false
}

// report prints the view model's message slot, then err if it adds
// anything.
func (s *Shell) report(err error) {
	msg := s.vm.Snapshot().Message
	if !msg.Empty() {
		fmt.Fprintf(s.out, "%s %s\n", messagePrefix(msg.Kind), msg.Text)
		s.vm.ClearMessage()
	}
	if err == nil || (!msg.Empty() && err.Error() == msg.Text) {
		return
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(s.out, "Canceled.")
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", messagePrefix(viewmodel.MessageError), err.Error())
}

func messagePrefix(kind viewmodel.MessageKind) string {
	switch kind {
	case viewmodel.MessageSuccess:
		return "[ok]"
	case viewmodel.MessageInfo:
		return "[info]"
	default:
		return "[error]"
	}
}

func (s *Shell) prompt() string {
	st := s.vm.Snapshot()
	who := "guest"
	if st.Session.Authenticated {
		who = st.Session.UserEmail
	}
	dirty := ""
	if !st.ItinerarySynced {
		dirty = "*"
	}
	return fmt.Sprintf("%s [%s]%s> ", who, viewLabel(st.View), dirty)
}

func viewLabel(v viewmodel.View) string {
	if v == viewmodel.ViewBrowseRecommended {
		return "recommended"
	}
	return "all"
}

func (s *Shell) help(_ context.Context, _ []string) error {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := newTable(s.out)
	for _, name := range names {
		c := s.commands[name]
		fmt.Fprintf(tw, "  %s %s\t%s\n", c.name, c.usage, c.help)
	}
	fmt.Fprintf(tw, "  quit\tleave the shell\n")
	return tw.Flush()
}
