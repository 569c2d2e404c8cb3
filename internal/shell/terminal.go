// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// lineReader feeds input lines to whoever asks next: the command loop or
// a prompt raised by the view model.
type lineReader struct {
	lines chan string
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lr.lines <- sc.Text()
		}
		lr.err = sc.Err()
	}()
	return lr
}

// next returns the next line, io.EOF at end of input, or ctx.Err().
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// Prompter asks questions on the shell's own input and output.
type Prompter struct {
	in  *lineReader
	out io.Writer
}

func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, err := p.in.next(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	fmt.Fprintf(p.out, "%s ", question)
	line, err := p.in.next(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// BrowserOpener prints a URL and asks the desktop to open it.
type BrowserOpener struct {
	out    io.Writer
	launch func(url string) error
}

// NewBrowserOpener writes notices to out and launches the platform's
// browser opener.
func NewBrowserOpener(out io.Writer) *BrowserOpener {
	return &BrowserOpener{out: out, launch: launchBrowser}
}

func (o *BrowserOpener) Open(_ context.Context, url string) error {
	fmt.Fprintf(o.out, "Opening %s\n", url)
	if o.launch == nil {
		return nil
	}
	return o.launch(url)
}

// launchBrowser starts the opener detached from the operation's context.
func launchBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	go cmd.Wait() //nolint:errcheck // the browser outlives the request
	return nil
}

func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
