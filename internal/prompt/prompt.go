// Package prompt reads the interactive answers of a run: the two extension
// tokens and the yes/no confirmation.
package prompt

import (
	"bufio"
	"io"
	"strings"

	"extrenamer/internal/config"
	"extrenamer/internal/errors"
	"extrenamer/internal/log"
	"extrenamer/internal/ui"
)

// Reserved tokens handled by the prompter itself.
const (
	TokenHelp = "help"
	TokenQuit = "quit"
	TokenExit = "exit"
)

// Prompter asks questions on a Printer and reads answers line by line.
type Prompter struct {
	in  *bufio.Reader
	out *ui.Printer
	cfg *config.Config
	yes map[string]bool
	no  map[string]bool
}

// New creates a Prompter reading from in.
func New(in io.Reader, out *ui.Printer, cfg *config.Config) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		cfg: cfg,
		yes: answerSet(cfg.Answers.Affirmative),
		no:  answerSet(cfg.Answers.Negative),
	}
}

func answerSet(answers []string) map[string]bool {
	set := make(map[string]bool, len(answers))
	for _, a := range answers {
		set[strings.ToLower(strings.TrimSpace(a))] = true
	}
	return set
}

// ReadLine prints message and returns the next input line, lower-cased and
// trimmed. End of input yields errors.ErrInputClosed.
func (p *Prompter) ReadLine(message string) (string, error) {
	p.out.Prompt(message)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.Wrap(err, "error reading input")
		}
		if line == "" {
			log.Debug("input closed")
			return "", errors.ErrInputClosed
		}
		// Last line without a newline still counts.
	}

	return strings.ToLower(strings.TrimSpace(line)), nil
}

// Token asks for an extension token until it gets one. Blank answers ask
// again, "help" prints the help text and asks again, and "quit" or "exit"
// return errors.ErrQuit.
func (p *Prompter) Token(message string) (string, error) {
	for {
		token, err := p.ReadLine(message)
		if err != nil {
			return "", err
		}

		switch token {
		case "":
			continue
		case TokenHelp:
			p.out.Println(p.cfg.Texts.Help)
			continue
		case TokenQuit, TokenExit:
			return "", errors.ErrQuit
		}

		return token, nil
	}
}

// Confirm asks the yes/no question until the answer is recognised. It
// returns nil for an affirmative answer and errors.ErrDeclined for a
// negative one.
func (p *Prompter) Confirm() error {
	for {
		answer, err := p.ReadLine(p.cfg.Prompts.Confirm + "\n")
		if err != nil {
			return err
		}

		switch {
		case p.yes[answer]:
			return nil
		case p.no[answer]:
			return errors.ErrDeclined
		}
		log.LogWithFields(log.F("answer", answer)).Debug("unrecognised confirmation")
	}
}

// WaitForEnter prints the closing prompt and blocks until a line or end of
// input arrives.
func (p *Prompter) WaitForEnter() {
	if _, err := p.ReadLine(p.cfg.Prompts.PressEnter); err != nil && !errors.IsAbort(err) {
		log.Debugf("waiting for enter: %v", err)
	}
}
