// Package session runs one interactive rename: collect the two extension
// tokens, derive the rule, scan the working directory, preview, confirm and
// execute.
package session

import (
	"io"

	"extrenamer/internal/config"
	"extrenamer/internal/errors"
	"extrenamer/internal/log"
	"extrenamer/internal/prompt"
	"extrenamer/internal/rename"
	"extrenamer/internal/ui"
	"extrenamer/pkg/types"
)

// Session holds the state of a single run. It is not reused.
type Session struct {
	cfg      *config.Config
	dir      string
	printer  *ui.Printer
	prompter *prompt.Prompter
	renamer  rename.Renamer

	currentToken string
	newToken     string
	rule         rename.Rule
	matched      []string
}

// Option customizes a Session.
type Option func(*Session)

// WithRenamer replaces the renamer used by the execute stage.
func WithRenamer(r rename.Renamer) Option {
	return func(s *Session) {
		s.renamer = r
	}
}

// New creates a Session operating on dir, reading answers from in and
// writing the transcript to out.
func New(cfg *config.Config, dir string, in io.Reader, out io.Writer, opts ...Option) *Session {
	printer := ui.NewPrinter(out, cfg)
	s := &Session{
		cfg:      cfg,
		dir:      dir,
		printer:  printer,
		prompter: prompt.New(in, printer, cfg),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renamer == nil {
		s.renamer = rename.CurrentRenamerFactory()
	}
	return s
}

// Run executes the whole pipeline once. It returns the run summary after
// the execute stage. Quitting, declining and closed input stop the run
// before anything is renamed and come back as errors for which
// errors.IsAbort is true; the directory is untouched in that case.
func (s *Session) Run() (*types.Summary, error) {
	s.printer.Banner(s.cfg.Texts.Greeting)
	s.printer.WorkingDir(s.dir)

	if err := s.collectInputs(); err != nil {
		return nil, err
	}

	s.rule = rename.DeriveRule(s.currentToken, s.newToken)
	logger := log.LogWithFields(log.F("dir", s.dir), log.F("rule", s.rule.String()))
	logger.Debug("rule derived")

	matched, err := rename.Scan(s.dir, s.rule)
	if err != nil {
		return nil, errors.Wrap(err, "error scanning working directory")
	}
	s.matched = matched

	s.preview()

	if err := s.prompter.Confirm(); err != nil {
		logger.Debugf("stopped before renaming: %v", err)
		return nil, err
	}

	summary := s.execute()

	if s.cfg.Settings.PressEnter {
		s.prompter.WaitForEnter()
	}
	return &summary, nil
}

// Rule returns the rule derived during Run.
func (s *Session) Rule() rename.Rule {
	return s.rule
}

// Matched returns the files matched during Run, in scan order.
func (s *Session) Matched() []string {
	return s.matched
}

func (s *Session) collectInputs() error {
	var err error
	if s.currentToken, err = s.prompter.Token(s.cfg.Prompts.Search); err != nil {
		return err
	}
	if s.newToken, err = s.prompter.Token(s.cfg.Prompts.Replace); err != nil {
		return err
	}
	return nil
}

func (s *Session) preview() {
	s.printer.PreviewHeader()
	for _, item := range rename.Plan(s.matched, s.rule) {
		s.printer.PreviewItem(item.OldName, item.NewName)
	}
	s.printer.PreviewTotal(len(s.matched))
}

func (s *Session) execute() types.Summary {
	s.printer.ProcessedHeader()
	summary := rename.Execute(s.renamer, s.dir, s.matched, s.rule, func(r types.RenameResult) {
		if r.Error != nil {
			s.printer.Failed(r.OldName, r.Error)
			return
		}
		s.printer.Renamed(r.OldName, r.NewName)
	})
	s.printer.Totals(summary.Renamed, summary.Errors)
	return summary
}
