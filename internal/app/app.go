package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maxbolgarin/commitlint/internal/commit"
	"github.com/maxbolgarin/commitlint/internal/format"
	"github.com/maxbolgarin/commitlint/internal/lint"
	"github.com/maxbolgarin/commitlint/internal/model"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

// CommitLint is the main service that wires the linter, the lint selection
// and the output renderer together.
type CommitLint struct {
	linter   *lint.Linter
	lints    lint.Lints
	renderer *format.Renderer

	cfg Config
	log logze.Logger
}

// New creates a new lint service
func New(ctx contem.Context, cfg Config) (*CommitLint, error) {
	service := &CommitLint{
		cfg: cfg,
		log: logze.With("component", "app"),
	}

	if err := service.init(ctx, cfg); err != nil {
		return nil, errm.Wrap(err, "failed to initialize service")
	}

	return service, nil
}

// Run lints one commit message and writes the result to out. A path of "-"
// or "" reads the message from stdin, the way git hooks pipe it in. It
// returns ErrProblemsFound when any check fails, so callers can turn the
// result into an exit code.
func (s *CommitLint) Run(ctx context.Context, out io.Writer, messagePath string) error {
	raw, err := s.readMessage(messagePath)
	if err != nil {
		return errm.Wrap(err, "failed to read commit message")
	}
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyMessage
	}

	problems, err := s.linter.RunAsync(ctx, commit.New(raw), s.lints)
	if err != nil {
		return errm.Wrap(err, "failed to run lints")
	}

	if err := s.report(out, problems); err != nil {
		return errm.Wrap(err, "failed to report problems")
	}

	if len(problems) > 0 {
		return errm.Wrap(ErrProblemsFound, fmt.Sprintf("%d of %d checks failed", len(problems), s.lints.Len()))
	}
	return nil
}

// Lints returns the resolved selection, mostly for diagnostics.
func (s *CommitLint) Lints() lint.Lints {
	return s.lints
}

func (s *CommitLint) init(ctx contem.Context, cfg Config) (err error) {

	// Resolve the selection before touching anything else so a config typo
	// fails fast in strict mode
	s.lints, err = s.resolveLints(cfg.Lint)
	if err != nil {
		return errm.Wrap(err, "failed to resolve lint selection")
	}

	s.linter, err = lint.New(cfg.Linter)
	if err != nil {
		return errm.Wrap(err, "failed to create linter")
	}
	ctx.Add(func(context.Context) error { return s.linter.Close() })

	s.renderer = format.NewRenderer(cfg.Output.NoColor)

	s.log.Debug("service initialized", "lints", s.lints.Names(), "format", cfg.Output.Format)
	return nil
}

// resolveLints starts from the defaults, adds the enabled names and removes
// the disabled ones. Unknown names are fatal in strict mode and warnings
// otherwise, but known names always take effect either way.
func (s *CommitLint) resolveLints(cfg LintConfig) (lint.Lints, error) {
	enabled, enabledErrs := lint.FromNames(cfg.Enabled)
	disabled, disabledErrs := lint.FromNames(cfg.Disabled)

	errs := append(enabledErrs, disabledErrs...)
	if len(errs) > 0 {
		if cfg.Strict {
			return lint.Lints{}, errors.Join(append([]error{ErrUnknownLints}, errs...)...)
		}
		for _, err := range errs {
			s.log.Warn("skipping unknown lint from config", "error", err)
		}
	}

	return lint.Defaults().Merge(enabled).Subtract(disabled), nil
}

func (s *CommitLint) readMessage(path string) (string, error) {
	if path == "" || path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errm.Wrap(err, "failed to read stdin")
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errm.Wrap(err, "failed to read message file")
	}
	return string(raw), nil
}

func (s *CommitLint) report(out io.Writer, problems []model.Problem) error {
	if s.cfg.Output.Format == FormatJSON {
		rendered, err := format.RenderJSON(problems)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, rendered)
		return err
	}

	if len(problems) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(out, s.renderer.RenderAll(problems))
	return err
}
