// Package provision orchestrates the provisioning workflow: a fixed,
// linear sequence of stages in which every irrecoverable condition is
// surfaced as an explicit coded error and every optional stage degrades
// gracefully. There is no rollback across stages; each stage's
// partial-failure contract is documented on its method.
package provision

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"nixup/pkg/config"
	"nixup/pkg/direnv"
	"nixup/pkg/dotfiles"
	"nixup/pkg/errors"
	"nixup/pkg/filesystem"
	"nixup/pkg/identity"
	"nixup/pkg/logging"
	"nixup/pkg/paths"
	"nixup/pkg/prereq"
	"nixup/pkg/profiles"
	"nixup/pkg/style"
	"nixup/pkg/summary"
	"nixup/pkg/types"
)

// Options configures a Provisioner. Zero-value fields are filled with
// production defaults by New.
type Options struct {
	Settings *config.Settings
	FS       types.FS
	Runner   types.Runner
	Prompter types.Prompter

	// Out receives status lines and the final summary.
	Out io.Writer

	// HomeDir and WorkDir are resolved once at start when empty.
	HomeDir string
	WorkDir string

	// DryRun walks every prompt but performs no mutations and no
	// external invocations.
	DryRun bool
}

// Result reports what the run did.
type Result struct {
	Profile        types.Profile
	FlakesEnabled  bool
	IdentitySet    bool
	Dotfiles       []types.BackupResult
	MarkerPath     string
	DirenvApproved bool
}

// Provisioner runs the provisioning workflow.
type Provisioner struct {
	settings *config.Settings
	fs       types.FS
	runner   types.Runner
	prompter types.Prompter
	out      io.Writer
	homeDir  string
	workDir  string
	dryRun   bool
	logger   zerolog.Logger
}

// New creates a Provisioner, resolving home and working directories when
// they were not supplied.
func New(opts Options) (*Provisioner, error) {
	if opts.Settings == nil {
		return nil, errors.New(errors.ErrInternal, "settings are required")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	homeDir := opts.HomeDir
	if homeDir == "" {
		var err error
		homeDir, err = paths.GetHomeDirectory()
		if err != nil {
			return nil, err
		}
	}

	workDir := opts.WorkDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine working directory")
		}
	}

	return &Provisioner{
		settings: opts.Settings,
		fs:       fsys,
		runner:   opts.Runner,
		prompter: opts.Prompter,
		out:      out,
		homeDir:  homeDir,
		workDir:  workDir,
		dryRun:   opts.DryRun,
		logger:   logging.GetLogger("provision"),
	}, nil
}

// Run executes the stages in fixed order. A stage that returns an error
// aborts the workflow; completed stages are never rolled back.
func (p *Provisioner) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	stages := []struct {
		name string
		run  func(context.Context, *Result) error
	}{
		{"prerequisites", p.checkPrerequisites},
		{"profile", p.selectProfile},
		{"identity", p.offerIdentity},
		{"dotfiles", p.offerDotfiles},
		{"auto-activation", p.offerAutoActivation},
	}

	for _, stage := range stages {
		done := logging.LogOperationStart(p.logger, stage.name)
		err := stage.run(ctx, result)
		done()
		if err != nil {
			p.logger.Error().Err(err).Str("stage", stage.name).Msg("Stage failed")
			return result, err
		}
	}

	p.printSummary()
	return result, nil
}

// checkPrerequisites probes for nix (hard, fatal when absent) and
// idempotently enables the flakes feature (soft, remediated in place).
func (p *Provisioner) checkPrerequisites(ctx context.Context, result *Result) error {
	p.status(style.StatusInfo, "checking for nix")

	check := prereq.CheckTool(p.runner, "nix")
	if !check.Present() {
		p.status(style.StatusError, "nix not found; "+prereq.NixInstallHint)
		return errors.New(errors.ErrNixMissing, "nix is not installed")
	}
	p.status(style.StatusSuccess, "nix found at "+check.Path)

	nixConf := p.settings.NixConfPath
	if nixConf == "" {
		nixConf = paths.NixConfPath()
	}

	if p.dryRun {
		p.status(style.StatusInfo, "dry-run: would ensure flakes are enabled in "+nixConf)
		return nil
	}

	changed, err := prereq.EnableFlakes(p.fs, nixConf)
	if err != nil {
		p.status(style.StatusError, "could not enable flakes: "+err.Error())
		return err
	}
	result.FlakesEnabled = changed
	if changed {
		p.status(style.StatusSuccess, "enabled flakes in "+nixConf)
	} else {
		p.status(style.StatusSuccess, "flakes already enabled")
	}
	return nil
}

// selectProfile presents the fixed profile menu and activates the
// selection through nix. An invalid selection or a failed activation is
// fatal; nothing later may run against a broken environment.
func (p *Provisioner) selectProfile(ctx context.Context, result *Result) error {
	all := profiles.All()
	options := make([]string, len(all))
	for i, prof := range all {
		options[i] = fmt.Sprintf("%s — %s", prof.Label, prof.Description)
	}

	idx, err := p.prompter.Select("Choose an installation profile", options)
	if err != nil {
		p.status(style.StatusError, "invalid profile selection")
		return errors.Wrap(err, errors.ErrProfileInvalid, "profile selection failed")
	}
	profile := all[idx]
	result.Profile = profile

	invocation := profiles.Invocation(p.settings.FlakeRef, profile)
	p.status(style.StatusInfo, "activating profile "+profile.ID+" ("+invocation+")")

	if p.dryRun {
		p.status(style.StatusInfo, "dry-run: would run nix develop "+invocation)
		return nil
	}

	if err := p.runner.Run(ctx, "nix", "develop", invocation, "--command", "true"); err != nil {
		p.status(style.StatusError, "profile activation failed")
		return errors.Wrapf(err, errors.ErrActivateFailed,
			"failed to activate profile %s", profile.ID)
	}

	p.status(style.StatusSuccess, "profile "+profile.ID+" activated")
	return nil
}

// offerIdentity optionally rewrites the identity placeholders and
// re-applies the home configuration. The substitution and the apply are
// not transactional: a failed apply is reported and the rewritten file
// kept.
func (p *Provisioner) offerIdentity(ctx context.Context, result *Result) error {
	ok, err := p.prompter.Confirm("Personalize git identity (name and email)?", false)
	if err != nil {
		return err
	}
	if !ok {
		p.status(style.StatusInfo, "skipping identity configuration")
		return nil
	}

	name, err := p.prompter.Input("Display name")
	if err != nil {
		return err
	}
	email, err := p.prompter.Input("Contact address")
	if err != nil {
		return err
	}

	configPath := p.settings.HomeManagerConfig
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(p.settings.FlakeRef, configPath)
	}

	if p.dryRun {
		p.status(style.StatusInfo, "dry-run: would personalize "+configPath)
		return nil
	}

	replaced, err := identity.Personalize(p.fs, configPath, name, email)
	if err != nil {
		p.status(style.StatusWarning, "could not personalize "+configPath+": "+err.Error())
		return nil
	}
	if replaced == 0 {
		p.status(style.StatusWarning, "no identity placeholders in "+configPath+"; file unchanged")
		return nil
	}
	result.IdentitySet = true
	p.status(style.StatusSuccess, "identity written to "+configPath)

	p.status(style.StatusInfo, "applying home configuration")
	if err := identity.Apply(ctx, p.runner, p.settings.FlakeRef); err != nil {
		p.status(style.StatusWarning,
			"home-manager switch failed; identity was written but not applied: "+err.Error())
		return nil
	}
	p.status(style.StatusSuccess, "home configuration applied")
	return nil
}

// offerDotfiles optionally installs the bundled dotfiles. Per-file
// failures are reported and do not abort the workflow; a failed backup
// always leaves its destination untouched.
func (p *Provisioner) offerDotfiles(ctx context.Context, result *Result) error {
	ok, err := p.prompter.Confirm("Install bundled dotfiles (existing files are backed up)?", false)
	if err != nil {
		return err
	}
	if !ok {
		p.status(style.StatusInfo, "skipping dotfile installation")
		return nil
	}

	if p.dryRun {
		for _, entry := range p.settings.Dotfiles {
			p.status(style.StatusInfo, "dry-run: would install "+filepath.Join(p.homeDir, entry.Target))
		}
		return nil
	}

	results := dotfiles.Install(p.fs, p.settings.Dotfiles, p.homeDir, p.settings.BackupSuffix)
	result.Dotfiles = results

	for _, r := range results {
		switch {
		case r.Installed && r.BackupPath != "":
			p.status(style.StatusSuccess, "installed "+r.Target+" (backup at "+r.BackupPath+")")
		case r.Installed:
			p.status(style.StatusSuccess, "installed "+r.Target)
		default:
			p.status(style.StatusWarning, "skipped "+r.Target+": "+r.Err.Error())
		}
	}
	return nil
}

// offerAutoActivation optionally writes the .envrc marker and approves
// it with direnv. A missing direnv degrades to a warning.
func (p *Provisioner) offerAutoActivation(ctx context.Context, result *Result) error {
	ok, err := p.prompter.Confirm("Enable automatic activation in "+p.workDir+"?", false)
	if err != nil {
		return err
	}
	if !ok {
		p.status(style.StatusInfo, "skipping automatic activation")
		return nil
	}

	if p.dryRun {
		p.status(style.StatusInfo, "dry-run: would write "+paths.EnvrcPath(p.workDir))
		return nil
	}

	markerPath, err := direnv.WriteMarker(p.fs, p.workDir, p.settings.FlakeRef, result.Profile.Target)
	if err != nil {
		p.status(style.StatusError, "could not write activation marker: "+err.Error())
		return err
	}
	result.MarkerPath = markerPath
	p.status(style.StatusSuccess, "wrote "+markerPath)

	if !prereq.CheckTool(p.runner, "direnv").Present() {
		p.status(style.StatusWarning, "direnv not found; install it and run `direnv allow` to auto-activate")
		return nil
	}

	if err := direnv.Allow(ctx, p.runner, p.workDir); err != nil {
		p.status(style.StatusWarning, "direnv allow failed: "+err.Error())
		return nil
	}
	result.DirenvApproved = true
	p.status(style.StatusSuccess, "direnv approved the marker")
	return nil
}

// printSummary writes the static command/alias listing. Pure output,
// always executed on success, never fails.
func (p *Provisioner) printSummary() {
	fmt.Fprintln(p.out)
	summary.Render(p.out)
}

func (p *Provisioner) status(s style.Status, msg string) {
	style.Fprintln(p.out, s, msg)
}
