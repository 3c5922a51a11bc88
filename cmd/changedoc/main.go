// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

// changedoc generates reference documentation for database change types.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/woozymasta/changedoc"
	"github.com/woozymasta/changedoc/change"
	"github.com/woozymasta/changedoc/database"
	"github.com/woozymasta/changedoc/sqlcheck"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/changedoc"
	_buildTime string
)

var (
	// errStaleDocumentation is returned by verify when files on disk are out of date.
	errStaleDocumentation = errors.New("documentation is out of date")
	// errConflictingKeepGoing rejects --keep-going combined with --no-keep-going.
	errConflictingKeepGoing = errors.New("--keep-going and --no-keep-going are mutually exclusive")
)

// cliOptions describes changedoc CLI flags and subcommands.
type cliOptions struct {
	Config  string `short:"c" long:"config" description:"Path to config file (default: changedoc.yaml in working directory)"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Write change documentation pages (default command)"`
	Verify   verifyCommand   `command:"verify" description:"Check that documentation pages on disk are current"`
	List     listCommand     `command:"list" description:"List change types with page file and support summary"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
	CheckSQL checkSQLCommand `command:"check-sql" description:"Execute example SQL against a scratch database"`
}

// generateCommand writes documentation files.
type generateCommand struct {
	runner *cliRunner

	Output      outputFlags `group:"Output"`
	KeepGoing   bool        `short:"k" long:"keep-going" description:"Render remaining pages after a failure and report all failures"`
	NoKeepGoing bool        `long:"no-keep-going" description:"Stop at the first failure even when keep_going is set in config"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	keepGoing, err := command.keepGoing()
	if err != nil {
		return err
	}

	return command.runner.runGenerate(command.Output, keepGoing)
}

// keepGoing returns the flag override; nil keeps the configured value.
func (command *generateCommand) keepGoing() (*bool, error) {
	switch {
	case command.KeepGoing && command.NoKeepGoing:
		return nil, errConflictingKeepGoing
	case command.KeepGoing:
		value := true
		return &value, nil
	case command.NoKeepGoing:
		value := false
		return &value, nil
	default:
		return nil, nil
	}
}

// verifyCommand compares generated documentation with files on disk.
type verifyCommand struct {
	runner *cliRunner

	Output outputFlags `group:"Output"`
}

// Execute runs verify subcommand.
func (command *verifyCommand) Execute(_ []string) error {
	return command.runner.runVerify(command.Output)
}

// listCommand prints a change type summary table.
type listCommand struct {
	runner *cliRunner

	NoColor bool `long:"no-color" description:"Disable colored output"`
}

// Execute runs list subcommand.
func (command *listCommand) Execute(_ []string) error {
	return command.runner.runList(command.NoColor)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template" choice:"page" choice:"nav" default:"page"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// checkSQLCommand runs example SQL against a database.
type checkSQLCommand struct {
	runner *cliRunner

	Database string `short:"d" long:"database" description:"Target database short name (default from config or sqlite)"`
	DSN      string `long:"dsn" description:"Connection string (sqlite defaults to :memory:)"`
	Fixture  string `short:"f" long:"fixture" description:"Path to fixture SQL run before every change"`
}

// Execute runs check-sql subcommand.
func (command *checkSQLCommand) Execute(_ []string) error {
	return command.runner.runCheckSQL(command.Database, command.DSN, command.Fixture)
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	options     *cliOptions
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "changedoc"
	}
	programName = filepath.Base(programName)

	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate renders documentation and writes it below the output root.
func (runner *cliRunner) runGenerate(output outputFlags, keepGoing *bool) error {
	cfg, err := runner.settings(output)
	if err != nil {
		return err
	}

	if keepGoing != nil {
		cfg.KeepGoing = *keepGoing
	}

	logger := runner.logger()
	defer func() { _ = logger.Sync() }()

	gen, err := runner.newGenerator(cfg, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	files, genErr := gen.Generate(ctx)
	if files == nil {
		return fmt.Errorf("generate documentation: %w", genErr)
	}

	if err := files.Write(ctx, cfg.Root); err != nil {
		return fmt.Errorf("write documentation: %w", err)
	}

	_, _ = fmt.Fprintf(runner.stdout, "wrote %d files to %s\n", files.Len(), cfg.Root)
	if genErr != nil {
		return fmt.Errorf("generate documentation: %w", genErr)
	}

	return nil
}

// runVerify renders documentation and compares it with files below the output root.
func (runner *cliRunner) runVerify(output outputFlags) error {
	cfg, err := runner.settings(output)
	if err != nil {
		return err
	}

	logger := runner.logger()
	defer func() { _ = logger.Sync() }()

	gen, err := runner.newGenerator(cfg, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	files, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate documentation: %w", err)
	}

	if err := files.Verify(ctx, cfg.Root); err != nil {
		return fmt.Errorf("%w: %w", errStaleDocumentation, err)
	}

	_, _ = fmt.Fprintf(runner.stdout, "%d files up to date in %s\n", files.Len(), cfg.Root)
	return nil
}

// runList prints change types with page file, example database and rollback support.
func (runner *cliRunner) runList(noColor bool) error {
	cfg, err := runner.settings(outputFlags{})
	if err != nil {
		return err
	}

	logger := runner.logger()
	defer func() { _ = logger.Sync() }()

	gen, err := runner.newGenerator(cfg, logger)
	if err != nil {
		return err
	}

	registry := change.DefaultRegistry()
	catalog := database.DefaultCatalog()

	rows := newTable(runner.stdout, noColor, "CHANGE", "PAGE", "EXAMPLE DB", "SUPPORTED", "ROLLBACK")
	for _, name := range registry.Names() {
		example, err := changedoc.BuildExample(registry, name, cfg.Author)
		if err != nil {
			return err
		}

		exampleDB := "-"
		if db, err := gen.ExampleDatabase(name); err == nil && db != nil {
			exampleDB = db.ShortName
		}

		var supported, rollback, total int
		for _, db := range catalog.All() {
			if db.ShortName == database.UnsupportedShortName {
				continue
			}

			total++
			if example.Change.Supports(db) {
				supported++
			}

			if example.Change.SupportsRollback(db) {
				rollback++
			}
		}

		rows.addRow(
			name,
			changedoc.PageFileName(name)+".md",
			exampleDB,
			fmt.Sprintf("%d/%d", supported, total),
			fmt.Sprintf("%d/%d", rollback, total),
		)
	}

	rows.render()
	return nil
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := changedoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, tpl); err != nil {
			return fmt.Errorf("write template to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(tpl), 0o600); err != nil {
		return fmt.Errorf("write template file %q: %w", outputPath, err)
	}

	return nil
}

// runCheckSQL executes example SQL of every change type against a scratch database.
func (runner *cliRunner) runCheckSQL(shortName, dsn, fixturePath string) error {
	cfg, err := runner.settings(outputFlags{})
	if err != nil {
		return err
	}

	shortName = override(cfg.SQLCheck.Database, shortName)
	dsn = override(cfg.SQLCheck.DSN, dsn)
	fixturePath = override(cfg.SQLCheck.Fixture, fixturePath)

	db, err := database.DefaultCatalog().Get(shortName)
	if err != nil {
		return err
	}

	if db.DriverName == "" {
		return fmt.Errorf("%w: no driver for %s", sqlcheck.ErrUnknownDriver, db.ShortName)
	}

	logger := runner.logger()
	defer func() { _ = logger.Sync() }()

	opts := []sqlcheck.Option{sqlcheck.WithLogger(logger), sqlcheck.WithAuthor(cfg.Author)}
	if fixturePath != "" {
		fixture, err := os.ReadFile(fixturePath) //nolint:gosec
		if err != nil {
			return fmt.Errorf("read fixture file %q: %w", fixturePath, err)
		}

		opts = append(opts, sqlcheck.WithFixture(string(fixture)))
	}

	checker, err := sqlcheck.Open(db.DriverName, dsn, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = checker.Close() }()

	ctx := context.Background()
	if err := checker.Ping(ctx); err != nil {
		return err
	}

	report, checkErr := checker.CheckAll(ctx, change.DefaultRegistry(), db)

	passed := color.New(color.FgGreen)
	failed := color.New(color.FgRed)
	_, _ = fmt.Fprintf(runner.stdout, "%s %s, %d skipped, %s\n",
		db.ProductName+":",
		passed.Sprintf("%d passed", len(report.Passed)),
		len(report.Skipped),
		failed.Sprintf("%d failed", len(report.Failed)),
	)

	for _, name := range report.Failed {
		_, _ = fmt.Fprintf(runner.stdout, "  %s %s\n", failed.Sprint("FAIL"), name)
	}

	if checkErr != nil {
		return fmt.Errorf("check generated sql on %s: %w", db.ShortName, checkErr)
	}

	return nil
}

// settings loads config and applies output flag overrides.
func (runner *cliRunner) settings(output outputFlags) (settings, error) {
	configPath := ""
	if runner.options != nil {
		configPath = runner.options.Config
	}

	cfg, err := loadSettings(configPath, ".")
	if err != nil {
		return settings{}, err
	}

	return output.apply(cfg), nil
}

// logger builds the stderr logger honoring --verbose.
func (runner *cliRunner) logger() *zap.Logger {
	verbose := runner.options != nil && runner.options.Verbose
	return newLogger(runner.stderr, verbose)
}

// newGenerator creates a generator for the built-in registry and catalog.
func (runner *cliRunner) newGenerator(cfg settings, logger *zap.Logger) (*changedoc.Generator, error) {
	opt := changedoc.Options{
		ToolName:         cfg.ToolName,
		NavPath:          cfg.NavPath,
		PagesDir:         cfg.PagesDir,
		Author:           cfg.Author,
		ExampleDatabases: cfg.ExampleDatabases,
		KeepGoing:        cfg.KeepGoing,
		Logger:           logger,
	}

	if cfg.PageTemplate != "" {
		text, err := os.ReadFile(cfg.PageTemplate) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("read template file %q: %w", cfg.PageTemplate, err)
		}

		opt.PageTemplateText = string(text)
	}

	if cfg.NavTemplate != "" {
		text, err := os.ReadFile(cfg.NavTemplate) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("read template file %q: %w", cfg.NavTemplate, err)
		}

		opt.NavTemplateText = string(text)
	}

	return changedoc.New(change.DefaultRegistry(), database.DefaultCatalog(), opt)
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
// Without a subcommand it runs generate with config defaults.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Generate.runner = runner
	options.Verify.runner = runner
	options.List.runner = runner
	options.Template.runner = runner
	options.CheckSQL.runner = runner
	runner.options = options

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.SubcommandsOptional = true
	applyCommandLongDescriptions(parser, runner.programName)

	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}

	if parser.Active == nil {
		return runner.runGenerate(outputFlags{}, nil)
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Render one markdown page per change type and the navigation include.
Files are written below the output root and overwritten in place.
Running without a subcommand is the same as `+"`generate`"+`.

Examples:
> $ %s
> $ %s generate --root site --keep-going
`, programName, programName)),
		"verify": strings.TrimSpace(fmt.Sprintf(`
Render documentation in memory and compare it with files below the output root.
Exits with code 1 and prints a diff for every missing or changed file.

Examples:
> $ %s verify --root site
`, programName)),
		"list": strings.TrimSpace(fmt.Sprintf(`
Print every change type with its page file, SQL sample database and the
number of databases supporting it and its automatic rollback.

Examples:
> $ %s list
> $ %s list --no-color > changes.txt
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`page` or `nav`"+`).
Use it as a starting point for --page-template or --nav-template.

Examples:
> $ %s template > page.gotmpl
> $ %s template -t nav templates/nav.gotmpl
`, programName, programName)),
		"check-sql": strings.TrimSpace(fmt.Sprintf(`
Build every example change, generate its SQL for the target database and
execute fixture plus SQL in a transaction that is always rolled back.
Supported targets: sqlite (in memory by default), postgresql, mysql.

Examples:
> $ %s check-sql
> $ %s check-sql -d postgresql --dsn "postgres://localhost/scratch?sslmode=disable"
> $ %s check-sql -d mysql --dsn "root@tcp(localhost:3306)/scratch" -f fixture.sql
`, programName, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
