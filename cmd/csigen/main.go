// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

// csigen generates C headers and AsciiDoc reference docs from YAML API definitions.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/csigen"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/csigen"
	_buildTime string
)

// cliOptions describes csigen CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Generate C headers or AsciiDoc documentation"`
	Names    namesCommand    `command:"names" description:"Print cross-reference names declared by API modules"`
	Template templateCommand `command:"template" description:"Print built-in documentation template"`
}

// logFlags groups logging flags.
type logFlags struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
}

// outputFlags groups output location flags.
type outputFlags struct {
	OutDir    string `short:"o" long:"out-dir" description:"Output directory for C headers" default:"output"`
	DocOutDir string `short:"d" long:"doc-out-dir" description:"Output directory for AsciiDoc documentation" default:"adoc_output"`
}

// modeFlags groups generation mode flags.
type modeFlags struct {
	GenerateHeaders bool   `long:"generate-headers" description:"Generate C headers (default mode)"`
	GenerateDocs    bool   `long:"generate-docs" description:"Generate AsciiDoc documentation; wins over --generate-headers"`
	TargetLanguage  string `short:"l" long:"target-language" description:"Target language" choice:"C" default:"C"`
}

// docFlags groups documentation rendering flags.
type docFlags struct {
	Optimization string `short:"O" long:"adoc-optimization" description:"Override documentation optimization from API definition" choice:"html" choice:"plain"`
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom module document template (.gotmpl)"`
}

// generateCommand renders headers or documentation from an API definition.
type generateCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"api" description:"Top-level API definition YAML file" required:"yes"`
	} `positional-args:"yes"`

	ModeFlags   modeFlags   `group:"Generation Mode"`
	OutputFlags outputFlags `group:"Output"`
	DocFlags    docFlags    `group:"Documentation"`
	LogFlags    logFlags    `group:"Logging"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(generateRequest{
		InputPath:    command.Args.Input,
		Target:       command.ModeFlags.TargetLanguage,
		Mode:         csigen.SelectMode(command.ModeFlags.GenerateHeaders, command.ModeFlags.GenerateDocs),
		OutDir:       command.OutputFlags.OutDir,
		DocOutDir:    command.OutputFlags.DocOutDir,
		Optimization: command.DocFlags.Optimization,
		TemplatePath: command.DocFlags.TemplatePath,
		Verbose:      command.LogFlags.Verbose,
	})
}

// namesCommand prints the cross-reference index.
type namesCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"api" description:"Top-level API definition YAML file" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs names subcommand.
func (command *namesCommand) Execute(_ []string) error {
	return command.runner.runNames(command.Args.Input)
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template" choice:"module" choice:"index" default:"module"`
}

// templateCommand exports built-in documentation template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
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

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// generateRequest holds resolved generate flags.
type generateRequest struct {
	InputPath    string
	Target       string
	Mode         csigen.Mode
	OutDir       string
	DocOutDir    string
	Optimization string
	TemplatePath string
	Verbose      bool
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
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "csigen"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
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

// newLogger creates a timestamped logger writing to w at the selected level.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "csigen",
	})
}

// runGenerate loads definitions and renders the selected artifacts.
func (runner *cliRunner) runGenerate(request generateRequest) error {
	target, err := csigen.ParseTarget(request.Target)
	if err != nil {
		return err
	}

	logger := newLogger(runner.stderr, request.Verbose)
	start := time.Now()

	api, modules, err := csigen.LoadFile(request.InputPath)
	if err != nil {
		return fmt.Errorf("load definitions: %w", err)
	}

	logger.Debug("definitions loaded", "api", request.InputPath, "modules", len(modules))

	options := csigen.Options{
		Target:       string(target),
		Mode:         request.Mode,
		OutDir:       request.OutDir,
		DocOutDir:    request.DocOutDir,
		Optimization: request.Optimization,
		Logger:       logger,
	}

	if request.TemplatePath != "" {
		customTemplate, err := os.ReadFile(request.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", request.TemplatePath, err)
		}

		options.ModuleTemplateText = string(customTemplate)
	}

	result, err := csigen.Generate(api, modules, options)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	logger.Infof("generated %d files (%s)", len(result.Files), time.Since(start).Round(time.Millisecond))
	return nil
}

// runNames prints every linkable name and its declaring module.
func (runner *cliRunner) runNames(inputPath string) error {
	_, modules, err := csigen.LoadFile(inputPath)
	if err != nil {
		return fmt.Errorf("load definitions: %w", err)
	}

	index := csigen.BuildXRefIndex(modules)
	for _, name := range index.Names() {
		owner, _ := index.Owner(name)
		if _, err := fmt.Fprintf(runner.stdout, "%s\t%s\n", name, owner); err != nil {
			return fmt.Errorf("write names to stdout: %w", err)
		}
	}

	return nil
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := csigen.BuiltinTemplate(templateName)
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

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Generate.runner = runner
	options.Names.runner = runner
	options.Template.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate C headers (default) or AsciiDoc documentation from a top-level API
definition and the module files it references.
Documentation is written as index.adoc plus modules/<file>.adoc.

Examples:
> $ %s generate api/csi.yaml --out-dir include
> $ %s generate --generate-docs --adoc-optimization html api/csi.yaml -d docs
`, programName, programName)),
		"names": strings.TrimSpace(fmt.Sprintf(`
Print every type and function name used for documentation cross-references,
one per line with the header that declares it.

Examples:
> $ %s names api/csi.yaml
`, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in documentation template text (`+"`module` or `index`"+`).
Use the module template as a starting point for --template-file.

Examples:
> $ %s template > module.adoc.gotmpl
> $ %s template -t index templates/index.adoc.gotmpl
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(w io.Writer) {
	_, _ = fmt.Fprintf(w, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
