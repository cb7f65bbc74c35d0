package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/chrisuehlinger/vanillautils/config"
	"github.com/chrisuehlinger/vanillautils/dom"
	"github.com/chrisuehlinger/vanillautils/html"
	"github.com/chrisuehlinger/vanillautils/js"
	"github.com/chrisuehlinger/vanillautils/vanilla"
)

type rootOptions struct {
	profilePath string
	preset      string
	verbose     bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rootCommand := &cobra.Command{
		Use:   "vanillautils",
		Short: "Run scripts against the VanillaUtils DOM helpers",
	}
	rootCommand.SilenceUsage = true
	rootCommand.PersistentFlags().StringVar(&opts.profilePath, "profile", "", "YAML environment profile")
	rootCommand.PersistentFlags().StringVar(&opts.preset, "preset", "modern", "built-in profile: "+strings.Join(config.PresetNames(), ", "))
	rootCommand.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCommand.AddCommand(newRunCommand(opts))
	rootCommand.AddCommand(newSniffCommand(opts))
	rootCommand.AddCommand(newTrimCommand())
	return rootCommand
}

func (o *rootOptions) loadProfile() (config.Profile, error) {
	if o.profilePath != "" {
		return config.Load(o.profilePath)
	}
	return config.Preset(o.preset)
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	var htmlPath string
	var dump bool
	runCommand := &cobra.Command{
		Use:   "run [flags] SCRIPT...",
		Short: "Load a document and execute scripts with VanillaUtils installed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := opts.loadProfile()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			logger := opts.logger(cmd.ErrOrStderr())

			doc, err := loadDocument(htmlPath)
			if err != nil {
				return err
			}
			win := dom.NewWindow(doc, profile.UserAgent)
			utils := vanilla.New(profile.Environment(vanilla.WindowEvents(win), doc), vanilla.WithLogger(logger))
			runtime := js.NewRuntime(win,
				js.WithEventModel(utils.EventModel()),
				js.WithLogger(logger),
				js.WithConsole(cmd.OutOrStdout()))
			js.InstallVanillaUtils(runtime, utils)

			for _, path := range args {
				code, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				logger.Debug("executing script", "path", path, "event_model", string(utils.EventModel()))
				if err := runtime.ExecuteScript(string(code), path); err != nil {
					return err
				}
			}
			if errs := runtime.Errors(); len(errs) > 0 {
				return fmt.Errorf("%d script error(s), first: %w", len(errs), errs[0])
			}

			if dump {
				out, err := html.RenderString(doc.AsNode())
				if err != nil {
					return fmt.Errorf("render document: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	runCommand.Flags().StringVar(&htmlPath, "html", "", "HTML document to load (empty document if unset)")
	runCommand.Flags().BoolVar(&dump, "dump", false, "print the document after the scripts ran")
	return runCommand
}

func loadDocument(path string) (*dom.Document, error) {
	if path == "" {
		return html.ParseString("")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return doc, nil
}

type sniffReport struct {
	Profile    string `json:"profile,omitempty"`
	UserAgent  string `json:"user_agent"`
	IsIE       bool   `json:"is_ie"`
	EventModel string `json:"event_model"`
}

func newSniffCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool
	sniffCommand := &cobra.Command{
		Use:   "sniff [USER_AGENT]",
		Short: "Report whether a user agent is a legacy IE",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := opts.loadProfile()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if len(args) == 1 {
				profile.UserAgent = args[0]
			}
			utils := vanilla.New(profile.Environment(nil, dom.NewDocument()))
			report := sniffReport{
				Profile:    profile.Name,
				UserAgent:  profile.UserAgent,
				IsIE:       utils.IsIE(),
				EventModel: string(utils.EventModel()),
			}
			if asJSON {
				data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(report)
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "isIE=%t event_model=%s\n", report.IsIE, report.EventModel)
			return err
		},
	}
	sniffCommand.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return sniffCommand
}

func newTrimCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trim",
		Short: "Trim leading and trailing whitespace from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), vanilla.Trim(string(data)))
			return err
		},
	}
}
