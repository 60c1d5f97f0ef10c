package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rohanthewiz/atlas"
	"github.com/rohanthewiz/atlas/internal/config"
	"github.com/rohanthewiz/atlas/internal/scenario"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.toml>",
	Short: "Replay a scenario and print its lifecycle events",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().String("root", "", "application root when the scenario sets none")
	replayCmd.Flags().String("html", "", "write an inspection page to this file")
	_ = viper.BindPFlag("root", replayCmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("html", replayCmd.Flags().Lookup("html"))

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sc, err := scenario.Load(args[0])
	if err != nil {
		logger.LogErr(err, "could not load scenario")
		return err
	}

	res, err := sc.Replay(scenario.Options{Root: cfg.Root, Verbose: cfg.Verbose})
	if err != nil {
		logger.LogErr(err, "replay aborted", "scenario", args[0])
		return err
	}

	printReplay(cmd.OutOrStdout(), res)

	if cfg.HTML != "" {
		page := atlas.RenderInspection(res.Router, res.Journal)
		if err := os.WriteFile(cfg.HTML, []byte(page), 0o644); err != nil {
			return serr.Wrap(err, "writing inspection page", "path", cfg.HTML)
		}
	}

	if n := res.Failed(); n > 0 {
		return serr.New(fmt.Sprintf("%d step(s) failed", n))
	}
	return nil
}

func printReplay(w io.Writer, res *scenario.Result) {
	fmt.Fprintln(w, "events:")
	for i, entry := range res.Journal.Entries() {
		if entry.Info.IsZero() {
			fmt.Fprintf(w, "  %3d %-15s %q -> %q\n", i+1, entry.Event, entry.From, entry.To)
			continue
		}
		fmt.Fprintf(w, "  %3d %-15s %s -> %s\n", i+1, entry.Event, describe(entry.Previous), describe(entry.Info))
	}

	fmt.Fprintln(w, "steps:")
	fmt.Fprintf(w, "  start    matched=%t%s\n", res.Start.Matched, failure(res.Start.Err))
	for _, step := range res.Steps {
		fmt.Fprintf(w, "  %-8s %q matched=%t%s\n", step.Step.Action, step.Step.Fragment, step.Matched, failure(step.Err))
	}
}

func describe(info atlas.RouteInfo) string {
	if info.IsZero() {
		return "-"
	}
	return info.Name + "(" + info.Route + ")"
}

func failure(err error) string {
	if err == nil {
		return ""
	}
	return " error=" + err.Error()
}
