package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/heathj/gobrowse/scenario"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:           "gobrowse",
	Short:         "Exercise DOM token lists against the in-process DOM",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		logrus.SetLevel(lvl)

		mode, err := cmd.Flags().GetString("color")
		if err != nil {
			return err
		}
		switch mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		case "auto":
		default:
			return errors.Errorf("invalid --color %q (want auto|on|off)", mode)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <scenario.toml>...",
	Short: "Replay token list scenarios and check their expectations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			report, err := scenario.Run(s, logrus.StandardLogger())
			if err != nil {
				return errors.Wrapf(err, "running %s", path)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "== %s\n", report.Name)
			for _, res := range report.Results {
				mark := passColor.Sprint("PASS")
				if !res.Pass {
					mark = failColor.Sprint("FAIL")
					failed++
				}
				fmt.Fprintf(out, "%s %s\n", mark, res)
			}
			if report.Final == nil {
				fmt.Fprintln(out, "final: <absent>")
			} else {
				fmt.Fprintf(out, "final: %q\n", *report.Final)
			}
		}
		if failed > 0 {
			return errors.Errorf("%d step(s) failed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.PersistentFlags().String("log-level", "warn", "logrus level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
