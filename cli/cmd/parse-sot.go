package cmd

import (
	"errors"
	"os"

	uarengine "github.com/lighthouse-iam/uar-engine"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	sotOutPath string

	parseSotCmd = &cobra.Command{
		Use:   "parse-sot <sot.csv>",
		Short: "Parse a Source-of-Truth roster export and build its identity index",
		Long:  "Parses the given CSV, builds the in-memory identity index, and writes the serialized index to --out (or stdout) for later use by the join command.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument <sot.csv>")
			}

			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			eng := uarengine.New()
			result, err := eng.ParseSoT(raw, cfg.SoTColumnMap)
			if err != nil {
				return err
			}

			for _, w := range result.Warnings {
				logrus.Warn(w)
			}
			logrus.WithFields(logrus.Fields{
				"total":        result.Stats.TotalRecords,
				"active":       result.Stats.Active,
				"terminated":   result.Stats.Terminated,
				"uniqueEmails": result.Stats.UniqueEmails,
			}).Info("SoT index built")

			if sotOutPath == "" || sotOutPath == "-" {
				_, err = os.Stdout.WriteString(result.SerializedIndex)
				return err
			}
			return os.WriteFile(sotOutPath, []byte(result.SerializedIndex), 0o644)
		},
	}
)

func init() {
	parseSotCmd.Flags().StringVarP(&sotOutPath, "out", "o", "-", "where to write the serialized index (default: stdout)")
	rootCmd.AddCommand(parseSotCmd)
}
