package cmd

import (
	"context"
	"errors"
	"os"

	uarengine "github.com/lighthouse-iam/uar-engine"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	indexPath   string
	joinOutPath string

	joinCmd = &cobra.Command{
		Use:   "join <system> <satellite.csv>",
		Short: "Join a satellite access export against a previously built SoT index and score risk",
		Long:  "Loads the serialized index from --index, parses the given satellite CSV, runs the match cascade and risk scorer, and writes the JoinResult as YAML to --out (or stdout).",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				_ = cmd.Help()
				return errors.New("need to specify arguments <system> <satellite.csv>")
			}
			systemName, satPath := args[0], args[1]

			if indexPath == "" {
				return errors.New("--index is required")
			}

			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			serialized, err := os.ReadFile(indexPath)
			if err != nil {
				return err
			}

			eng := uarengine.New()
			if err := eng.LoadIndex(string(serialized)); err != nil {
				return err
			}

			raw, err := os.ReadFile(satPath)
			if err != nil {
				return err
			}

			opts := &uarengine.RiskOptions{
				DormancyDays:       cfg.DormancyDays,
				PrivilegedKeywords: cfg.PrivilegedKeywords,
			}

			result, err := eng.ParseSatellite(context.Background(), raw, systemName, cfg.satelliteColumnMap(systemName), opts)
			if err != nil {
				return err
			}

			for _, w := range result.Warnings {
				logrus.Warn(w)
			}
			logrus.WithFields(logrus.Fields{
				"system":         result.SystemName,
				"total":          result.Stats.Total,
				"exactEmail":     result.Stats.ExactEmail,
				"exactId":        result.Stats.ExactID,
				"fuzzyName":      result.Stats.FuzzyName,
				"fuzzyAmbiguous": result.Stats.FuzzyAmbiguous,
				"orphans":        result.Stats.Orphans,
			}).Info("join complete")

			out, err := yaml.Marshal(result)
			if err != nil {
				return err
			}

			if joinOutPath == "" || joinOutPath == "-" {
				_, err = os.Stdout.Write(out)
				return err
			}
			return os.WriteFile(joinOutPath, out, 0o644)
		},
	}
)

func init() {
	joinCmd.Flags().StringVar(&indexPath, "index", "", "path to a serialized SoT index produced by parse-sot")
	joinCmd.Flags().StringVarP(&joinOutPath, "out", "o", "-", "where to write the JoinResult YAML (default: stdout)")
	rootCmd.AddCommand(joinCmd)
}
