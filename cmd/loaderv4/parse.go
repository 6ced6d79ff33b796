package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/code-payments/loader-v4-client/pkg/solana/loaderv4"
)

func (c *cli) newParseCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a JSON instruction, as printed by build, into its accounts and data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logrus.StandardLogger().WithField("type", "cmd/loaderv4/parse")

			var r io.Reader = cmd.InOrStdin()
			if len(path) > 0 && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return errors.Wrap(err, "failed to open instruction file")
				}
				defer f.Close()
				r = f
			}

			var raw jsonInstruction
			if err := json.NewDecoder(r).Decode(&raw); err != nil {
				return errors.Wrap(err, "failed to decode instruction json")
			}

			ix, err := raw.toInstruction()
			if err != nil {
				return err
			}

			decompiled, err := loaderv4.DecompileInstruction(ix)
			if err != nil {
				log.WithError(err).Debug("failed to decompile instruction")
				return errors.Wrap(err, "failed to decompile instruction")
			}

			log.WithField("instruction", decompiled.Type.String()).Debug("parsed instruction")

			return writeJSON(cmd.OutOrStdout(), toJSONDecompiledInstruction(decompiled), c.config.Pretty)
		},
	}

	cmd.Flags().StringVar(&path, "file", "-", "instruction json file, or - for stdin")

	return cmd
}
