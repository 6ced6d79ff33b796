package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/code-payments/loader-v4-client/pkg/solana"
	"github.com/code-payments/loader-v4-client/pkg/solana/loaderv4"
)

type buildArgs struct {
	offset  uint32
	bytes   []byte
	newSize uint32
}

func (c *cli) newBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a loader instruction and print it as JSON",
	}

	for _, instructionType := range loaderv4.InstructionTypes {
		buildCmd.AddCommand(c.newBuildInstructionCmd(instructionType))
	}

	return buildCmd
}

func (c *cli) newBuildInstructionCmd(instructionType loaderv4.InstructionType) *cobra.Command {
	slots := instructionType.AccountSlots()
	addresses := make([]string, len(slots))

	var args buildArgs
	var rawBytes string

	cmd := &cobra.Command{
		Use:   flagName(instructionType.String()),
		Short: fmt.Sprintf("Build a %s instruction", instructionType),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logrus.StandardLogger().WithFields(logrus.Fields{
				"type":        "cmd/loaderv4/build",
				"instruction": instructionType.String(),
			})

			keys := make([]ed25519.PublicKey, len(slots))
			for i, slot := range slots {
				if len(addresses[i]) == 0 {
					continue
				}

				key, err := decodeAddress(addresses[i])
				if err != nil {
					return errors.Wrap(err, slot.Name)
				}
				keys[i] = key
			}

			if len(rawBytes) > 0 {
				decoded, err := hex.DecodeString(rawBytes)
				if err != nil {
					return errors.Wrap(err, "invalid hex bytes")
				}
				args.bytes = decoded
			}

			ix, err := buildInstruction(instructionType, keys, &args)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"accounts":  len(ix.Accounts),
				"data_size": len(ix.Data),
			}).Debug("built instruction")

			return writeJSON(cmd.OutOrStdout(), toJSONInstruction(ix), c.config.Pretty)
		},
	}

	for i, slot := range slots {
		name := flagName(slot.Name)
		usage := fmt.Sprintf("%s address", slot.Name)
		if slot.IsOptional {
			usage += " (optional)"
		}

		cmd.Flags().StringVar(&addresses[i], name, "", usage)
		if !slot.IsOptional {
			must(cmd.MarkFlagRequired(name))
		}
	}

	switch instructionType {
	case loaderv4.InstructionTypeWrite:
		cmd.Flags().Uint32Var(&args.offset, "offset", 0, "offset at which to write the bytes")
		cmd.Flags().StringVar(&rawBytes, "bytes", "", "hex encoded program data")
	case loaderv4.InstructionTypeTruncate:
		cmd.Flags().Uint32Var(&args.newSize, "new-size", 0, "new size of the program account")
		must(cmd.MarkFlagRequired("new-size"))
	}

	return cmd
}

// buildInstruction maps slot ordered keys onto the typed builders.
func buildInstruction(instructionType loaderv4.InstructionType, keys []ed25519.PublicKey, args *buildArgs) (solana.Instruction, error) {
	switch instructionType {
	case loaderv4.InstructionTypeWrite:
		return loaderv4.NewWriteInstruction(
			&loaderv4.WriteInstructionAccounts{
				Program:   keys[0],
				Authority: keys[1],
			},
			&loaderv4.WriteInstructionArgs{
				Offset: args.offset,
				Bytes:  args.bytes,
			},
		), nil
	case loaderv4.InstructionTypeTruncate:
		return loaderv4.NewTruncateInstruction(
			&loaderv4.TruncateInstructionAccounts{
				Program:     keys[0],
				Authority:   keys[1],
				Destination: keys[2],
			},
			&loaderv4.TruncateInstructionArgs{
				NewSize: args.newSize,
			},
		), nil
	case loaderv4.InstructionTypeDeploy:
		return loaderv4.NewDeployInstruction(
			&loaderv4.DeployInstructionAccounts{
				Program:   keys[0],
				Authority: keys[1],
				Source:    keys[2],
			},
			&loaderv4.DeployInstructionArgs{},
		), nil
	case loaderv4.InstructionTypeRetract:
		return loaderv4.NewRetractInstruction(
			&loaderv4.RetractInstructionAccounts{
				Program:   keys[0],
				Authority: keys[1],
			},
			&loaderv4.RetractInstructionArgs{},
		), nil
	case loaderv4.InstructionTypeTransferAuthority:
		return loaderv4.NewTransferAuthorityInstruction(
			&loaderv4.TransferAuthorityInstructionAccounts{
				Program:          keys[0],
				CurrentAuthority: keys[1],
				NewAuthority:     keys[2],
			},
			&loaderv4.TransferAuthorityInstructionArgs{},
		), nil
	case loaderv4.InstructionTypeFinalize:
		return loaderv4.NewFinalizeInstruction(
			&loaderv4.FinalizeInstructionAccounts{
				Program:     keys[0],
				Authority:   keys[1],
				NextVersion: keys[2],
			},
			&loaderv4.FinalizeInstructionArgs{},
		), nil
	}
	return solana.Instruction{}, errors.Wrapf(loaderv4.ErrUnknownInstruction, "type %d", instructionType)
}

func flagName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
