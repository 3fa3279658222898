package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ufm/internal/constants"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	var pkey string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a partition",
		Long:  "Delete the partition with the given pkey",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pkey == "" {
				return constants.ErrPKeyRequired
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Partitions().Delete(commandContext(cmd), pkey)
			if err != nil {
				return fmt.Errorf("failed to delete partition: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Partition %s deleted\n", pkey)

			return nil
		},
	}

	cmd.Flags().StringVar(&pkey, "pkey", "", "pkey of the partition to delete (required)")

	return cmd
}
