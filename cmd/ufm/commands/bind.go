package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ufm/internal/constants"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

// NewBindCommand creates the bind command.
func NewBindCommand() *cobra.Command {
	var (
		pkey       string
		guids      []string
		membership string
		index0     bool
		ipoib      bool
	)

	cmd := &cobra.Command{
		Use:   "bind",
		Short: "Bind ports to a partition",
		Long: `Add port GUIDs to an existing partition.

All GUIDs are bound with the same membership and index0 settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pkey == "" {
				return constants.ErrPKeyRequired
			}

			if len(guids) == 0 {
				return constants.ErrGUIDsRequired
			}

			key, err := ufm.ParsePKey(pkey)
			if err != nil {
				return err
			}

			portMembership, err := ufm.ParseMembership(membership)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			partition := &ufm.Partition{PKey: key, IPoIB: ipoib}

			err = client.Partitions().BindPorts(commandContext(cmd), partition, bindings(guids, index0, portMembership))
			if err != nil {
				return fmt.Errorf("failed to bind ports: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Bound %s to partition %s\n", strings.Join(guids, ", "), ufm.BuildPKey(key))

			return nil
		},
	}

	cmd.Flags().StringVar(&pkey, "pkey", "", "pkey of the partition (required)")
	cmd.Flags().StringSliceVarP(&guids, "guids", "g", nil, "port GUIDs to bind (required)")
	cmd.Flags().StringVarP(&membership, "membership", "m", string(ufm.MembershipFull), "port membership (full or limited)")
	cmd.Flags().BoolVar(&index0, "index0", true, "store the pkey at index 0 of each port's pkey table")
	cmd.Flags().BoolVar(&ipoib, "ipoib", true, "enable IP over InfiniBand")

	return cmd
}

// NewUnbindCommand creates the unbind command.
func NewUnbindCommand() *cobra.Command {
	var (
		pkey  string
		guids []string
	)

	cmd := &cobra.Command{
		Use:   "unbind",
		Short: "Unbind ports from a partition",
		Long:  "Remove port GUIDs from an existing partition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pkey == "" {
				return constants.ErrPKeyRequired
			}

			if len(guids) == 0 {
				return constants.ErrGUIDsRequired
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Partitions().UnbindPorts(commandContext(cmd), pkey, guids)
			if err != nil {
				return fmt.Errorf("failed to unbind ports: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unbound %s from partition %s\n", strings.Join(guids, ", "), pkey)

			return nil
		},
	}

	cmd.Flags().StringVar(&pkey, "pkey", "", "pkey of the partition (required)")
	cmd.Flags().StringSliceVarP(&guids, "guids", "g", nil, "port GUIDs to unbind (required)")

	return cmd
}
