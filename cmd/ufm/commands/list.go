package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ufm/internal/constants"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all partitions",
		Long:    "List all partitions with their QoS settings and number of bound ports",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	client, err := CreateClient(cmd)
	if err != nil {
		return err
	}

	partitions, err := client.Partitions().List(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list partitions: %w", err)
	}

	if format != constants.FormatTable {
		return renderStructured(cmd.OutOrStdout(), format, partitions)
	}

	if len(partitions) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No partitions found")

		return nil
	}

	return renderPartitionTable(cmd, partitions)
}

func renderPartitionTable(cmd *cobra.Command, partitions []ufm.Partition) error {
	rows := make([][]string, 0, len(partitions))
	for _, partition := range partitions {
		rows = append(rows, []string{
			valueOrNA(partition.Name),
			ufm.BuildPKey(partition.PKey),
			strconv.FormatBool(partition.IPoIB),
			strconv.Itoa(partition.QoS.MTULimit),
			formatFloat(partition.QoS.RateLimit),
			strconv.Itoa(partition.QoS.ServiceLevel),
			strconv.Itoa(len(partition.GUIDs)),
		})
	}

	return renderTable(cmd.OutOrStdout(), []string{"Name", "Pkey", "IPoIB", "MTU", "Rate", "Level", "GUIDs#"}, rows)
}
