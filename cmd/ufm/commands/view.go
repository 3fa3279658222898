package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ufm/internal/constants"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

// PartitionView is the structured output of the view command.
type PartitionView struct {
	Partition *ufm.Partition `json:"partition" yaml:"partition"`
	Ports     []ufm.Port     `json:"ports"     yaml:"ports"`
}

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	var pkey string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the detail of a partition",
		Long: `Show a partition and the ports bound to it.

The default partition (0x7fff) contains every host, so all ports are listed
for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, pkey)
		},
	}

	cmd.Flags().StringVar(&pkey, "pkey", "", "pkey of the partition to view (required)")

	return cmd
}

func runView(cmd *cobra.Command, pkey string) error {
	if pkey == "" {
		return constants.ErrPKeyRequired
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	client, err := CreateClient(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	partition, err := client.Partitions().Get(ctx, pkey)
	if err != nil {
		return fmt.Errorf("failed to get partition: %w", err)
	}

	var filter *ufm.Filter
	if !ufm.IsDefaultPKey(partition.PKey) {
		filter = ufm.FilterFromBindings(partition.GUIDs)
	}

	ports, err := client.Ports().List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list ports: %w", err)
	}

	if format != constants.FormatTable {
		return renderStructured(cmd.OutOrStdout(), format, PartitionView{Partition: partition, Ports: ports})
	}

	return renderPartitionView(cmd, partition, ports)
}

func renderPartitionView(cmd *cobra.Command, partition *ufm.Partition, ports []ufm.Port) error {
	err := renderTable(cmd.OutOrStdout(), []string{"Property", "Value"}, [][]string{
		{"Name", valueOrNA(partition.Name)},
		{"Pkey", ufm.BuildPKey(partition.PKey)},
		{"IPoIB", strconv.FormatBool(partition.IPoIB)},
		{"MTU", strconv.Itoa(partition.QoS.MTULimit)},
		{"Rate Limit", formatFloat(partition.QoS.RateLimit)},
		{"Service Level", strconv.Itoa(partition.QoS.ServiceLevel)},
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Ports:")

	if len(ports) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No ports found")

		return nil
	}

	rows := make([][]string, 0, len(ports))
	for _, port := range ports {
		rows = append(rows, []string{
			port.Name,
			port.GUID,
			port.SystemID,
			port.SystemName,
			port.DName,
			strconv.FormatInt(int64(port.LID), 10),
			port.LogicalState,
			port.PhysicalState,
		})
	}

	return renderTable(cmd.OutOrStdout(),
		[]string{"Name", "GUID", "SystemID", "SystemName", "DName", "LID", "LogState", "PhyState"}, rows)
}
