package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ufm/internal/constants"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

type createOptions struct {
	pkey         string
	mtu          int
	ipoib        bool
	index0       bool
	membership   string
	serviceLevel int
	rateLimit    float64
	guids        []string
}

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a partition",
		Long:  "Create a partition and bind the given port GUIDs to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.pkey, "pkey", "", "pkey of the new partition (required)")
	cmd.Flags().IntVar(&opts.mtu, "mtu", constants.DefaultMTU, "MTU limit of the partition (2048 or 4096)")
	cmd.Flags().BoolVar(&opts.ipoib, "ipoib", true, "enable IP over InfiniBand")
	cmd.Flags().BoolVar(&opts.index0, "index0", true, "store the pkey at index 0 of each port's pkey table")
	cmd.Flags().StringVarP(&opts.membership, "membership", "m", string(ufm.MembershipFull), "port membership (full or limited)")
	cmd.Flags().IntVarP(&opts.serviceLevel, "service-level", "s", constants.DefaultServiceLevel, "service level (0-15)")
	cmd.Flags().Float64VarP(&opts.rateLimit, "rate-limit", "r", constants.DefaultRateLimit, "rate limit in Gb/s")
	cmd.Flags().StringSliceVarP(&opts.guids, "guids", "g", nil, "port GUIDs to bind")

	return cmd
}

func runCreate(cmd *cobra.Command, opts *createOptions) error {
	if opts.pkey == "" {
		return constants.ErrPKeyRequired
	}

	pkey, err := ufm.ParsePKey(opts.pkey)
	if err != nil {
		return err
	}

	membership, err := ufm.ParseMembership(opts.membership)
	if err != nil {
		return err
	}

	partition := &ufm.Partition{
		PKey:  pkey,
		IPoIB: opts.ipoib,
		QoS: ufm.PartitionQoS{
			MTULimit:     opts.mtu,
			ServiceLevel: opts.serviceLevel,
			RateLimit:    opts.rateLimit,
		},
		GUIDs: bindings(opts.guids, opts.index0, membership),
	}

	client, err := CreateClient(cmd)
	if err != nil {
		return err
	}

	err = client.Partitions().Create(commandContext(cmd), partition)
	if err != nil {
		return fmt.Errorf("failed to create partition: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Partition %s created\n", ufm.BuildPKey(pkey))

	return nil
}

func bindings(guids []string, index0 bool, membership ufm.PortMembership) []ufm.PortBinding {
	result := make([]ufm.PortBinding, 0, len(guids))
	for _, guid := range guids {
		result = append(result, ufm.PortBinding{
			GUID:       guid,
			Index0:     index0,
			Membership: membership,
		})
	}

	return result
}
