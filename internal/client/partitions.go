package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	"github.com/fivetwenty-io/ufm/internal/http"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

const (
	pkeysPath       = "/ufmRest/resources/pkeys"
	removeGUIDsPath = "/ufmRest/actions/remove_guids_from_pkey"
)

// pkeyRequest is the body used to create a partition or add GUIDs to it.
type pkeyRequest struct {
	PKey         string             `json:"pkey"`
	IPoIB        bool               `json:"ip_over_ib"`
	Membership   ufm.PortMembership `json:"membership"`
	Index0       bool               `json:"index0"`
	GUIDs        []string           `json:"guids"`
	MTULimit     int                `json:"mtu_limit,omitempty"`
	ServiceLevel int                `json:"service_level,omitempty"`
	RateLimit    float64            `json:"rate_limit,omitempty"`
}

// removeGUIDsRequest is the body of the remove_guids_from_pkey action.
type removeGUIDsRequest struct {
	PKey  string   `json:"pkey"`
	GUIDs []string `json:"guids"`
}

// pkeyResource is a partition as returned by GET /resources/pkeys. The list
// endpoints omit qos_conf or guids depending on the query.
type pkeyResource struct {
	Partition string            `json:"partition"`
	IPoIB     bool              `json:"ip_over_ib"`
	QoS       *ufm.PartitionQoS `json:"qos_conf"`
	GUIDs     []ufm.PortBinding `json:"guids"`
}

// PartitionsClient implements ufm.PartitionsClient.
type PartitionsClient struct {
	httpClient *http.Client
	logger     ufm.Logger
}

// NewPartitionsClient creates a new partitions client.
func NewPartitionsClient(httpClient *http.Client, logger ufm.Logger) *PartitionsClient {
	return &PartitionsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Create implements ufm.PartitionsClient.Create.
func (c *PartitionsClient) Create(ctx context.Context, partition *ufm.Partition) error {
	if partition == nil {
		return ufm.NewInvalidConfigError("invalid partition", nil)
	}

	body, err := encodePKeyRequest(partition, partition.GUIDs, true)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Post(ctx, pkeysPath, body)
	if err != nil {
		return fmt.Errorf("creating partition: %w", translateError(err))
	}

	return nil
}

// Get implements ufm.PartitionsClient.Get.
func (c *PartitionsClient) Get(ctx context.Context, pkey string) (*ufm.Partition, error) {
	key, err := ufm.ParsePKey(pkey)
	if err != nil {
		return nil, err
	}

	canonical := ufm.BuildPKey(key)
	query := url.Values{
		"guids_data": []string{"true"},
		"qos_conf":   []string{"true"},
	}

	resp, err := c.httpClient.Get(ctx, pkeysPath+"/"+canonical, query)
	if err != nil {
		return nil, fmt.Errorf("getting partition: %w", translateError(err))
	}

	// UFM answers an unknown pkey with 200 and an empty object.
	var raw map[string]json.RawMessage

	err = json.Unmarshal(resp.Body, &raw)
	if err != nil {
		return nil, ufm.NewInvalidConfigError("invalid response", err)
	}

	if len(raw) == 0 {
		return nil, ufm.NewNotFoundError(canonical)
	}

	var resource pkeyResource

	err = json.Unmarshal(resp.Body, &resource)
	if err != nil {
		return nil, ufm.NewInvalidConfigError("invalid response", err)
	}

	return resource.toPartition(key), nil
}

// List implements ufm.PartitionsClient.List.
func (c *PartitionsClient) List(ctx context.Context) ([]ufm.Partition, error) {
	withQoS, err := c.listResources(ctx, "qos_conf")
	if err != nil {
		return nil, err
	}

	withGUIDs, err := c.listResources(ctx, "guids_data")
	if err != nil {
		return nil, err
	}

	partitions := make([]ufm.Partition, 0, len(withQoS))

	for text, resource := range withQoS {
		key, err := ufm.ParsePKey(text)
		if err != nil {
			return nil, err
		}

		resource.GUIDs = nil
		if guids, ok := withGUIDs[text]; ok {
			resource.GUIDs = guids.GUIDs
		}

		partitions = append(partitions, *resource.toPartition(key))
	}

	for text := range withGUIDs {
		if _, ok := withQoS[text]; !ok && c.logger != nil {
			c.logger.Debug("dropping partition without QoS configuration", map[string]interface{}{
				"pkey": text,
			})
		}
	}

	sort.Slice(partitions, func(i, j int) bool {
		return partitions[i].PKey < partitions[j].PKey
	})

	return partitions, nil
}

func (c *PartitionsClient) listResources(ctx context.Context, flag string) (map[string]pkeyResource, error) {
	resp, err := c.httpClient.Get(ctx, pkeysPath, url.Values{flag: []string{"true"}})
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", translateError(err))
	}

	var resources map[string]pkeyResource

	err = json.Unmarshal(resp.Body, &resources)
	if err != nil {
		return nil, ufm.NewInvalidConfigError("invalid response", err)
	}

	return resources, nil
}

// Delete implements ufm.PartitionsClient.Delete.
func (c *PartitionsClient) Delete(ctx context.Context, pkey string) error {
	key, err := ufm.ParsePKey(pkey)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, pkeysPath+"/"+ufm.BuildPKey(key))
	if err != nil {
		return fmt.Errorf("deleting partition: %w", translateError(err))
	}

	return nil
}

// BindPorts implements ufm.PartitionsClient.BindPorts.
func (c *PartitionsClient) BindPorts(ctx context.Context, partition *ufm.Partition, ports []ufm.PortBinding) error {
	if partition == nil {
		return ufm.NewInvalidConfigError("invalid partition", nil)
	}

	body, err := encodePKeyRequest(partition, ports, false)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Post(ctx, pkeysPath, body)
	if err != nil {
		return fmt.Errorf("binding ports: %w", translateError(err))
	}

	return nil
}

// UnbindPorts implements ufm.PartitionsClient.UnbindPorts.
func (c *PartitionsClient) UnbindPorts(ctx context.Context, pkey string, guids []string) error {
	key, err := ufm.ParsePKey(pkey)
	if err != nil {
		return err
	}

	if guids == nil {
		guids = []string{}
	}

	body, err := json.Marshal(removeGUIDsRequest{PKey: ufm.BuildPKey(key), GUIDs: guids})
	if err != nil {
		return ufm.NewInvalidConfigError("invalid partition", err)
	}

	_, err = c.httpClient.Post(ctx, removeGUIDsPath, body)
	if err != nil {
		return fmt.Errorf("unbinding ports: %w", translateError(err))
	}

	return nil
}

// encodePKeyRequest builds the pkeys POST body. Membership and index0 are
// taken from the last binding; with no bindings they default to full and
// true. QoS is only sent with a create. Negative pkeys have no valid text
// form and are rejected.
func encodePKeyRequest(partition *ufm.Partition, bindings []ufm.PortBinding, withQoS bool) ([]byte, error) {
	if partition.PKey < 0 {
		return nil, ufm.NewInvalidConfigError("invalid partition", nil)
	}

	request := pkeyRequest{
		PKey:       ufm.BuildPKey(partition.PKey),
		IPoIB:      partition.IPoIB,
		Membership: ufm.MembershipFull,
		Index0:     true,
		GUIDs:      make([]string, 0, len(bindings)),
	}

	for _, binding := range bindings {
		request.Membership = binding.Membership
		if request.Membership == "" {
			request.Membership = ufm.MembershipFull
		}

		request.Index0 = binding.Index0
		request.GUIDs = append(request.GUIDs, binding.GUID)
	}

	if withQoS {
		request.MTULimit = partition.QoS.MTULimit
		request.ServiceLevel = partition.QoS.ServiceLevel
		request.RateLimit = partition.QoS.RateLimit
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, ufm.NewInvalidConfigError("invalid partition", err)
	}

	return body, nil
}

func (r *pkeyResource) toPartition(key int32) *ufm.Partition {
	partition := &ufm.Partition{
		Name:  r.Partition,
		PKey:  key,
		IPoIB: r.IPoIB,
		GUIDs: r.GUIDs,
	}

	if r.QoS != nil {
		partition.QoS = *r.QoS
	}

	if partition.GUIDs == nil {
		partition.GUIDs = []ufm.PortBinding{}
	}

	return partition
}
