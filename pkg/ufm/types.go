package ufm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PortMembership is the membership type of a port in a partition.
type PortMembership string

// Membership types.
const (
	// MembershipFull members can communicate with all hosts in the partition.
	MembershipFull PortMembership = "full"
	// MembershipLimited members cannot communicate with other limited members.
	MembershipLimited PortMembership = "limited"
)

// ParseMembership parses a membership name, case-insensitively.
func ParseMembership(s string) (PortMembership, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(MembershipFull):
		return MembershipFull, nil
	case string(MembershipLimited):
		return MembershipLimited, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMembership, s)
	}
}

// UnmarshalJSON accepts any casing of "full" and "limited". A null leaves m
// unchanged.
func (m *PortMembership) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string

	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("decoding membership: %w", err)
	}

	parsed, err := ParseMembership(s)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// PartitionQoS is the quality-of-service configuration of a partition.
type PartitionQoS struct {
	// MTULimit is 2048 or 4096.
	MTULimit int `json:"mtu_limit"     yaml:"mtu_limit"`
	// ServiceLevel ranges from 0 to 15.
	ServiceLevel int `json:"service_level" yaml:"service_level"`
	// RateLimit is one of the fabric link speeds (2.5, 5, 10, 14, 20, 25, 30,
	// 40, 56, 60, 80, 100, 112, 120, 168, 200 or 300). The server validates it.
	RateLimit float64 `json:"rate_limit"    yaml:"rate_limit"`
}

// PortBinding binds a port GUID to a partition.
type PortBinding struct {
	GUID string `json:"guid"       yaml:"guid"`
	// Index0 stores the pkey at index 0 of the GUID's pkey table.
	Index0     bool           `json:"index0"     yaml:"index0"`
	Membership PortMembership `json:"membership" yaml:"membership"`
}

// Partition is an InfiniBand partition.
type Partition struct {
	// Name is assigned by the server and empty on creation.
	Name  string        `json:"name"  yaml:"name"`
	PKey  int32         `json:"pkey"  yaml:"pkey"`
	IPoIB bool          `json:"ipoib" yaml:"ipoib"`
	QoS   PartitionQoS  `json:"qos"   yaml:"qos"`
	GUIDs []PortBinding `json:"guids" yaml:"guids"`
}

// Port is a read-only snapshot of a fabric port as reported by UFM.
type Port struct {
	GUID          string `json:"guid"           yaml:"guid"`
	Name          string `json:"name"           yaml:"name"`
	SystemID      string `json:"systemID"       yaml:"system_id"`
	LID           int32  `json:"lid"            yaml:"lid"`
	DName         string `json:"dname"          yaml:"dname"`
	SystemName    string `json:"system_name"    yaml:"system_name"`
	PhysicalState string `json:"physical_state" yaml:"physical_state"`
	LogicalState  string `json:"logical_state"  yaml:"logical_state"`
}
