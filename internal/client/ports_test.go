package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

func portsFixture() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"guid":           "0c42a10300b8e4a0",
			"name":           "0c42a10300b8e4a0_1",
			"systemID":       "0c42a10300b8e4a0",
			"lid":            12,
			"dname":          "HCA-1/1",
			"system_name":    "node-01",
			"physical_state": "Link Up",
			"logical_state":  "Active",
		},
		{
			"guid":           "0c42a10300b8e4b0",
			"name":           "0c42a10300b8e4b0_1",
			"systemID":       "0c42a10300b8e4b0",
			"lid":            13,
			"dname":          "HCA-1/1",
			"system_name":    "node-02",
			"physical_state": "Link Up",
			"logical_state":  "Active",
		},
	}
}

func TestPortsClient_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filter   *ufm.Filter
		expected []string
	}{
		{name: "nil filter keeps all", filter: nil, expected: []string{"0c42a10300b8e4a0", "0c42a10300b8e4b0"}},
		{name: "absent GUIDs keep all", filter: &ufm.Filter{}, expected: []string{"0c42a10300b8e4a0", "0c42a10300b8e4b0"}},
		{name: "GUID filter", filter: ufm.NewFilter("0c42a10300b8e4b0"), expected: []string{"0c42a10300b8e4b0"}},
		{name: "empty GUID list keeps none", filter: ufm.NewFilter(), expected: []string{}},
		{
			name:     "filter from bindings",
			filter:   ufm.FilterFromBindings([]ufm.PortBinding{{GUID: "0c42a10300b8e4a0"}}),
			expected: []string{"0c42a10300b8e4a0"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "GET", r.Method)
				assert.Equal(t, "/ufmRest/resources/ports", r.URL.Path)
				assert.Equal(t, "Computer", r.URL.Query().Get("sys_type"))
				writeJSON(t, w, portsFixture())
			})

			ports, err := NewTestClient(server.URL).Ports().List(context.Background(), testCase.filter)
			require.NoError(t, err)

			guids := make([]string, 0, len(ports))
			for _, port := range ports {
				guids = append(guids, port.GUID)
			}

			assert.Equal(t, testCase.expected, guids)
		})
	}
}

func TestPortsClient_List_DecodesFields(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, portsFixture()[:1])
	})

	ports, err := NewTestClient(server.URL).Ports().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, ports, 1)

	assert.Equal(t, ufm.Port{
		GUID:          "0c42a10300b8e4a0",
		Name:          "0c42a10300b8e4a0_1",
		SystemID:      "0c42a10300b8e4a0",
		LID:           12,
		DName:         "HCA-1/1",
		SystemName:    "node-01",
		PhysicalState: "Link Up",
		LogicalState:  "Active",
	}, ports[0])
}

func TestPortsClient_List_Errors(t *testing.T) {
	t.Parallel()

	t.Run("server failure", func(t *testing.T) {
		t.Parallel()

		server := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := NewTestClient(server.URL).Ports().List(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, ufm.ErrorKindUnknown, ufm.KindOf(err))
	})

	t.Run("malformed response", func(t *testing.T) {
		t.Parallel()

		server := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]string{"not": "a list"})
		})

		_, err := NewTestClient(server.URL).Ports().List(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, ufm.IsInvalidConfig(err))
	})
}
