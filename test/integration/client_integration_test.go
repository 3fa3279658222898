//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/fivetwenty-io/ufm/pkg/ufm"
	"github.com/fivetwenty-io/ufm/pkg/ufmclient"
)

// ClientIntegrationTestSuite exercises the library against a live UFM
type ClientIntegrationTestSuite struct {
	suite.Suite

	config   *TestConfig
	client   ufm.Client
	registry *prometheus.Registry
	pkey     string
}

// SetupSuite connects to the UFM named by UFM_ADDRESS
func (suite *ClientIntegrationTestSuite) SetupSuite() {
	suite.config = LoadTestConfig()
	if suite.config.Address == "" {
		suite.T().Skip("UFM_ADDRESS environment variable not set, skipping integration tests")
	}

	suite.registry = prometheus.NewRegistry()

	collector, err := ufm.NewMetricsCollector(suite.registry)
	suite.Require().NoError(err)

	chain := ufm.NewInterceptorChain()
	collector.Register(chain)

	suite.client, err = ufmclient.New(context.Background(), &ufm.Config{
		Address:       suite.config.Address,
		Username:      suite.config.Username,
		Password:      suite.config.Password,
		Token:         suite.config.Token,
		SkipTLSVerify: true,
		RetryMax:      2,
		Interceptors:  chain,
	})
	suite.Require().NoError(err)

	suite.pkey = GenerateTestPKey()
}

// TearDownSuite removes the scratch partition
func (suite *ClientIntegrationTestSuite) TearDownSuite() {
	if suite.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := suite.client.Partitions().Delete(ctx, suite.pkey)
	if err != nil && !ufm.IsNotFound(err) {
		suite.T().Logf("Cleanup warning for partition %s: %v", suite.pkey, err)
	}
}

func (suite *ClientIntegrationTestSuite) TestVersion() {
	version, err := suite.client.Version(context.Background())
	suite.Require().NoError(err)
	suite.NotEmpty(version)
}

func (suite *ClientIntegrationTestSuite) TestListIsSorted() {
	partitions, err := suite.client.Partitions().List(context.Background())
	suite.Require().NoError(err)

	for i := 1; i < len(partitions); i++ {
		suite.Less(partitions[i-1].PKey, partitions[i].PKey)
	}

	for _, partition := range partitions {
		suite.NotNil(partition.GUIDs)
	}
}

func (suite *ClientIntegrationTestSuite) TestGetMissingPartition() {
	_, err := suite.client.Partitions().Get(context.Background(), "0x7ffe")
	if err == nil {
		suite.T().Skip("partition 0x7ffe exists on this fabric")
	}

	suite.True(ufm.IsNotFound(err), "expected not found, got %v", err)
}

func (suite *ClientIntegrationTestSuite) TestInvalidPKeyIsLocal() {
	before, err := testutil.GatherAndCount(suite.registry, "ufm_client_requests_total")
	suite.Require().NoError(err)

	_, err = suite.client.Partitions().Get(context.Background(), "0x100000000")
	suite.True(ufm.IsInvalidPKey(err))

	after, err := testutil.GatherAndCount(suite.registry, "ufm_client_requests_total")
	suite.Require().NoError(err)
	suite.Equal(before, after)
}

func (suite *ClientIntegrationTestSuite) TestPortsFilter() {
	ctx := context.Background()

	all, err := suite.client.Ports().List(ctx, nil)
	suite.Require().NoError(err)

	if len(all) == 0 {
		suite.T().Skip("no computer ports reported")
	}

	filtered, err := suite.client.Ports().List(ctx, ufm.NewFilter(all[0].GUID))
	suite.Require().NoError(err)
	suite.NotEmpty(filtered)

	for _, port := range filtered {
		suite.Equal(all[0].GUID, port.GUID)
	}
}

func (suite *ClientIntegrationTestSuite) TestPartitionLifecycle() {
	if len(suite.config.GUIDs) == 0 {
		suite.T().Skip("UFM_TEST_GUIDS not set, skipping partition lifecycle")
	}

	ctx := context.Background()
	partitions := suite.client.Partitions()

	key, err := ufm.ParsePKey(suite.pkey)
	suite.Require().NoError(err)

	err = partitions.Create(ctx, &ufm.Partition{
		PKey:  key,
		IPoIB: true,
		QoS:   ufm.PartitionQoS{MTULimit: 2048, RateLimit: 100},
		GUIDs: []ufm.PortBinding{{GUID: suite.config.GUIDs[0], Index0: true, Membership: ufm.MembershipFull}},
	})
	suite.Require().NoError(err)

	partition, err := partitions.Get(ctx, suite.pkey)
	suite.Require().NoError(err)
	suite.Equal(key, partition.PKey)
	suite.True(partition.IPoIB)
	suite.Len(partition.GUIDs, 1)

	suite.Require().NoError(partitions.UnbindPorts(ctx, suite.pkey, suite.config.GUIDs[:1]))
	suite.Require().NoError(partitions.Delete(ctx, suite.pkey))

	_, err = partitions.Get(ctx, suite.pkey)
	suite.True(ufm.IsNotFound(err))
}

func TestClientIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ClientIntegrationTestSuite))
}
