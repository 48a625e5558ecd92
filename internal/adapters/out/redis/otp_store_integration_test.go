package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	redisadapter "campusdelivery/internal/adapters/out/redis"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type OTPStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
	store     *redisadapter.OTPStore
}

func (suite *OTPStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	suite.Require().NoError(err)

	client, err := redisadapter.NewClient(ctx, fmt.Sprintf("%s:%s", host, port.Port()), "", 0)
	suite.Require().NoError(err)
	suite.client = client
	suite.store = redisadapter.NewOTPStore(client)
}

func (suite *OTPStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *OTPStoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OTPStoreIntegrationTestSuite) TestVerify_IsSingleUse() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Put(ctx, "+15550100", "123456", time.Minute))

	ok, err := suite.store.Verify(ctx, "+15550100", "123456")
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.store.Verify(ctx, "+15550100", "123456")
	suite.Require().NoError(err)
	suite.False(ok, "code is consumed by the first verify")
}

func (suite *OTPStoreIntegrationTestSuite) TestVerify_WrongCodeKeepsStoredCode() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Put(ctx, "+15550101", "111111", time.Minute))

	ok, err := suite.store.Verify(ctx, "+15550101", "222222")
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = suite.store.Verify(ctx, "+15550101", "111111")
	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *OTPStoreIntegrationTestSuite) TestPut_ReplacesAndExpires() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Put(ctx, "+15550102", "111111", time.Minute))
	suite.Require().NoError(suite.store.Put(ctx, "+15550102", "333333", time.Second))

	ttl, err := suite.client.TTL(ctx, "otp:customer:+15550102").Result()
	suite.Require().NoError(err)
	suite.LessOrEqual(ttl, time.Second)

	ok, err := suite.store.Verify(ctx, "+15550102", "111111")
	suite.Require().NoError(err)
	suite.False(ok, "older code was replaced")

	time.Sleep(1500 * time.Millisecond)
	ok, err = suite.store.Verify(ctx, "+15550102", "333333")
	suite.Require().NoError(err)
	suite.False(ok, "code expired")
}

func (suite *OTPStoreIntegrationTestSuite) TestPut_RejectsNonPositiveTTL() {
	suite.Require().Error(suite.store.Put(context.Background(), "+15550103", "1", 0))
}

func TestOTPStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OTPStoreIntegrationTestSuite))
}
