package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/provlabs/funding-trading-bridge/activity"
	testUtils "github.com/provlabs/funding-trading-bridge/test/utils"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type FeedTestSuite struct {
	suite.Suite
	rdb   *redis.Client
	clean func()
}

func (suite *FeedTestSuite) SetupTest() {
	conf, err := testUtils.SetupTestRedis()
	suite.Require().NoError(err)

	suite.rdb = redis.NewClient(&redis.Options{Addr: conf.Addr})
	suite.clean = conf.Clean
}

func (suite *FeedTestSuite) TearDownTest() {
	if suite.rdb != nil {
		suite.rdb.Close()
	}
	if suite.clean != nil {
		suite.clean()
	}

	suite.rdb = nil
	suite.clean = nil
}

func testExchangeRecord(requestID string, amount string) *activity.ExchangeRecord {
	return &activity.ExchangeRecord{
		RequestID:    requestID,
		Action:       "fund_trading",
		Sender:       "sender",
		InputDenom:   "depositcoin",
		InputAmount:  amount,
		OutputDenom:  "tradingcoin",
		OutputAmount: "10",
		Timestamp:    time.Now().UTC().Truncate(time.Second),
	}
}

func (suite *FeedTestSuite) TestAddAndGetExchanges() {
	feed := activity.NewFeed(suite.rdb)
	ctx := context.Background()

	suite.Require().NoError(feed.AddExchange(ctx, testExchangeRecord("req-1", "103")))
	suite.Require().NoError(feed.AddExchange(ctx, testExchangeRecord("req-2", "200")))
	suite.Require().NoError(feed.AddExchange(ctx, testExchangeRecord("req-3", "40")))

	records, err := feed.GetExchanges(ctx, 0, 10)
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)

	// Newest first.
	suite.Assert().Equal("req-3", records[0].RequestID)
	suite.Assert().Equal("req-2", records[1].RequestID)
	suite.Assert().Equal("req-1", records[2].RequestID)
	suite.Assert().Equal("103", records[2].InputAmount)
}

func (suite *FeedTestSuite) TestPublishExchange() {
	feed := activity.NewFeed(suite.rdb)
	ctx := context.Background()

	pubsub := suite.rdb.Subscribe(ctx, "pub/exchanges")
	defer pubsub.Close()

	// Wait for the subscription before publishing so the message cannot be
	// dropped.
	_, err := pubsub.Receive(ctx)
	suite.Require().NoError(err)

	record := testExchangeRecord("req-1", "103")
	suite.Require().NoError(feed.PublishExchange(ctx, record))

	select {
	case msg := <-pubsub.Channel():
		suite.Assert().Contains(msg.Payload, `"request_id":"req-1"`)
	case <-time.After(10 * time.Second):
		suite.FailNow("timed out waiting for published exchange")
	}
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedTestSuite))
}
