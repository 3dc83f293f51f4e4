// Package activity keeps a short redis-backed feed of recent exchanges and
// publishes each one for live subscribers. The durable record lives in
// Postgres; this feed only serves the dashboard surface.
package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	exchangesChannel     = "pub/exchanges"
	maxExchangesFeedSize = 50
	exchangesKey         = "bridge/recent_exchanges"
)

// ExchangeRecord is one completed fund or withdraw operation as shown on the
// activity feed.
type ExchangeRecord struct {
	RequestID       string    `json:"request_id"`
	Action          string    `json:"action"`
	Sender          string    `json:"sender"`
	InputDenom      string    `json:"input_denom"`
	InputAmount     string    `json:"input_amount"`
	OutputDenom     string    `json:"output_denom"`
	OutputAmount    string    `json:"output_amount"`
	RemainderAmount string    `json:"remainder_amount,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

type ExchangesFeed interface {
	AddExchange(ctx context.Context, record *ExchangeRecord) error
	GetExchanges(ctx context.Context, start, stop int64) ([]*ExchangeRecord, error)
	PublishExchange(ctx context.Context, record *ExchangeRecord) error
}

type Feed struct {
	rdb *redis.Client
}

func NewFeed(rdb *redis.Client) *Feed {
	return &Feed{
		rdb: rdb,
	}
}

func (s *Feed) AddExchange(ctx context.Context, record *ExchangeRecord) error {
	res, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := s.rdb.LPush(ctx, exchangesKey, string(res)).Err(); err != nil {
		return err
	}

	if err := s.rdb.LTrim(ctx, exchangesKey, 0, maxExchangesFeedSize).Err(); err != nil {
		return err
	}

	return nil
}

func (s *Feed) GetExchanges(ctx context.Context, start, stop int64) ([]*ExchangeRecord, error) {
	if stop > maxExchangesFeedSize {
		stop = maxExchangesFeedSize
	}
	res, err := s.rdb.LRange(ctx, exchangesKey, start, stop).Result()
	if err != nil {
		return nil, err
	}

	var records []*ExchangeRecord
	for _, r := range res {
		var record ExchangeRecord
		if err := json.Unmarshal([]byte(r), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

func (s *Feed) PublishExchange(ctx context.Context, record *ExchangeRecord) error {
	res, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return s.rdb.Publish(ctx, exchangesChannel, res).Err()
}
