package jikan

import (
	"strings"

	"github.com/nats-io/nats.go"
)

// InvalidateAll is the message body that flushes the whole cache.
const InvalidateAll = "ALL"

// Invalidate removes key, or every entry when key is empty or ALL.
// key is the full stored key, "<keyspace>:<request key>".
func (c *Cache) Invalidate(key string) {
	key = strings.TrimSpace(key)
	if key == "" || strings.EqualFold(key, InvalidateAll) {
		c.Purge()
		return
	}
	c.Delete(key)
}

// SubscribeInvalidation drops cache entries named by messages on subj, so
// every replica sharing a NATS subject can be flushed together.
func (c *Cache) SubscribeInvalidation(nc *nats.Conn, subj string) (*nats.Subscription, error) {
	return nc.Subscribe(subj, func(m *nats.Msg) {
		c.Invalidate(string(m.Data))
	})
}

// PublishInvalidation asks every subscribed cache to drop key.
func PublishInvalidation(nc *nats.Conn, subj, key string) error {
	if strings.TrimSpace(key) == "" {
		key = InvalidateAll
	}
	return nc.Publish(subj, []byte(key))
}
