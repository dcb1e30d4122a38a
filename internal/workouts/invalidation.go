package workouts

import (
	"context"
	"strconv"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// ChangesChannel is where writers publish the id of a user whose workouts changed.
const ChangesChannel = "liftstats:workouts:changed"

// SubscribeToChanges drops cached trees when writers announce a change.
// Blocks until ctx is done.
func (c *CachedRepo) SubscribeToChanges(ctx context.Context, rdb *redis.Client) {
	pubsub := rdb.Subscribe(ctx, ChangesChannel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			log.Warnf("close workouts changes subscription: %s", err)
		}
	}()

	log.Debugf("subscribed to [%s]", ChangesChannel)
	c.consumeChanges(ctx, pubsub.Channel())
}

func (c *CachedRepo) consumeChanges(ctx context.Context, messages <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			userID, err := strconv.ParseInt(msg.Payload, 10, 64)
			if err != nil {
				log.Warnf("workouts changed: invalid user id [%s]", msg.Payload)
				continue
			}
			if c.Invalidate(userID) {
				log.Tracef("workouts cache of user %d invalidated", userID)
			}
		}
	}
}

// PublishChange announces that the workouts of the user changed.
func PublishChange(ctx context.Context, rdb *redis.Client, userID int64) error {
	return rdb.Publish(ctx, ChangesChannel, strconv.FormatInt(userID, 10)).Err()
}
