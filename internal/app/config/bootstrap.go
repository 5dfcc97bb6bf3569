package config

import (
	"context"
	"log"
)

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.PollerStop != nil {
		b.PollerStop()
		log.Println("Successfully stopped dashboard poller")
	}

	if b.EvictionStop != nil {
		b.EvictionStop()
		log.Println("Successfully stopped dashboard eviction")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	// Sync on stdout/stderr returns EINVAL on some platforms; the error is not actionable.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
