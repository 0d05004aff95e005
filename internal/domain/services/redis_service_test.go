package services

import (
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestRedisServiceReusesProvidedClient(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	svc := NewRedisService(client)

	// The health-checked connection is the one all cache calls go through
	assert.Same(t, client, svc.Client)
}
