package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
)

func SetupTestRedis() (*TestDockerRedisConfig, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, err
	}

	err = pool.Client.Ping()
	if err != nil {
		return nil, err
	}

	networkName := fmt.Sprintf("test-network-%s", randResourceNameSuffix(10))
	network, err := pool.CreateNetwork(networkName)

	if err != nil {
		return nil, err
	}

	resourceName := fmt.Sprintf("redis-%s", randResourceNameSuffix(10))

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       resourceName,
		Repository: "redis",
		Tag:        "7-alpine",
		Networks:   []*dockertest.Network{network},
	})
	if err != nil {
		return nil, err
	}

	addr := fmt.Sprintf("%s:%s", resource.GetBoundIP("6379/tcp"), resource.GetPort("6379/tcp"))

	if err := pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		return client.Ping(context.Background()).Err()
	}); err != nil {
		return nil, err
	}

	clean := func() {
		if err := pool.RemoveNetwork(network); err != nil {
			log.Fatalf("Could not remove network: %s", err)
		}

		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}

	conf := TestDockerRedisConfig{
		DockerResourceName: resourceName,
		DockerNetwork:      networkName,
		Addr:               addr,
		Clean:              clean,
	}

	return &conf, nil
}

type TestDockerRedisConfig struct {
	DockerResourceName string
	DockerNetwork      string
	Addr               string
	Clean              func()
}
