package pubsub

import (
	"context"
	"testing"

	"authcore/config"
	"authcore/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger(),
	}
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("no provider drops events", func(t *testing.T) {
		publisher, err := NewEventPublisher(newPublisherParams(t, nil))

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
	})

	t.Run("local provider", func(t *testing.T) {
		publisher, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}))

		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("local provider without endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
			Provider: constants.PubSubProviderLocal,
		}))

		assert.ErrorContains(t, err, "localEndpoint")
	})

	t.Run("google provider without topic", func(t *testing.T) {
		_, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
			Provider:  constants.PubSubProviderGoogle,
			ProjectID: "demo",
		}))

		assert.ErrorContains(t, err, "topicId")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{Provider: "kafka"}))

		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}
