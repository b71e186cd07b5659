package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"commerce/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePubSubConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "nil config"},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "noop", cfg: &config.PubSubConfig{Provider: "noop"}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8085/events"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "shop"}, wantErr: "topicId"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: `unknown pubsub provider "kafka"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePubSubConfig(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	publisher, err := newPublisher(context.Background(), nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	publisher, err = newPublisher(context.Background(), &config.PubSubConfig{
		Provider:      "local",
		LocalEndpoint: "http://localhost:8085/events",
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
	assert.NoError(t, publisher.Close())

	_, err = newPublisher(context.Background(), &config.PubSubConfig{Provider: "kafka"}, logger)
	assert.Error(t, err)
}
