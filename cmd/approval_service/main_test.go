package main

import (
	"context"
	"testing"
	"time"

	"applicant_review_system/configs"
	"applicant_review_system/internal/announce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildAnnouncers_NoneConfigured(t *testing.T) {
	announcers := buildAnnouncers(configs.ApprovalServiceConfig{}, zap.NewNop().Sugar())

	assert.Empty(t, announcers)
}

func TestBuildAnnouncers_TelegramAndDiscord(t *testing.T) {
	config := configs.ApprovalServiceConfig{
		Services: configs.Services{OutboundTimeout: time.Second},
		Telegram: configs.Telegram{Token: "token", AdminChatID: 42},
		Discord:  configs.Discord{Token: "token", ChannelID: "123"},
	}

	announcers := buildAnnouncers(config, zap.NewNop().Sugar())

	require.Len(t, announcers, 2)
	assert.IsType(t, &announce.TelegramAnnouncer{}, announcers[0])
	assert.IsType(t, &announce.DiscordAnnouncer{}, announcers[1])
}

func TestNewStores_Memory(t *testing.T) {
	config := configs.ApprovalServiceConfig{Store: configs.Store{Driver: configs.StoreDriverMemory}}

	store, err := newStores(context.Background(), config, zap.NewNop().Sugar())

	require.NoError(t, err)
	assert.NotNil(t, store.applicants)
	assert.NotNil(t, store.commands)
	assert.Nil(t, store.database)
}

func TestNewStores_UnknownDriver(t *testing.T) {
	config := configs.ApprovalServiceConfig{Store: configs.Store{Driver: "sqlite"}}

	_, err := newStores(context.Background(), config, zap.NewNop().Sugar())

	assert.ErrorContains(t, err, "unknown store driver")
}
