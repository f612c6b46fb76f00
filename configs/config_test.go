package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("NOTIFIER_URL", "http://notifier.local/notify")
	t.Setenv("STUDENT_INITIALIZER_URL", "http://students.local/init")
	t.Setenv("STORE_DRIVER", "memory")
}

func TestLoadApprovalServiceConfig_Defaults(t *testing.T) {
	setRequired(t)

	config, err := LoadApprovalServiceConfig()
	require.NoError(t, err)

	assert.True(t, config.App.IsDevEnvironment())
	assert.Equal(t, 8080, config.HTTP.Port)
	assert.Equal(t, "migrations", config.DB.MigrationsDir)
	assert.Equal(t, 15*time.Second, config.Services.OutboundTimeout)
	assert.Equal(t, 3, config.Tally.FallbackAdminCount)
	assert.False(t, config.Tally.VerdictOnce)
	assert.Equal(t, 3, config.Tally.MaxWriteRetries)
	assert.Equal(t, 30*time.Second, config.Relay.Interval)
	assert.Equal(t, 50, config.Relay.BatchSize)
	assert.Equal(t, 5, config.Relay.MaxAttempts)
	assert.False(t, config.Telegram.Enabled())
	assert.False(t, config.Discord.Enabled())
}

func TestLoadApprovalServiceConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TALLY_VERDICT_ONCE", "true")
	t.Setenv("TALLY_FALLBACK_ADMIN_COUNT", "7")
	t.Setenv("RELAY_INTERVAL", "1m")
	t.Setenv("TELEGRAM_REVIEW_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "-100123")

	config, err := LoadApprovalServiceConfig()
	require.NoError(t, err)

	assert.True(t, config.Tally.VerdictOnce)
	assert.Equal(t, 7, config.Tally.FallbackAdminCount)
	assert.Equal(t, time.Minute, config.Relay.Interval)
	assert.True(t, config.Telegram.Enabled())
	assert.Equal(t, int64(-100123), config.Telegram.AdminChatID)
}

func TestLoadApprovalServiceConfig_MissingNotifier(t *testing.T) {
	t.Setenv("STUDENT_INITIALIZER_URL", "http://students.local/init")
	t.Setenv("NOTIFIER_URL", "")

	_, err := LoadApprovalServiceConfig()
	assert.Error(t, err)
}

func TestLoadApprovalServiceConfig_PostgresNeedsURL(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_URL", "")

	_, err := LoadApprovalServiceConfig()
	assert.ErrorContains(t, err, "DB_URL")
}

func TestLoadApprovalServiceConfig_UnknownDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := LoadApprovalServiceConfig()
	assert.ErrorContains(t, err, "unknown store driver")
}
