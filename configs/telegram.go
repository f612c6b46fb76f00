package configs

type Telegram struct {
	Token       string `env:"TELEGRAM_REVIEW_BOT_TOKEN"`
	AdminChatID int64  `env:"TELEGRAM_ADMIN_CHAT_ID"`
}

func (c Telegram) Enabled() bool {
	return c.Token != "" && c.AdminChatID != 0
}
