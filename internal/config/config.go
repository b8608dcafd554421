// Package config loads the agent's immutable startup configuration from the
// environment. Any failure here is fatal: the agent cannot run without a
// token, an allow-list, and a target address.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/jdelaire/openwake/internal/keychain"
)

const tokenAccount = "bot-token"

// Config is fixed for the process lifetime.
type Config struct {
	BotToken        string
	AuthorizedChats []int64
	TargetMAC       net.HardwareAddr
	BaseURL         string
}

// Load reads configuration from the environment. The bot token comes from
// OPENWAKE_BOT_TOKEN, falling back to the system keychain.
func Load() (*Config, error) {
	token := os.Getenv("OPENWAKE_BOT_TOKEN")
	if token == "" {
		var err error
		token, err = keychain.Get(tokenAccount)
		if err != nil {
			return nil, fmt.Errorf("bot token: OPENWAKE_BOT_TOKEN unset and keychain lookup failed: %w", err)
		}
	}

	chats, err := parseChatIDs(os.Getenv("OPENWAKE_CHAT_IDS"))
	if err != nil {
		return nil, err
	}

	mac, err := net.ParseMAC(os.Getenv("OPENWAKE_TARGET_MAC"))
	if err != nil {
		return nil, fmt.Errorf("OPENWAKE_TARGET_MAC: %w", err)
	}
	if len(mac) != 6 {
		return nil, fmt.Errorf("OPENWAKE_TARGET_MAC: want a 6-byte address, got %d bytes", len(mac))
	}

	return &Config{
		BotToken:        token,
		AuthorizedChats: chats,
		TargetMAC:       mac,
		BaseURL:         os.Getenv("OPENWAKE_API_URL"),
	}, nil
}

// StoreToken saves the bot token in the system keychain, where later Load
// calls find it when OPENWAKE_BOT_TOKEN is unset.
func StoreToken(token string) error {
	if token == "" {
		return fmt.Errorf("bot token must not be empty")
	}
	return keychain.Set(tokenAccount, token)
}

func parseChatIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("OPENWAKE_CHAT_IDS: at least one authorized chat ID is required")
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("OPENWAKE_CHAT_IDS: invalid chat ID %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("OPENWAKE_CHAT_IDS: at least one authorized chat ID is required")
	}
	return ids, nil
}
