package config_test

import (
	"strings"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/jdelaire/openwake/internal/config"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENWAKE_BOT_TOKEN", "123:abc")
	t.Setenv("OPENWAKE_CHAT_IDS", "42, -100200")
	t.Setenv("OPENWAKE_TARGET_MAC", "00:11:22:33:44:55")
	t.Setenv("OPENWAKE_API_URL", "")
}

func TestLoad(t *testing.T) {
	setValidEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.BotToken != "123:abc" {
		t.Errorf("token = %q, want 123:abc", cfg.BotToken)
	}
	if len(cfg.AuthorizedChats) != 2 || cfg.AuthorizedChats[0] != 42 || cfg.AuthorizedChats[1] != -100200 {
		t.Errorf("chats = %v, want [42 -100200]", cfg.AuthorizedChats)
	}
	if cfg.TargetMAC.String() != "00:11:22:33:44:55" {
		t.Errorf("mac = %s, want 00:11:22:33:44:55", cfg.TargetMAC)
	}
}

func TestStoreTokenKeychainFallback(t *testing.T) {
	keyring.MockInit()

	if err := config.StoreToken("456:def"); err != nil {
		t.Fatalf("store token: %v", err)
	}

	setValidEnv(t)
	t.Setenv("OPENWAKE_BOT_TOKEN", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BotToken != "456:def" {
		t.Errorf("token = %q, want the keychain value 456:def", cfg.BotToken)
	}
}

func TestStoreTokenRejectsEmpty(t *testing.T) {
	keyring.MockInit()

	if err := config.StoreToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestLoadRejectsBadMAC(t *testing.T) {
	setValidEnv(t)
	t.Setenv("OPENWAKE_TARGET_MAC", "not-a-mac")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for malformed MAC")
	}
}

func TestLoadRejectsLongMAC(t *testing.T) {
	setValidEnv(t)
	// EUI-64 parses but is not a wake target.
	t.Setenv("OPENWAKE_TARGET_MAC", "00:11:22:33:44:55:66:77")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for an 8-byte address")
	}
}

func TestLoadRejectsEmptyChatList(t *testing.T) {
	setValidEnv(t)
	t.Setenv("OPENWAKE_CHAT_IDS", " , ")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for empty chat list")
	}
	if !strings.Contains(err.Error(), "OPENWAKE_CHAT_IDS") {
		t.Errorf("error = %q, want mention of OPENWAKE_CHAT_IDS", err)
	}
}

func TestLoadRejectsBadChatID(t *testing.T) {
	setValidEnv(t)
	t.Setenv("OPENWAKE_CHAT_IDS", "42,abc")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-numeric chat ID")
	}
}
