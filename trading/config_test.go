package trading

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	raw := `
[log]
level = 0
format = "text"
add_source = true

[db]
host = "localhost"
port = 5432
user = "postgres"
password = "secret"
database = "trading"
pool_size = 10

[messaging]
base_url = "https://api-app.sendbird.com"
app_id = "app-1"
api_token = "token"
timeout_seconds = 15

[spaces]
key = "key"
secret = "secret"
region = "nyc3"
bucket = "cards"
cardroot = "cards"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 {
		t.Errorf("db config = %s:%d, want localhost:5432", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.Messaging.TimeoutSeconds != 15 {
		t.Errorf("messaging timeout = %d, want 15", cfg.Messaging.TimeoutSeconds)
	}
	if cfg.Spaces.Bucket != "cards" {
		t.Errorf("spaces bucket = %q, want cards", cfg.Spaces.Bucket)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("LoadConfig() expected error for missing file")
	}
}
