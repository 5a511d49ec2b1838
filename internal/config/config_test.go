package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Recommend.CacheTTLSeconds != 60 {
		t.Errorf("default cache ttl = %d, want 60", cfg.Recommend.CacheTTLSeconds)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RECOMMEND_CACHE_TTL", "5")
	t.Setenv("REPORT_CURRENCY", "Rs ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Recommend.CacheTTLSeconds != 5 {
		t.Errorf("cache ttl = %d, want 5", cfg.Recommend.CacheTTLSeconds)
	}
	if cfg.Report.Currency != "Rs " {
		t.Errorf("currency = %q, want %q", cfg.Report.Currency, "Rs ")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "negative ttl", mutate: func(c *Config) { c.Recommend.CacheTTLSeconds = -1 }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server:    ServerConfig{Port: "8080"},
				Recommend: RecommendConfig{CacheTTLSeconds: 60},
				LogLevel:  "info",
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
