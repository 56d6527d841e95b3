package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Server.AuthKey = "secret"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file:test.db"
	cfg.Cache.Backend = "redis"
	cfg.Cache.Addr = "localhost:6379"
	cfg.Recommend.DailyLimit = 50
	cfg.Recommend.CallTimeout = 2 * time.Second
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid config", modify: func(*Config) {}},
		{name: "badger without addr", modify: func(cfg *Config) { cfg.Cache.Backend = "badger"; cfg.Cache.Addr = "" }},
		{name: "missing server listen", modify: func(cfg *Config) { cfg.Server.Listen = "" }, wantErr: true,
			errMsg: "server.listen is required"},
		{name: "missing server timeout", modify: func(cfg *Config) { cfg.Server.Timeout = 0 }, wantErr: true,
			errMsg: "server.timeout is required"},
		{name: "redis without addr", modify: func(cfg *Config) { cfg.Cache.Addr = "" }, wantErr: true,
			errMsg: "cache.addr is required when cache.backend is redis"},
		{name: "zero daily limit", modify: func(cfg *Config) { cfg.Recommend.DailyLimit = 0 }, wantErr: true,
			errMsg: "recommend.daily_limit must be positive"},
		{name: "zero call timeout", modify: func(cfg *Config) { cfg.Recommend.CallTimeout = 0 }, wantErr: true,
			errMsg: "recommend.call_timeout is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEmbeddedSchema_DescribesAllSections(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))

	defs, ok := schema["$defs"].(map[string]interface{})
	require.True(t, ok)
	for _, name := range []string{"Config", "CacheConfig", "RecommendConfig", "BreakerConfig", "LLMConfig"} {
		assert.Contains(t, defs, name)
	}

	props := defs["Config"].(map[string]interface{})["properties"].(map[string]interface{})
	for _, section := range []string{"server", "database", "cache", "recommend", "llm"} {
		assert.Contains(t, props, section)
	}
}

func TestCheckSections(t *testing.T) {
	schema := map[string]interface{}{
		"$defs": map[string]interface{}{
			"Config": map[string]interface{}{
				"properties": map[string]interface{}{"server": map[string]interface{}{}},
			},
		},
	}

	require.NoError(t, checkSections(schema, map[string]interface{}{"server": 1}))

	err := checkSections(schema, map[string]interface{}{"unknown": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `section "unknown" is not described by schema`)

	err = checkSections(map[string]interface{}{}, map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema has no definitions")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "daily_limit")
	assert.Contains(t, string(data), "exclusion_ttl")
}
