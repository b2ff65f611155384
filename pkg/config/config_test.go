package config_test

import (
	"testing"
	"time"

	"github.com/limbo/discipline-tracker/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir()+"/missing.env")
	cfg := config.New()

	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "36h")

	assert.Equal(t, "value", cfg.GetString("TEST_STR"))
	assert.Equal(t, "fallback", cfg.GetStringOr("TEST_UNSET", "fallback"))
	assert.Equal(t, 42, cfg.GetInt("TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("TEST_BAD_INT", 1))
	assert.True(t, cfg.GetBool("TEST_BOOL", false))
	assert.False(t, cfg.GetBool("TEST_UNSET", false))
	assert.Equal(t, 36*time.Hour, cfg.GetDuration("TEST_DURATION", time.Hour))
	assert.Equal(t, time.Hour, cfg.GetDuration("TEST_UNSET", time.Hour))
}
