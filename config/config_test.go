package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	t.Parallel()
	cfg, err := Load("/nonexistent/table.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default().Table.Seats, cfg.Table.Seats)
}

func TestValidateRejectsBadSeatCount(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Table.Seats = 1
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEscalationWithoutInterval(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Blinds.NeverIncrease = false
	cfg.Blinds.IncreaseEvery = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateAcceptsDefaults(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Default().Validate())
}
