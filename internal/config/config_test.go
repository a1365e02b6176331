package config_test

import (
	"testing"

	"wuerfel/internal/config"
	"wuerfel/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	customYAML = `
dice:
  - name: Coin
    first: 0
    last: 1
  - name: D8
    first: 1
    last: 8
theme:
  summary: "#00FF00"
`
	invalidSyntaxYAML = `
dice:
  - name: "D6
    first: 1
`
	missingNameYAML = `
dice:
  - first: 1
    last: 6
`
	reversedYAML = `
dice:
  - name: Backwards
    first: 6
    last: 1
`
	negativeYAML = `
dice:
  - name: Negative
    first: -1
    last: 3
`
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"D4", "D6", "D10", "D20"}, cfg.Names())
	expected := []config.DieSpec{
		{Name: "D4", First: 1, Last: 4},
		{Name: "D6", First: 1, Last: 6},
		{Name: "D10", First: 1, Last: 10},
		{Name: "D20", First: 1, Last: 20},
	}
	assert.Equal(t, expected, cfg.Dice)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.NotEmpty(t, cfg.Theme.Border)
}

func TestParse(t *testing.T) {
	t.Run("custom catalog keeps theme defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte(customYAML))
		require.NoError(t, err)

		assert.Equal(t, []string{"Coin", "D8"}, cfg.Names())
		assert.Equal(t, 0, cfg.Dice[0].First)
		assert.Equal(t, "#00FF00", cfg.Theme.Summary)
		assert.Equal(t, "default", cfg.Theme.Name)
		assert.NotEmpty(t, cfg.Theme.Title)
	})

	t.Run("empty document gives empty catalog", func(t *testing.T) {
		cfg, err := config.Parse([]byte(""))
		require.NoError(t, err)
		assert.Empty(t, cfg.Dice)
	})

	tests := []struct {
		name string
		yaml string
		kind errors.ErrorKind
	}{
		{"invalid syntax", invalidSyntaxYAML, errors.InvalidCatalog},
		{"missing name", missingNameYAML, errors.InvalidCatalog},
		{"reversed faces", reversedYAML, errors.InvalidCatalog},
		{"negative face", negativeYAML, errors.InvalidFace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.yaml))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Equal(t, tt.kind, errors.KindOf(err))
		})
	}
}

func TestValidateNil(t *testing.T) {
	var cfg *config.Config
	assert.Error(t, cfg.Validate())
}
