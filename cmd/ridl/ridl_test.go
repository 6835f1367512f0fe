package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("RIDL_CONFIG", "")

	assert.Equal(t, "a.yaml", findUserConfig([]string{"--config=a.yaml", "generate", "x.ridl"}))
	assert.Equal(t, "b.toml", findUserConfig([]string{"generate", "--config", "b.toml"}))
	assert.Equal(t, "", findUserConfig([]string{"generate", "--config"}))

	t.Setenv("RIDL_CONFIG", "env.json")
	assert.Equal(t, "env.json", findUserConfig([]string{"generate", "x.ridl"}))
	assert.Equal(t, "flag.json", findUserConfig([]string{"--config=flag.json"}))
}
