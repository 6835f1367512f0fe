// Package config holds the root command-line layout shared by the ridl binary and its tests.
package config

import "github.com/Alia5/ridl/internal/cmd"

type LogConfig struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"RIDL_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" type:"path" env:"RIDL_LOG_FILE"`
}

type CLI struct {
	ConfigFile string    `name:"config" help:"Path to a configuration file (json, yaml or toml)" type:"path" env:"RIDL_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Generate register definitions from a device schema"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration file helpers"`
	Version  cmd.Version       `cmd:"" help:"Print the ridl version"`
}
