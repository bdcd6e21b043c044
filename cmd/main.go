package main

import (
	"github.com/brandquad/colordefs"
	"github.com/kelseyhightower/envconfig"
	"log"
)

type Config struct {
	Input     string `envconfig:"COLORDEFS_INPUT" default:"colors.json"`
	Output    string `envconfig:"COLORDEFS_OUTPUT" default:"colors_defines.h"`
	DebugMode bool   `envconfig:"COLORDEFS_DEBUG" default:"false"`
}

func (c Config) MakeConfig() colordefs.Config {
	return colordefs.Config{
		Input:     c.Input,
		Output:    c.Output,
		DebugMode: c.DebugMode,
	}
}

func loadConfig() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

func main() {
	c, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}

	if _, err = colordefs.Processing(c.MakeConfig()); err != nil {
		log.Fatalln(err)
	}
}
