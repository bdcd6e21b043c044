package colordefs

import (
	"log"
	"time"
)

const (
	DefaultInput  = "colors.json"
	DefaultOutput = "colors_defines.h"
)

type Config struct {
	Input     string
	Output    string
	DebugMode bool
}

// Result counts what went into the header. Digital excludes the fixed green line.
type Result struct {
	Colors  int
	Digital int
}

func (c Config) withDefaults() Config {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	return c
}

// Processing loads the color document and writes the header. The output is
// not touched when loading fails.
func Processing(c Config) (*Result, error) {
	c = c.withDefaults()

	st := time.Now()
	log.Printf("[>] Generate %s from %s", c.Output, c.Input)

	table, err := LoadFile(c.Input)
	if err != nil {
		return nil, err
	}

	if c.DebugMode {
		log.Println("DEBUG MODE ON")
	}

	result := &Result{Colors: table.Len()}
	for _, e := range table.Entries() {
		digital := e.IsDigital()
		if digital {
			result.Digital++
		}
		if c.DebugMode {
			log.Printf("Color %s %s digital=%t", e.Name, e.Hex(), digital)
		}
	}

	if err = WriteFile(c.Output, table); err != nil {
		return nil, err
	}

	log.Printf("[<] Generate %s, %d PWM and %d DIGITAL defines, at %s",
		c.Output, result.Colors, result.Digital+1, time.Since(st))
	return result, nil
}
