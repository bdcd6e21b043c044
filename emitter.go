package colordefs

import (
	"bufio"
	"fmt"
	"github.com/brandquad/colordefs/assets"
	"github.com/brandquad/colordefs/colorutils"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"io"
	"os"
)

const (
	HeaderGuard     = "COLORS_DEFINES_H_"
	DefaultFilePerm = 0644

	// digitalGreen is appended after the derived digital colors on every run,
	// even if the table already produced DIGITAL_COLOR_GREEN.
	digitalGreen = "#define DIGITAL_COLOR_GREEN 0,1,0"
)

func macroName(name string) string {
	return cases.Upper(language.Und).String(name)
}

func define(prefix, name string, rgb [3]int) string {
	return fmt.Sprintf("#define %s%s %d,%d,%d", prefix, macroName(name), rgb[0], rgb[1], rgb[2])
}

// PWMLines returns one COLOR_<NAME> definition per entry, in table order.
func PWMLines(t *ColorTable) []string {
	lines := make([]string, 0, t.Len())
	for _, e := range t.Entries() {
		lines = append(lines, define("COLOR_", e.Name, e.RGB))
	}
	return lines
}

// DigitalLines returns a DIGITAL_COLOR_<NAME> definition for every digital entry
// followed by the fixed green definition.
func DigitalLines(t *ColorTable) []string {
	var lines []string
	for _, e := range t.Entries() {
		if !e.IsDigital() {
			continue
		}
		lines = append(lines, define("DIGITAL_COLOR_", e.Name, colorutils.Digital(e.RGB)))
	}
	return append(lines, digitalGreen)
}

// Render writes the complete header for t.
func Render(w io.Writer, t *ColorTable) error {
	return assets.Header.Execute(w, assets.HeaderData{
		Guard:   HeaderGuard,
		PWM:     PWMLines(t),
		Digital: DigitalLines(t),
	})
}

// WriteFile creates or truncates filename and renders t into it.
// The file is written in place, a failed write leaves it partial.
func WriteFile(filename string, t *ColorTable) (err error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err = Render(w, t); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
