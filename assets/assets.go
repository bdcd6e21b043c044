package assets

import (
	_ "embed"
	"log"
	"text/template"
)

// HeaderData feeds the colors_defines.h layout.
type HeaderData struct {
	Guard   string
	PWM     []string
	Digital []string
}

//go:embed colors_defines.h.tmpl
var headerLayout string

var Header *template.Template

func init() {
	t, err := template.New("colors_defines.h").Parse(headerLayout)
	if err != nil {
		log.Fatal(err)
	}
	Header = t
}
