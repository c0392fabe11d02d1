package gflags

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type xmlFlag struct {
	XMLName   xml.Name `xml:"flag"`
	Key       string   `xml:"key,omitempty"`
	File      string   `xml:"file"`
	Name      string   `xml:"name"`
	ShortName string   `xml:"short_name,omitempty"`
	Meaning   string   `xml:"meaning,omitempty"`
	Default   *string  `xml:"default"`
	Current   string   `xml:"current"`
	Type      string   `xml:"type"`
}

type xmlHelp struct {
	XMLName xml.Name  `xml:"AllFlags"`
	Program string    `xml:"program"`
	Usage   string    `xml:"usage"`
	Flags   []xmlFlag `xml:"flag"`
}

// WriteHelpInXML writes a machine-readable description of all registered
// flags to w. Flags are sorted by defining module, then by name, and key
// flags of the main module are marked as such.
func (f *FlagSet) WriteHelpInXML(w io.Writer) error {
	usage := f.usage
	if usage == "" {
		usage = fmt.Sprintf("USAGE: %s [flags]", f.name)
	}

	help := xmlHelp{Program: f.name, Usage: usage}

	isKey := make(map[*Flag]bool)
	for _, flag := range f.KeyFlagsForModule(mainModule) {
		isKey[flag] = true
	}

	modules := maps.Keys(f.flagsByModule)
	slices.Sort(modules)

	for _, module := range modules {
		flags := slices.Clone(f.flagsByModule[module])
		slices.SortFunc(flags, func(a, b *Flag) int {
			return strings.Compare(a.Name, b.Name)
		})

		for _, flag := range flags {
			if f.flags[flag.Name] != flag {
				continue
			}

			help.Flags = append(help.Flags, newXMLFlag(flag, module, isKey[flag]))
		}
	}

	data, err := xml.MarshalIndent(help, "", "  ")
	if err != nil {
		return err
	}

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return err
	}

	_, err = w.Write([]byte("\n"))

	return err
}

func newXMLFlag(flag *Flag, module string, isKey bool) xmlFlag {
	xflag := xmlFlag{
		File:      module,
		Name:      flag.Name,
		ShortName: flag.Shorthand,
		Meaning:   flag.Usage,
		Current:   flag.Value.String(),
		Type:      flag.Type(),
	}

	if isKey {
		xflag.Key = "yes"
	}

	if flag.hasDefault() {
		def := flag.DefValue
		xflag.Default = &def
	}

	return xflag
}
