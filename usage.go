package brasp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pressly/brasp/pkg/textutil"
)

const usageWidth = 80

// Usage returns a description of every registered option, in registration order. The text depends
// only on the registered definitions and the parser's options, so repeated calls return identical
// text. It is cached until the next registration.
func (p *Parser) Usage() string {
	if !p.usageCached {
		p.usage = p.renderUsage()
		p.usageCached = true
	}
	return p.usage
}

// WriteUsage writes [Parser.Usage] followed by a newline to w.
func (p *Parser) WriteUsage(w io.Writer) error {
	_, err := io.WriteString(w, p.Usage()+"\n")
	return err
}

func (p *Parser) renderUsage() string {
	var b strings.Builder

	if p.opts.Description != "" {
		for _, line := range textutil.Wrap(p.opts.Description, usageWidth) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if p.opts.Program != "" {
		usage := p.opts.Program
		if len(p.table.order) > 0 {
			usage += " [options]"
		}
		if p.opts.AllowPositionals {
			usage += " [args...]"
		}
		b.WriteString("Usage:\n")
		b.WriteString("  " + usage + "\n\n")
	}

	entries := p.table.entries()
	if len(entries) > 0 {
		options := make([]optionInfo, 0, len(entries))
		for _, e := range entries {
			options = append(options, p.optionInfo(e.def))
		}
		b.WriteString("Options:\n")
		writeOptionSection(&b, options)
	}

	return strings.TrimRight(b.String(), "\n")
}

type optionInfo struct {
	name        string
	description string
}

func (p *Parser) optionInfo(def Definition) optionInfo {
	name := "    --" + def.Name
	if def.Short != "" {
		name = "-" + def.Short + ", --" + def.Name
	}
	if def.Type != TypeBoolean {
		hint := def.Hint
		if hint == "" {
			hint = def.Type.String()
		}
		name += " <" + hint + ">"
	}

	var extra []string
	if def.Multiple {
		extra = append(extra, "repeatable")
	}
	if s := defaultText(def); s != "" {
		extra = append(extra, "default: "+s)
	}
	if key := EnvName(p.opts.EnvPrefix, def.Name); key != "" {
		extra = append(extra, "env: "+key)
	}
	description := def.Description
	for _, x := range extra {
		description += " (" + x + ")"
	}
	return optionInfo{name: name, description: strings.TrimSpace(description)}
}

// defaultText renders the default for usage. String elements are quoted so blank or comma-bearing
// defaults stay readable.
func defaultText(def Definition) string {
	if def.Type != TypeString {
		return def.Default.String()
	}
	elems := def.Default.scalars()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = strconv.Quote(e.String())
	}
	return strings.Join(parts, ",")
}

// writeOptionSection handles the formatting of option descriptions
func writeOptionSection(b *strings.Builder, options []optionInfo) {
	maxLen := 0
	for _, o := range options {
		if len(o.name) > maxLen {
			maxLen = len(o.name)
		}
	}
	nameWidth := maxLen + 4
	wrapWidth := usageWidth - nameWidth

	for _, o := range options {
		lines := textutil.Wrap(o.description, wrapWidth)
		padding := strings.Repeat(" ", maxLen-len(o.name)+4)
		line := fmt.Sprintf("  %s%s%s", o.name, padding, lines[0])
		b.WriteString(strings.TrimRight(line, " ") + "\n")

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
}
