package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

func render(w io.Writer, v contentView, format string, color bool) error {
	switch format {
	case "", "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return oops.Wrapf(err, "encode yaml")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "text":
		return renderText(w, v, newTextStyles(color))
	default:
		return oops.Errorf("unknown output format %q", format)
	}
}

type textStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	warn  lipgloss.Style
	body  lipgloss.Style
}

func newTextStyles(color bool) textStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return textStyles{title: plain, label: plain, warn: plain, body: plain}
	}
	return textStyles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label: lipgloss.NewStyle().Faint(true),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		body:  lipgloss.NewStyle().PaddingLeft(2),
	}
}

// renderText prints the metadata as aligned label/value rows, the payload as
// indented yaml and each diagnostic on its own line.
func renderText(w io.Writer, v contentView, s textStyles) error {
	var b strings.Builder

	b.WriteString(s.title.Render(strings.ToUpper(v.Family)+" message") + "\n")
	rows := [][2]string{
		{"sender", fmt.Sprintf("%s.%d", v.Sender, v.SenderDevice)},
		{"timestamp", fmt.Sprint(v.Timestamp)},
		{"needs receipt", fmt.Sprint(v.NeedsReceipt)},
		{"local address", v.LocalAddress},
	}
	for _, r := range rows {
		b.WriteString(s.label.Render(fmt.Sprintf("%-14s", r[0])) + " " + r[1] + "\n")
	}

	if payload := payloadOf(v); payload != nil {
		out, err := yaml.Marshal(payload)
		if err != nil {
			return oops.Wrapf(err, "encode payload")
		}
		b.WriteString(s.body.Render(strings.TrimRight(string(out), "\n")) + "\n")
	}

	for _, d := range v.Diagnostics {
		b.WriteString(s.warn.Render("! "+d) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func payloadOf(v contentView) any {
	switch {
	case v.Data != nil:
		return v.Data
	case v.Sync != nil:
		return v.Sync
	case v.Call != nil:
		return v.Call
	case v.Receipt != nil:
		return v.Receipt
	case v.Typing != nil:
		return v.Typing
	default:
		return nil
	}
}
