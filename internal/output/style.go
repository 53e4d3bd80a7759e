// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/nuoa-io/nuoa-swe/internal/config"
)

// paint renders text, possibly with terminal styling.
type paint func(string) string

func (p paint) Render(s string) string { return p(s) }

type styles struct {
	title   paint
	heading paint
	name    paint
}

func plain(s string) string { return s }

// newStyles returns pass-through styles, or colored ones when color is set.
func newStyles(colored bool) styles {
	if !colored {
		return styles{title: plain, heading: plain, name: plain}
	}

	title, heading, name := getColors("colors")
	return styles{
		title:   styled(lipgloss.NewStyle().Bold(true).Foreground(title)),
		heading: styled(lipgloss.NewStyle().Bold(true).Foreground(heading)),
		name:    styled(lipgloss.NewStyle().Foreground(name)),
	}
}

func styled(st lipgloss.Style) paint {
	return func(s string) string { return st.Render(s) }
}

// getColors returns configured color values for the report. Each color is
// selected based on terminal background so output stays readable on light
// and dark themes.
func getColors(key string) (title, heading, name color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// An explicit color in the config wins; otherwise pick a default that
	// suits the terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	title = resolveColor(key+".title", "#b08800", "#f6be00")
	heading = resolveColor(key+".heading", "#333333", "#ffffff")
	name = resolveColor(key+".name", "#0088a0", "#00c8f0")

	return
}
