// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the color table and styling capability for rigcon.

# Keyword Colors (colors.go)

The ColorTable binds the semantic keywords a caller may pass to a log call
to a display color. Resolution order is declaration order:

	success   #00ff00
	warning   #ffff00
	danger    #ff0000
	info      #00ffff
	primary   #0077ff
	secondary #666666
	magenta   #ff66ee

Hex values may be overridden from configuration at startup; keywords and
their order may not.

# Value Category Colors

Fixed ANSI colors used by the value formatter: Timestamp, Number, Boolean,
Undefined, Symbol, Date, Pattern, Special.

# Styler (styler.go)

Styler is the "style(text, colorId) -> text" capability. It wraps a lipgloss
renderer pinned to a termenv profile:

	s := styles.NewStyler(os.Stdout, termenv.TrueColor, styles.DefaultColorTable())
	fmt.Println(s.Style("saved", styles.Success))
	fmt.Println(s.Style("custom", "#ff8800"))
*/
package styles
