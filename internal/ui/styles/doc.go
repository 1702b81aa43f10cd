// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the circalc TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. The [ui] theme setting can force one side:

	theme := styles.NewTheme(cfg.UI.Theme) // "auto", "dark" or "light"
	keyStyle := theme.KeyOperator

Layout adapts to the terminal width through Theme.GetLayoutMode.
*/
package styles
