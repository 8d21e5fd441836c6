// Package constants provides centralized constant definitions for the
// ansicolormanager application. Consolidating the magic numbers of the
// 256-color model in one place keeps the color, palette, and UI packages
// consistent with each other.
//
// The constants are organized into logical categories:
//   - colors.go: 6x6x6 cube geometry and 256-color index ranges
//   - limits.go: palette sizing and generation limits
//   - paths.go: log file locations and permissions
//   - ui.go: browser dimensions and display-related constants
package constants
