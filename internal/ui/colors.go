package ui

// Color accessor functions return the escape code of the active theme's
// corresponding category. Presentation code calls these instead of holding a
// Theme so that a theme change takes effect immediately everywhere.

// ColorPrimary returns the primary accent color code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary color code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// Bold returns the bold text code.
func Bold() string { return GetCurrentTheme().Bold }

// ColorReset returns the formatting reset code.
func ColorReset() string { return GetCurrentTheme().Reset }
