package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the pergola ASCII banner with a version line.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Indigo to rose gradient, one color per line
	s1 := termenv.String("                                       _").Foreground(p.Color("#818cf8"))
	s2 := termenv.String(" _ __     ___   _ __    __ _    ___   | |    __ _").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String("| '_ \\   / _ \\ | '__|  / _` |  / _ \\  | |   / _` |").Foreground(p.Color("#c084fc"))
	s4 := termenv.String("| |_) | |  __/ | |    | (_| | | (_) | | |  | (_| |").Foreground(p.Color("#e879f9"))
	s5 := termenv.String("| .__/   \\___| |_|     \\__, |  \\___/  |_|   \\__,_|").Foreground(p.Color("#f472b6"))
	s6 := termenv.String("|_|                    |___/").Foreground(p.Color("#fb7185"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
	fmt.Println(termenv.String(fmt.Sprintf("  v%s", strings.TrimSpace(version))).Faint())
	fmt.Println()
}
