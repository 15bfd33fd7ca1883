package feed

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("226")
	mutedColor   = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	noMoreDataStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	pullingStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	refreshingStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// alphaRamp fades an indicator in as it is revealed.
	alphaRamp = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
)

// alphaStyle picks the ramp step for an alpha in [0, 1].
func alphaStyle(alpha float64) lipgloss.Style {
	switch {
	case alpha <= 0:
		return alphaRamp[0]
	case alpha >= 1:
		return alphaRamp[len(alphaRamp)-1]
	}
	return alphaRamp[int(alpha*float64(len(alphaRamp)-1)+0.5)]
}
