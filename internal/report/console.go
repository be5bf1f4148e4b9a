package report

import (
	"classic_slot/internal/model"
	"classic_slot/internal/service/simulation"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 72

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9e2af"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94e2d5"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
)

// Console общая статистика и top лучших выигрышных троек.
// exact может быть nil, тогда сравнение с точным RTP не печатается.
func Console(w io.Writer, res *model.SimulationResult, exact *model.ExactResult, top int) {
	s := simulation.Summarize(res)
	rule := ruleStyle.Render(strings.Repeat("=", ruleWidth))

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render("OVERALL STATISTICS"))
	fmt.Fprintln(w, rule)
	line := func(label, value string) {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value)))
	}
	line("Total Spins:", strconv.FormatInt(res.TotalSpins, 10))
	line("Total Wagered:", strconv.FormatInt(res.TotalWagered, 10)+" coins")
	line("Total Won:", strconv.FormatInt(res.TotalWon, 10)+" coins")
	line("RTP:", s.RTP.StringFixed(percentPlaces)+"% ± "+s.StdError.StringFixed(percentPlaces))
	line("Hit Frequency:", s.HitFrequency.StringFixed(percentPlaces)+"%")
	line("Average Win:", s.AverageWin.StringFixed(2)+" coins per hit")
	line("Elapsed:", res.Elapsed.String())

	if exact != nil {
		line("Exact RTP:", strconv.FormatFloat(exact.RTP*100, 'f', percentPlaces, 64)+"%")
		line("Exact Hit Freq:", strconv.FormatFloat(exact.HitFrequency*100, 'f', percentPlaces, 64)+"%")
		fmt.Fprintln(w, labelStyle.Render("Convergence:")+convergence(res, exact))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("PAR SHEET - TOP %d WINNING COMBINATIONS", top)))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, headStyle.Render(fmt.Sprintf("%-36s %-8s %-12s %-12s %s", "Combination", "Pays", "Count", "Frequency", "Contribution")))
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("-", ruleWidth)))

	for i, o := range simulation.WinningOutcomes(res) {
		if i >= top {
			break
		}
		combo := string(o.Symbols[0]) + " | " + string(o.Symbols[1]) + " | " + string(o.Symbols[2])
		fmt.Fprintf(w, "%-36s %-8d %-12d %-12s %s\n",
			combo, o.Payout, o.Count,
			percent(o.Count, res.TotalSpins).StringFixed(percentPlaces)+"%",
			percent(o.Count*int64(o.Payout), res.TotalWon).StringFixed(2)+"%",
		)
	}
	fmt.Fprintln(w)
}

// convergence отклонение от точного RTP в стандартных ошибках
func convergence(res *model.SimulationResult, exact *model.ExactResult) string {
	if res.TotalWagered == 0 {
		return valueStyle.Render("n/a")
	}
	rtp := float64(res.TotalWon) / float64(res.TotalWagered)
	se := simulation.StdError(res)
	if se == 0 {
		return valueStyle.Render("n/a")
	}
	z := (rtp - exact.RTP) / se
	text := fmt.Sprintf("%+.2f std errors", z)
	if z < -3 || z > 3 {
		return badStyle.Render(text)
	}
	return goodStyle.Render(text)
}
