// Package tui provides the interactive Bubble Tea calculator for nestegg.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/scenario"
	"github.com/theirongolddev/nestegg/internal/store"
	"github.com/theirongolddev/nestegg/internal/tui/components"
	"github.com/theirongolddev/nestegg/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Options configures a new App.
type Options struct {
	Initial  scenario.Scenario // form values on start
	Defaults scenario.Scenario // values restored by ctrl+r
	Money    cli.Money
	Store    *store.Store // nil disables persistence
	Logger   zerolog.Logger
}

// App is the root Bubble Tea model. All UI state lives here; views are pure
// functions of it.
type App struct {
	values   *formValues
	form     *huh.Form
	outcome  scenario.Outcome
	defaults scenario.Scenario
	money    cli.Money
	store    *store.Store
	log      zerolog.Logger

	width  int
	height int

	status    string
	statusErr bool
}

const (
	minTerminalWidth = 100
	formWidth        = 42
	maxContentWidth  = 180
	chartRows        = 12
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	values := valuesFrom(opts.Initial)
	a := App{
		values:   values,
		form:     newForm(values, formWidth-4),
		defaults: opts.Defaults,
		money:    opts.Money,
		store:    opts.Store,
		log:      opts.Logger,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

func (a *App) recompute() {
	a.outcome = a.values.scenario().Evaluate()
}

// Outcome returns the evaluation of the current form values.
func (a App) Outcome() scenario.Outcome {
	return a.outcome
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "ctrl+r":
			return a.reset()
		}
	}

	return a.updateForm(msg)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		a.form = f
	}
	a.recompute()

	switch a.form.State {
	case huh.StateCompleted:
		a.persist()
		a.form = newForm(a.values, formWidth-4)
		return a, a.form.Init()
	case huh.StateAborted:
		return a, tea.Quit
	}

	return a, cmd
}

// persist stores the current scenario as the last one when it is valid.
func (a *App) persist() {
	if !a.outcome.Validation.Valid {
		a.status, a.statusErr = "Fix the highlighted fields first", true
		return
	}
	if a.store == nil {
		a.status, a.statusErr = "Calculated", false
		return
	}
	if err := a.store.SaveLast(a.outcome.Scenario); err != nil {
		a.log.Warn().Err(err).Msg("saving last scenario")
		a.status, a.statusErr = "Save failed: "+err.Error(), true
		return
	}
	a.log.Debug().Msg("last scenario saved")
	a.status, a.statusErr = "Saved", false
}

func (a App) reset() (tea.Model, tea.Cmd) {
	a.values = valuesFrom(a.defaults)
	a.form = newForm(a.values, formWidth-4)
	a.recompute()
	a.status, a.statusErr = "Defaults restored", false

	if a.store != nil {
		if err := a.store.ClearLast(); err != nil {
			a.log.Warn().Err(err).Msg("clearing last scenario")
			a.status, a.statusErr = "Reset failed: "+err.Error(), true
		}
	}
	return a, a.form.Init()
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)", a.width, minTerminalWidth)
	}

	cw := min(a.width, maxContentWidth)
	resultsWidth := cw - formWidth

	left := components.FocusedCard("Your savings", a.form.View(), formWidth)
	right := a.viewResults(resultsWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return body + "\n" + components.RenderStatusBar(cw, a.status, a.statusErr)
}

func (a App) viewResults(w int) string {
	o := a.outcome
	if !o.Validation.Valid {
		return a.viewErrors(w)
	}

	p := o.Projection
	years := cli.FormatYears(o.Years)
	if o.UsedFallback {
		years += " (fallback)"
	}

	t := theme.Active
	sections := []string{
		components.MetricCardRow([]components.Metric{
			{Label: "Final capital", Value: a.money.Format(p.FutureValue), Color: t.Accent},
			{Label: "Total principal", Value: a.money.Format(p.PrincipalTotal), Color: t.Principal},
			{Label: "Interest earned", Value: a.money.Format(p.Interest), Color: t.Interest},
		}, w),
		components.MetricCardRow([]components.Metric{
			{Label: "Contributions", Value: a.money.Format(p.ContributionsTotal), Color: t.Contribution},
			{Label: "Horizon", Value: years, Note: fmt.Sprintf("%d months", p.Months)},
		}, w),
	}

	if goal := a.viewGoal(w); goal != "" {
		sections = append(sections, goal)
	}

	inner := components.CardInnerWidth(w)
	sections = append(sections,
		components.ContentCard("Breakdown", a.viewBreakdown(inner), w),
		components.ContentCard("Shares", a.viewShares(inner), w),
		components.ContentCard("Balance by year", a.viewChart(inner), w),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a App) viewErrors(w int) string {
	t := theme.Active
	errs := a.outcome.Validation.Errors

	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	style := lipgloss.NewStyle().Foreground(t.Bad)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(style.Render("• "+errs[k]) + "\n")
	}
	return components.ContentCard("Check your inputs", strings.TrimSuffix(b.String(), "\n"), w)
}

func (a App) viewGoal(w int) string {
	o := a.outcome
	if o.Goal == nil {
		return ""
	}
	t := theme.Active

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	label := "Goal reached: no"
	if o.Goal.Reached {
		badge = badge.Foreground(t.Surface).Background(t.Good)
		label = "Goal reached: yes"
	} else {
		badge = badge.Foreground(t.Surface).Background(t.Bad)
	}

	pct := 1.0
	if !o.Goal.Reached && *o.Scenario.Goal > 0 {
		pct = o.Projection.FutureValue / *o.Scenario.Goal
	}

	body := badge.Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(o.GoalMessage(a.money.Format)) + "\n" +
		components.GoalBar(pct, o.Goal.Reached, components.CardInnerWidth(w))
	return components.ContentCard("Savings goal", body, w)
}

func (a App) viewBreakdown(w int) string {
	t := theme.Active
	labelW := max(w-27, 10)
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for _, r := range a.outcome.Breakdown() {
		amount := a.money.Format(r.Amount)
		if r.IsYears {
			amount = cli.FormatYears(r.Amount)
		}
		b.WriteString(label.Render(fmt.Sprintf("%-*.*s", labelW, labelW, r.Label)))
		b.WriteString(value.Render(fmt.Sprintf("%18s %7s", amount, cli.FormatShare(r.Share))))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (a App) viewShares(w int) string {
	t := theme.Active
	p := a.outcome.Projection

	return components.ShareBar(
		components.Segment{Label: "Principal", Value: p.PrincipalTotal, Color: t.Principal},
		components.Segment{Label: "Interest", Value: p.Interest, Color: t.Interest},
		w,
	) + "\n\n" + components.ShareBar(
		components.Segment{Label: "Initial", Value: a.outcome.Scenario.Principal, Color: t.Initial},
		components.Segment{Label: "Contributions", Value: p.ContributionsTotal, Color: t.Contribution},
		w,
	)
}

func (a App) viewChart(w int) string {
	points := a.outcome.Schedule()
	if len(points) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("No months to simulate.")
	}

	labels := make([]string, len(points))
	contributed := make([]float64, len(points))
	interest := make([]float64, len(points))
	for i, pt := range points {
		labels[i] = fmt.Sprintf("Y%d", pt.Year)
		contributed[i] = pt.Contributed
		interest[i] = pt.Interest
	}
	return components.BalanceBars(labels, contributed, interest, w, chartRows)
}
