package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opsdeck/opsdeck/internal/domain"
)

type planItem struct {
	plan domain.Plan
}

func (i planItem) Title() string { return i.plan.ID }

func (i planItem) Description() string {
	desc := i.plan.Status
	if i.plan.Objective != "" {
		desc += " · " + clampString(i.plan.Objective, 60)
	}
	return desc
}

func (i planItem) FilterValue() string { return i.plan.ID }

type model struct {
	theme Theme
	deps  Deps

	plans list.Model
	dash  domain.Dashboard

	loading bool
	execute bool
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Plans"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		plans:   l,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return cmdLoadDashboard(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.plans.SetSize(msg.Width-6, msg.Height-12)
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.dash = msg.dashboard
		m.toast = ""

		items := make([]list.Item, 0, len(msg.dashboard.Plans))
		for _, p := range msg.dashboard.Plans {
			items = append(items, planItem{plan: p})
		}
		m.plans.SetItems(items)
		return m, nil

	case planDecidedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = fmt.Sprintf("Plan %s: %s (%s)", msg.outcome.PlanID, msg.outcome.Status, msg.action)
		m.loading = true
		return m, cmdLoadDashboard(m.deps)

	case tea.KeyMsg:
		// Let the list own keys while the operator is filtering.
		if m.plans.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "r":
			m.loading = true
			m.toast = ""
			return m, cmdLoadDashboard(m.deps)

		case "e":
			m.execute = !m.execute
			return m, nil

		case "a", "enter":
			if p, ok := m.selectedPlan(); ok {
				m.toast = "Approving " + p.ID + "..."
				return m, cmdApprovePlan(m.deps, p.ID, m.execute)
			}
			return m, nil

		case "x":
			if p, ok := m.selectedPlan(); ok {
				m.toast = "Rejecting " + p.ID + "..."
				return m, cmdRejectPlan(m.deps, p.ID)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.plans, cmd = m.plans.Update(msg)
	return m, cmd
}

func (m model) selectedPlan() (domain.Plan, bool) {
	it, ok := m.plans.SelectedItem().(planItem)
	if !ok {
		return domain.Plan{}, false
	}
	return it.plan, true
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("opsdeck") + "\n" +
		m.theme.Subtitle.Render("Operator console — core control plane") + "\n"

	health := m.theme.Bad.Render("● core down")
	if m.dash.Health.OK {
		service := m.dash.Health.Service
		if service == "" {
			service = "core"
		}
		health = m.theme.OK.Render("● " + service + " healthy")
	}
	counters := m.theme.Help.Render(fmt.Sprintf(
		"models %d · plans %d (%d pending) · jobs %d",
		m.dash.ModelsCount, len(m.dash.Plans), len(m.dash.PendingPlans()), len(m.dash.Jobs),
	))

	status := health + "  " + counters
	if m.loading {
		status += "  " + m.theme.Help.Render("(refreshing...)")
	}

	execMode := "off"
	if m.execute {
		execMode = "on"
	}
	help := m.theme.Help.Render(
		"↑/↓ navigate • a/enter approve • x reject • e execute: " + execMode + " • r refresh • q quit",
	)

	body := m.theme.Card.Render(m.plans.View())

	out := header + "\n" + status + "\n\n" + body + "\n" + help
	if m.toast != "" {
		out += "\n" + m.theme.Card.Render(m.toast)
	}
	return wrap.Render(out)
}
