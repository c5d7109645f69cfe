package cli

import (
	"strings"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/cli/formatter"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/contract"
	"github.com/TGO0427/synercore-import-schedule-sub003/internal/forecast"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// forecastLoader produces a fresh forecast; the viewer calls it on start and
// on every reload.
type forecastLoader func() (*contract.ForecastResponse, error)

type forecastLoadedMsg struct {
	resp *contract.ForecastResponse
	err  error
}

type forecastKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultForecastKeys() forecastKeyMap {
	return forecastKeyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k forecastKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Reload, k.Quit}
}

func (k forecastKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// forecastView browses a forecast one week at a time.
type forecastView struct {
	load    forecastLoader
	keys    forecastKeyMap
	help    help.Model
	resp    *contract.ForecastResponse
	cursor  int
	loading bool
	err     error
}

func newForecastView(load forecastLoader) *forecastView {
	return &forecastView{
		load:    load,
		keys:    defaultForecastKeys(),
		help:    help.New(),
		loading: true,
	}
}

func (v *forecastView) Init() tea.Cmd {
	return v.loadForecast()
}

func (v *forecastView) loadForecast() tea.Cmd {
	load := v.load
	return func() tea.Msg {
		resp, err := load()
		return forecastLoadedMsg{resp: resp, err: err}
	}
}

func (v *forecastView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case forecastLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.resp = msg.resp
		if v.cursor >= len(v.resp.Weeks) {
			v.cursor = max(len(v.resp.Weeks)-1, 0)
		}
		return v, nil

	case tea.WindowSizeMsg:
		v.help.Width = msg.Width
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Reload):
			v.loading = true
			return v, v.loadForecast()
		case key.Matches(msg, v.keys.Prev):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, v.keys.Next):
			if v.resp != nil && v.cursor < len(v.resp.Weeks)-1 {
				v.cursor++
			}
		}
	}
	return v, nil
}

func (v *forecastView) View() string {
	var b strings.Builder

	switch {
	case v.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case v.resp == nil:
		b.WriteString(formatter.Dim("Loading forecast..."))
		b.WriteString("\n")
	default:
		b.WriteString(formatter.Header("Capacity forecast " + v.resp.StartWeek.String()))
		b.WriteString("\n")
		b.WriteString(v.weekStrip())
		b.WriteString("\n\n")
		if w, ok := v.selectedWeek(); ok {
			b.WriteString(formatter.FormatWeekDetail(w))
		}
		if v.loading {
			b.WriteString(formatter.Dim("Reloading..."))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

// weekStrip renders every week's label in its tier color with the selected
// week highlighted.
func (v *forecastView) weekStrip() string {
	parts := make([]string, 0, len(v.resp.Weeks))
	for i, w := range v.resp.Weeks {
		label := strings.TrimPrefix(w.Label, "Week ")
		if w.Offset == 0 {
			label = "Now"
		}
		style := formatter.TierStyle(w.TotalAlert)
		if i == v.cursor {
			style = style.Reverse(true).Bold(true)
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}

// selectedWeek returns the bucket under the cursor.
func (v *forecastView) selectedWeek() (forecast.WeekBucket, bool) {
	if v.resp == nil || len(v.resp.Weeks) == 0 {
		return forecast.WeekBucket{}, false
	}
	return v.resp.Weeks[v.cursor], true
}
