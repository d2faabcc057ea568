package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/kata/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenCounter
	screenAnimals
	screenPeople
	screenShuffle
)

type menuItem struct {
	title string
	desc  string
	scr   screen
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

var defaultDeck = []string{"ace", "king", "queen", "jack", "ten", "nine"}

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	counter *domain.Counter
	animals []domain.SoundMaker
	people  []domain.Person

	deck   []string
	picked string
	toast  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Counter", "Press + or space to count up", screenCounter},
		menuItem{"Animals", "Every animal makes a sound", screenAnimals},
		menuItem{"People", "Names and ages", screenPeople},
		menuItem{"Shuffle", "Shuffle a deck and draw a card", screenShuffle},
		menuItem{"Quit", "Exit kata", screenHome},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "kata"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   t,
		deps:    deps,
		scr:     screenHome,
		menu:    l,
		counter: domain.NewCounter(),
		animals: []domain.SoundMaker{
			domain.NewAnimal("Cat"),
			domain.NewAnimal("Cow"),
			domain.NewDog("Rex"),
		},
		people: []domain.Person{
			domain.NewPerson("Alice", 30),
			domain.NewPerson("Bob", 25),
		},
		deck: append([]string(nil), defaultDeck...),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case shuffledMsg:
		m.deck = msg.deck
		m.toast = ""
		m.deps.log().Debug("tui.shuffled", "deck", strings.Join(m.deck, ","))
		return m, nil

	case pickedMsg:
		if msg.err != nil {
			m.toast = "Nothing to draw"
			return m, nil
		}
		m.picked = msg.card
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				if m.menu.FilterState() == list.Filtering {
					break
				}
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "enter":
			if m.scr == screenHome && m.menu.FilterState() != list.Filtering {
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				if it.scr == screenHome {
					return m, tea.Quit
				}
				m.scr = it.scr
				m.toast = ""
				return m, nil
			}

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}

		case "+", " ":
			if m.scr == screenCounter {
				m.counter.Increment()
				return m, nil
			}

		case "r":
			if m.scr == screenShuffle {
				if m.deps.Rand == nil {
					m.toast = "No random source configured"
					return m, nil
				}
				return m, cmdShuffle(m.deps.Rand, m.deck)
			}

		case "p":
			if m.scr == screenShuffle {
				if m.deps.Rand == nil {
					m.toast = "No random source configured"
					return m, nil
				}
				return m, cmdPick(m.deps.Rand, m.deck)
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("kata") + "\n" +
		m.theme.Subtitle.Render("small helpers, one toolbox") + "\n"
	if m.deps.Debug {
		header += m.theme.Help.Render(debugLine(m.deps.LogPath)) + "\n"
	}

	if m.scr == screenHome {
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		if m.toast != "" {
			help = m.theme.Toast.Render(m.toast) + "\n" + help
		}
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)
	}

	var title, body, help string
	switch m.scr {
	case screenCounter:
		title = "Counter"
		body = "Count: " + m.theme.Value.Render(fmt.Sprint(m.counter.Count()))
		help = "+/space increment • esc/b back"

	case screenAnimals:
		title = "Animals"
		lines := make([]string, 0, len(m.animals))
		for _, a := range m.animals {
			lines = append(lines, fmt.Sprintf("%-6s %s", describe(a), m.theme.Value.Render(a.MakeSound())))
		}
		body = strings.Join(lines, "\n")
		help = "esc/b back"

	case screenPeople:
		title = "People"
		lines := make([]string, 0, len(m.people))
		for _, p := range m.people {
			lines = append(lines, p.Details())
		}
		body = strings.Join(lines, "\n")
		help = "esc/b back"

	case screenShuffle:
		title = "Shuffle"
		body = "Deck: " + strings.Join(m.deck, " ")
		if m.picked != "" {
			body += "\nDrawn: " + m.theme.Value.Render(m.picked)
		}
		help = "r shuffle • p draw • esc/b back"

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}

	if m.toast != "" {
		body += "\n\n" + m.theme.Toast.Render(m.toast)
	}

	card := m.theme.Card.Render(
		fmt.Sprintf("%s\n\n%s\n\n%s",
			m.theme.Title.Render(title),
			body,
			m.theme.Help.Render(help),
		),
	)
	return wrap.Render(header + "\n" + card)
}

func describe(s domain.SoundMaker) string {
	switch a := s.(type) {
	case domain.Dog:
		return a.Name()
	case domain.Animal:
		return a.Species()
	default:
		return "?"
	}
}

func debugLine(logPath string) string {
	if logPath == "" {
		return "debug: no workspace, logs discarded"
	}
	return "debug: logging to " + logPath
}
