package bubbletea

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/morebutton"
)

var _ tea.Model = Model{}

// toolbarHeight is the number of rows the toolbar occupies.
const toolbarHeight = 3

// colorFade is the transition used when cycling override colors.
var colorFade = morebutton.Animated(300*time.Millisecond, morebutton.CurveEaseInOut)

// palette is cycled by the color key. The empty color restores the theme
// default.
var palette = []morebutton.Color{"", "#f7768e", "#9ece6a", "#e0af68"}

// Config configures a Model.
type Config struct {
	Catalog   morebutton.Catalog
	Theme     morebutton.Theme
	Size      morebutton.Size
	Encircled bool
	// OnAction is called after the model records an activation. Optional.
	OnAction morebutton.ActionFunc
	// Clock defaults to time.Now.
	Clock Clock
}

// activity records what the button last did. It is shared by pointer so the
// action callback can update it from inside the button.
type activity struct {
	last  string
	count int
}

// Model is the Bubble Tea model hosting the button in a toolbar.
type Model struct {
	// Help renders the key hints. Exported for test access.
	Help help.Model

	keys     KeyMap
	styles   Styles
	button   *morebutton.Button
	player   *TrackPlayer
	animator *Animator
	activity *activity

	themes     [2]morebutton.Theme
	light      bool
	paletteIdx int
	width      int
	ticking    bool
	ready      bool
}

// New creates a Model and the button it hosts. The icon must fit inside the
// toolbar so the drawn icon and the clickable frame coincide.
func New(cfg Config) (Model, error) {
	if cfg.Size.Height > toolbarHeight {
		return Model{}, fmt.Errorf("icon height %d exceeds toolbar height %d: %w", cfg.Size.Height, toolbarHeight, morebutton.ErrValidation)
	}
	player, err := NewTrackPlayer(cfg.Catalog, cfg.Clock)
	if err != nil {
		return Model{}, err
	}
	animator := NewAnimator(cfg.Clock)
	button, err := morebutton.New(cfg.Theme, player,
		morebutton.WithSize(cfg.Size),
		morebutton.WithEncircled(cfg.Encircled),
		morebutton.WithAnimator(animator),
	)
	if err != nil {
		return Model{}, err
	}

	act := &activity{}
	onAction := cfg.OnAction
	button.SetAction(func(source *morebutton.ContextSource, gesture *morebutton.ContextGesture) {
		act.count++
		if gesture == nil {
			act.last = "tap"
		} else {
			act.last = fmt.Sprintf("menu via %s at %d,%d", gesture.Source, gesture.Position.X, gesture.Position.Y)
		}
		if onAction != nil {
			onAction(source, gesture)
		}
	})

	return Model{
		Help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   NewStyles(cfg.Theme),
		button:   button,
		player:   player,
		animator: animator,
		activity: act,
		themes:   [2]morebutton.Theme{cfg.Theme, morebutton.LightTheme()},
	}, nil
}

// Button returns the hosted button.
func (m Model) Button() *morebutton.Button { return m.button }

// Player returns the track player rendering the icon.
func (m Model) Player() *TrackPlayer { return m.player }

// Activations returns how many times the action ran.
func (m Model) Activations() int { return m.activity.count }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.Help.Width = msg.Width
		m.button.Layout(morebutton.Size{Width: msg.Width, Height: toolbarHeight})
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)
		return m.animate()

	case FrameMsg:
		m.ticking = false
		m.player.Advance(msg.Time)
		m.animator.Advance(msg.Time)
		return m.animate()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.toolbar())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Help.View(m.keys))
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	icon := m.button.Icon()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tap):
		m.button.Gestures().Tap()
	case key.Matches(msg, m.keys.Menu):
		m.button.Gestures().Activate(morebutton.ContextGesture{
			Position: m.button.Source().Frame().Origin,
			Source:   "key",
		})
	case key.Matches(msg, m.keys.Search):
		icon.EnqueueState(morebutton.StateSearch, true)
	case key.Matches(msg, m.keys.More):
		icon.EnqueueState(morebutton.StateMore, true)
	case key.Matches(msg, m.keys.Color):
		m.paletteIdx = (m.paletteIdx + 1) % len(palette)
		m.button.UpdateColor(palette[m.paletteIdx], colorFade)
	case key.Matches(msg, m.keys.Theme):
		m.light = !m.light
		theme := m.themes[0]
		if m.light {
			theme = m.themes[1]
		}
		m.button.SetTheme(theme)
		m.styles = NewStyles(theme)
	default:
		return m, nil
	}
	return m.animate()
}

// handleMouse routes presses inside the icon frame: left button taps, right
// button opens the contextual menu. The toolbar starts at row 0.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress {
		return m
	}
	p := morebutton.Point{X: msg.X, Y: msg.Y}
	if !m.button.Frame().Icon.Contains(p) {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.button.Gestures().Tap()
	case tea.MouseButtonRight:
		m.button.Gestures().Activate(morebutton.ContextGesture{Position: p, Source: "mouse"})
	}
	return m
}

// animate schedules the next frame tick while anything is in flight. Only
// one tick is outstanding at a time.
func (m Model) animate() (Model, tea.Cmd) {
	if m.ticking || !(m.player.Animating() || m.animator.Animating()) {
		return m, nil
	}
	m.ticking = true
	return m, frameTick()
}

// toolbar renders the button inside a full-width bar.
func (m Model) toolbar() string {
	frame := m.button.Frame()
	theme := m.button.Theme()

	glyph := m.player.Glyph()
	fg := fadeColor(m.button.Color(), theme.Background, m.button.Icon().Alpha())
	// The most opaque overlay covers the icon while a crossfade runs.
	alpha := m.button.Icon().Alpha()
	for _, o := range m.button.Overlays() {
		if o.Alpha() > alpha {
			alpha = o.Alpha()
			glyph = o.Glyph
			fg = fadeColor(o.Color, theme.Background, o.Alpha())
		}
	}

	iconSize := frame.Icon.Size
	cell := lipgloss.NewStyle().Foreground(fg).Render(glyph)
	icon := lipgloss.Place(iconSize.Width, iconSize.Height, lipgloss.Center, lipgloss.Center, cell)
	block := lipgloss.NewStyle().
		PaddingLeft(frame.Icon.Origin.X).
		PaddingTop(frame.Icon.Origin.Y).
		Render(icon)
	return m.styles.Bar.Render(lipgloss.Place(m.width, frame.Size.Height, lipgloss.Left, lipgloss.Top, block))
}

func (m Model) statusLine() string {
	state := m.styles.Accent.Render(string(m.button.Icon().State()))
	if m.activity.last == "" {
		return state + m.styles.Muted.Render(" · waiting")
	}
	return state + m.styles.Muted.Render(fmt.Sprintf(" · %s (%d)", m.activity.last, m.activity.count))
}
