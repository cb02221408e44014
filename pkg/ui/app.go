package ui

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rovelle/masthead/pkg/config"
	"github.com/rovelle/masthead/pkg/menu"
	"github.com/rovelle/masthead/pkg/nav"
	"github.com/rovelle/masthead/pkg/page"
)

// ConfigReloadedMsg carries a live-reloaded configuration into the program.
type ConfigReloadedMsg struct {
	Config config.Config
}

// contactPage is the route name that swaps the markdown body for the form.
const contactPage = "contact"

// App is the root bubbletea model: the navigation controller on top, a page
// viewport underneath, and the occasional overlay.
type App struct {
	nav   *nav.Controller
	menu  *menu.Menu
	store *page.Store
	theme Theme

	vp      viewport.Model
	help    HelpOverlayModel
	contact *huh.Form

	path   string
	width  int
	height int
	ready  bool

	status string // transient one-line feedback, cleared on next key
}

// NewApp assembles the model around a loaded menu and page store.
func NewApp(cfg config.Config, m *menu.Menu, store *page.Store, theme Theme) *App {
	return &App{
		nav:   nav.New(cfg),
		menu:  m,
		store: store,
		theme: theme,
		help:  NewHelpOverlayModel(theme),
		path:  "/",
	}
}

// Nav exposes the controller, mainly for tests.
func (a *App) Nav() *nav.Controller {
	return a.nav
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a, a.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case nav.FrameMsg:
		a.nav.HandleFrame(a.vp.TotalLineCount(), a.vp.Height)
		return a, nil

	case nav.CloseTimerMsg:
		a.nav.HandleTimer(msg)
		return a, nil

	case nav.NavigateMsg:
		return a, a.showPage(msg.Path)

	case ConfigReloadedMsg:
		log.Printf("config reloaded")
		return a, a.nav.SetConfig(msg.Config)
	}

	// Everything else (form ticks, spinner frames) feeds the contact form.
	if a.contact != nil {
		return a, a.updateContact(msg)
	}
	return a, nil
}

// resize binds the controller on the first size message and relayouts after.
func (a *App) resize(w, h int) tea.Cmd {
	a.width, a.height = w, h
	bodyH := h - nav.HeaderRows
	if bodyH < 1 {
		bodyH = 1
	}

	var cmd tea.Cmd
	if !a.ready {
		a.ready = true
		a.vp = viewport.New(w, bodyH)
		a.nav.Bind(a.menu, a.path, w)
	} else {
		a.vp.Width = w
		a.vp.Height = bodyH
		cmd = a.nav.SetSize(w)
	}
	a.refreshContent()
	return cmd
}

// handleMouse routes wheel events to the page and everything else to the
// controller. The compact menu owns the scroll lock: while it is engaged,
// wheel events do not move the page.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if a.nav.State().ScrollLocked {
			return nil
		}
		lines := a.nav.Config().WheelLines
		if msg.Button == tea.MouseButtonWheelUp {
			a.vp.LineUp(lines)
		} else {
			a.vp.LineDown(lines)
		}
		return a.nav.OnContentScroll(a.vp.YOffset)
	}
	return a.nav.HandleMouse(msg)
}

// handleKey dispatches keys by priority: help overlay, contact form,
// navigation chrome, then page scrolling.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	a.status = ""

	if a.help.IsVisible() {
		a.help, _ = a.help.Update(msg)
		return nil
	}

	// Quit works everywhere except inside text fields (the contact form and
	// the compact menu's filter own their keystrokes).
	typing := a.contact != nil || a.nav.State().CompactMenuOpen
	if key := msg.String(); key == "ctrl+c" || (key == "q" && !typing) {
		a.nav.Teardown()
		return tea.Quit
	}

	if handled, cmd := a.nav.HandleKey(msg); handled {
		return cmd
	}

	if a.contact != nil {
		return a.updateContact(msg)
	}

	switch msg.String() {
	case "?":
		a.help.Toggle()
	case "h":
		return a.showPage("/")
	case "y":
		if err := clipboard.WriteAll(a.path); err != nil {
			log.Printf("Warning: clipboard copy failed: %v", err)
			a.status = "clipboard unavailable"
		} else {
			a.status = "copied " + a.path
		}
	case "j", "down":
		a.vp.LineDown(1)
		return a.nav.OnContentScroll(a.vp.YOffset)
	case "k", "up":
		a.vp.LineUp(1)
		return a.nav.OnContentScroll(a.vp.YOffset)
	case "g":
		a.vp.GotoTop()
		return a.nav.OnContentScroll(a.vp.YOffset)
	case "G":
		a.vp.GotoBottom()
		return a.nav.OnContentScroll(a.vp.YOffset)
	}
	return nil
}

// showPage navigates to a location path: route detection updates the header
// marking and the viewport gets the new page's content from the top.
func (a *App) showPage(path string) tea.Cmd {
	a.path = path
	a.nav.SetPath(path)

	var cmd tea.Cmd
	if a.nav.State().CurrentPage == contactPage {
		a.contact = newContactForm(a.bodyWidth())
		cmd = a.contact.Init()
	} else {
		a.contact = nil
	}

	a.refreshContent()
	a.vp.GotoTop()
	return tea.Batch(cmd, a.nav.OnContentScroll(0))
}

// updateContact feeds a message to the contact form and handles completion.
func (a *App) updateContact(msg tea.Msg) tea.Cmd {
	form, cmd := a.contact.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.contact = f
	}
	if a.contact.State == huh.StateCompleted {
		a.status = "thanks, " + a.contact.GetString("name") + " — we'll be in touch"
		a.contact = nil
		a.refreshContent()
	}
	return cmd
}

// refreshContent re-renders the current page into the viewport.
func (a *App) refreshContent() {
	if !a.ready {
		return
	}
	if a.contact != nil {
		return // the form renders itself
	}
	a.vp.SetContent(a.store.Render(a.nav.State().CurrentPage, a.bodyWidth()))
}

func (a *App) bodyWidth() int {
	w := a.width - 2*SpaceSM
	if w < 20 {
		w = 20
	}
	return w
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "loading..."
	}

	body := a.vp.View()
	if a.contact != nil {
		body = a.theme.Renderer.NewStyle().
			Padding(1, SpaceSM).
			Render(a.contact.View())
	}

	bodyH := a.height - nav.HeaderRows
	body = ComposeDropdown(body, a.nav, a.theme, bodyH)
	body = ComposeCompact(body, a.nav, a.theme, bodyH)
	if a.help.IsVisible() {
		overlay := a.help.View()
		x := (a.width - maxLineWidth(splitLines(overlay))) / 2
		if x < 0 {
			x = 0
		}
		body = overlayAt(body, overlay, x, 1, a.width, bodyH)
	}
	if a.status != "" {
		hint := a.theme.Renderer.NewStyle().Faint(true).Render(a.status)
		body = overlayAt(body, hint, SpaceSM, bodyH-1, a.width, bodyH)
	}

	return RenderHeader(a.nav, a.theme) + "\n" + body
}

// newContactForm builds the contact page's form.
func newContactForm(width int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Placeholder("Ada Lovelace"),
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("ada@example.com"),
			huh.NewSelect[string]().
				Key("topic").
				Title("What about?").
				Options(
					huh.NewOption("SEO", "seo"),
					huh.NewOption("Web Design", "web-design"),
					huh.NewOption("Paid Media", "paid-media"),
					huh.NewOption("Something else", "other"),
				),
			huh.NewText().
				Key("message").
				Title("Message").
				Lines(4),
		),
	).WithWidth(width)
}
