package tui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/naveenspark/skillhub/internal/browser"
	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/client"
	"github.com/naveenspark/skillhub/pkg/domain"
)

type view int

// backEntry is one step of the esc history. Detail and user views keep
// their own model so returning shows the page that was left.
type backEntry struct {
	view   view
	detail detailModel
	user   userModel
}

const (
	viewHome view = iota
	viewSkills
	viewTrending
	viewHot
	viewDetail
	viewUser
)

// openURL is swapped out in tests.
var openURL = browser.Open

// Options configures the App.
type Options struct {
	Route         page.Route
	Query         url.Values // navigation parameters of Route
	APIBase       string
	Debounce      time.Duration
	ToastDuration time.Duration
	CopyFeedback  time.Duration
	SearchLimit   int
	FeaturedLimit int
	Version       string
	Logger        *zap.Logger
}

// App is the root Bubbletea model.
type App struct {
	src        client.Source
	opts       Options
	logger     *zap.Logger
	view       view
	back       []backEntry
	home       homeModel
	skills     listModel
	trending   listModel
	hot        listModel
	detail     detailModel
	user       userModel
	search     searchModel
	toasts     toastModel
	marks      copyMarks
	helpOpen   bool
	helpCursor int
	latest     string // newer release tag, if any
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates the TUI reading from src. The starting view comes from
// opts.Route; a detail or user route without its parameters starts on
// the Skills tab instead.
func NewApp(src client.Source, opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	a := App{
		src:      src,
		opts:     opts,
		logger:   logger,
		home:     newHomeModel(src, opts.FeaturedLimit),
		skills:   newListModel(src, page.RouteSkills),
		trending: newListModel(src, page.RouteTrending),
		hot:      newListModel(src, page.RouteHot),
		search:   newSearchModel(src, opts.Debounce, opts.SearchLimit),
		toasts:   newToastModel(opts.ToastDuration),
		marks:    newCopyMarks(),
	}

	switch opts.Route {
	case page.RouteSkills:
		a.view = viewSkills
	case page.RouteTrending:
		a.view = viewTrending
	case page.RouteHot:
		a.view = viewHot
	case page.RouteSkillDetail:
		key, err := page.SkillKeyFromQuery(opts.Query)
		if err != nil {
			a.redirect(err)
			break
		}
		a.view = viewDetail
		a.detail = newDetailModel(src, key)
	case page.RouteUser:
		username, err := page.UsernameFromQuery(opts.Query)
		if err != nil {
			a.redirect(err)
			break
		}
		a.view = viewUser
		a.user = newUserModel(src, username)
	}
	return a
}

func (a *App) redirect(err error) {
	var re *page.RedirectError
	if errors.As(err, &re) {
		a.logger.Debug("missing navigation parameter", zap.String("param", re.Param), zap.String("target", re.Target))
	}
	a.view = viewSkills
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.initView(), shimmerTickCmd(), checkVersion(a.opts.Version))
}

// initView starts the current view's load without touching the model,
// which is already in its loading state.
func (a App) initView() tea.Cmd {
	_, cmd := a.loadView(a.view)
	return cmd
}

// loadView resets view v to loading and returns its fetch.
func (a App) loadView(v view) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch v {
	case viewHome:
		a.home, cmd = a.home.Init()
	case viewSkills:
		a.skills, cmd = a.skills.Init()
	case viewTrending:
		a.trending, cmd = a.trending.Init()
	case viewHot:
		a.hot, cmd = a.hot.Init()
	case viewDetail:
		a.detail, cmd = a.detail.Init()
	case viewUser:
		a.user, cmd = a.user.Init()
	}
	return a, cmd
}

func (a App) switchTab(v view) (App, tea.Cmd) {
	a.back = nil
	if a.view == v {
		return a, nil
	}
	a.view = v
	return a.loadView(v)
}

// remember records the current view, with its detail and user models,
// before a push replaces them.
func (a App) remember() App {
	entry := backEntry{view: a.view, detail: a.detail, user: a.user}
	a.back = append(append([]backEntry(nil), a.back...), entry)
	return a
}

// pop returns to the previous view. With nothing to go back to, detail
// and user views fall back to the Skills tab.
func (a App) pop() (App, tea.Cmd) {
	if n := len(a.back); n > 0 {
		prev := a.back[n-1]
		a.back = a.back[:n-1]
		a.view = prev.view
		a.detail = prev.detail
		a.user = prev.user
		// A load answered after leaving was dropped by key; fetch again.
		if (a.view == viewDetail && a.detail.loading) || (a.view == viewUser && a.user.loading) {
			return a.loadView(a.view)
		}
		return a, nil
	}
	if a.view == viewDetail || a.view == viewUser {
		return a.switchTab(viewSkills)
	}
	return a, nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - chromeLines}
		a.home, _ = a.home.Update(bodyMsg)
		a.skills, _ = a.skills.Update(bodyMsg)
		a.trending, _ = a.trending.Update(bodyMsg)
		a.hot, _ = a.hot.Update(bodyMsg)
		a.detail, _ = a.detail.Update(bodyMsg)
		a.user, _ = a.user.Update(bodyMsg)
		a.search, _ = a.search.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case versionCheckMsg:
		if msg.hasUpdate {
			a.latest = msg.latestVersion
		}
		return a, nil

	case featuredLoadedMsg, statsLoadedMsg:
		var cmd tea.Cmd
		a.home, cmd = a.home.Update(msg)
		return a, cmd

	case listLoadedMsg:
		var cmd tea.Cmd
		switch msg.route {
		case page.RouteSkills:
			a.skills, cmd = a.skills.Update(msg)
		case page.RouteTrending:
			a.trending, cmd = a.trending.Update(msg)
		case page.RouteHot:
			a.hot, cmd = a.hot.Update(msg)
		}
		return a, cmd

	case detailLoadedMsg:
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd

	case userLoadedMsg:
		var cmd tea.Cmd
		a.user, cmd = a.user.Update(msg)
		return a, cmd

	case searchTickMsg, searchResultMsg:
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd

	case toastPhaseMsg, toastRemoveMsg:
		var cmd tea.Cmd
		a.toasts, cmd = a.toasts.Update(msg)
		return a, cmd

	case openDetailMsg:
		a = a.remember()
		a.detail = newDetailModel(a.src, msg.key)
		a.detail, _ = a.detail.Update(a.bodySize())
		a.view = viewDetail
		return a.loadView(viewDetail)

	case openUserMsg:
		a = a.remember()
		a.user = newUserModel(a.src, msg.username)
		a.user, _ = a.user.Update(a.bodySize())
		a.view = viewUser
		return a.loadView(viewUser)

	case copyResultMsg:
		if msg.err != nil {
			a.logger.Warn("copy to clipboard failed", zap.String("control", msg.control), zap.Error(msg.err))
			var cmd tea.Cmd
			a.toasts, cmd = a.toasts.push(copyFailedText, toastError)
			return a, cmd
		}
		var restore, toastCmd tea.Cmd
		a.marks, restore = a.marks.mark(msg.control, a.opts.CopyFeedback)
		a.toasts, toastCmd = a.toasts.push(copiedText, toastSuccess)
		return a, tea.Batch(restore, toastCmd)

	case copyRestoreMsg:
		a.marks = a.marks.restore(msg)
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.helpOpen {
		items := helpItems(a.opts.APIBase)
		switch key {
		case "h", "esc":
			a.helpOpen = false
		case "q":
			return a, tea.Quit
		case "j", "down":
			if a.helpCursor < len(items)-1 {
				a.helpCursor++
			}
		case "k", "up":
			if a.helpCursor > 0 {
				a.helpCursor--
			}
		case "enter":
			return a.open(items[a.helpCursor].url)
		}
		return a, nil
	}

	if a.search.focused {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "h", "?":
		a.helpOpen = true
		a.helpCursor = 0
		return a, nil
	case "/":
		a.search = a.search.focus()
		return a, nil
	case "1":
		return a.switchTab(viewHome)
	case "2":
		return a.switchTab(viewSkills)
	case "3":
		return a.switchTab(viewTrending)
	case "4":
		return a.switchTab(viewHot)
	case "esc":
		if a.search.open {
			a.search = a.search.close()
			return a, nil
		}
		return a.pop()
	case "r":
		return a.loadView(a.view)
	case "enter":
		if a.view == viewDetail {
			return a, nil
		}
		if s, ok := a.selected(); ok {
			return a, openDetail(s)
		}
		return a, nil
	case "u":
		if s, ok := a.selected(); ok {
			if owner := s.Owner(); owner != "" {
				return a, openUser(owner)
			}
		}
		return a, nil
	case "c":
		return a, a.copySelected()
	case "o":
		if s, ok := a.selected(); ok {
			link := s.GitHubLink()
			if link == "#" {
				var cmd tea.Cmd
				a.toasts, cmd = a.toasts.push("No GitHub link for this skill", toastError)
				return a, cmd
			}
			return a.open(link)
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.view {
	case viewHome:
		a.home, cmd = a.home.Update(msg)
	case viewSkills:
		a.skills, cmd = a.skills.Update(msg)
	case viewTrending:
		a.trending, cmd = a.trending.Update(msg)
	case viewHot:
		a.hot, cmd = a.hot.Update(msg)
	case viewDetail:
		a.detail, cmd = a.detail.Update(msg)
	case viewUser:
		a.user, cmd = a.user.Update(msg)
	}
	return a, cmd
}

func (a App) open(link string) (tea.Model, tea.Cmd) {
	if err := openURL(link); err != nil {
		a.logger.Warn("open browser failed", zap.String("url", link), zap.Error(err))
		var cmd tea.Cmd
		a.toasts, cmd = a.toasts.push("Failed to open browser", toastError)
		return a, cmd
	}
	return a, nil
}

// selected is the skill under the cursor of the current view.
func (a App) selected() (domain.Skill, bool) {
	switch a.view {
	case viewHome:
		return a.home.selected()
	case viewSkills:
		return a.skills.selected()
	case viewTrending:
		return a.trending.selected()
	case viewHot:
		return a.hot.selected()
	case viewDetail:
		return a.detail.skill()
	case viewUser:
		return a.user.selected()
	}
	return domain.Skill{}, false
}

// copySelected copies the install command of the current card or detail.
func (a App) copySelected() tea.Cmd {
	if a.view == viewDetail {
		text, ok := a.detail.installCommand()
		if !ok {
			return nil
		}
		s, _ := a.detail.skill()
		return copyText(controlKey(detailScope, s), text)
	}
	s, ok := a.selected()
	if !ok {
		return nil
	}
	return copyText(controlKey(a.scope(), s), s.SourceURL())
}

// scope names the card list of the current view, for copy controls.
func (a App) scope() string {
	switch a.view {
	case viewSkills:
		return a.skills.scope()
	case viewTrending:
		return a.trending.scope()
	case viewHot:
		return a.hot.scope()
	case viewUser:
		return page.RouteUser.String()
	case viewDetail:
		return detailScope
	}
	return page.RouteHome.String()
}

func (a App) bodySize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: a.height - chromeLines}
}

// chromeLines is header(2) + tabs(1) + search(1) + help(1).
const chromeLines = 5

func (a App) View() string {
	header := centered(renderShimmerLogo(a.frame), a.width)
	if a.latest != "" {
		header += "\n" + centered(accentStyle.Render("update available: "+a.latest), a.width)
	} else {
		header += "\n"
	}

	tabs := []struct {
		key  string
		name string
		v    view
	}{
		{"1", "Home", viewHome},
		{"2", "Skills", viewSkills},
		{"3", "Trending", viewTrending},
		{"4", "Hot", viewHot},
	}
	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	var body, help string
	switch a.view {
	case viewHome:
		body = a.home.View(a.marks)
	case viewSkills:
		body = a.skills.View(a.marks)
	case viewTrending:
		body = a.trending.View(a.marks)
	case viewHot:
		body = a.hot.View(a.marks)
	case viewDetail:
		body = a.detail.View(a.marks)
	case viewUser:
		body = a.user.View(a.marks)
	}
	switch a.view {
	case viewDetail:
		help = " " + helpEntry("j/k", "scroll") + "  " + helpEntry("c", "copy") + "  " + helpEntry("u", "owner") + "  " + helpEntry("o", "github") + "  " + helpEntry("esc", "back")
	default:
		help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("u", "owner") + "  " + helpEntry("c", "copy") + "  " + helpEntry("/", "search") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	}
	if a.search.focused {
		help = " " + helpEntry("type", "search") + "  " + helpEntry("↑/↓", "select") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	if a.helpOpen {
		body = helpView(helpItems(a.opts.APIBase), a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	if panel := a.search.panelView(); panel != "" && !a.helpOpen {
		body = panel + "\n" + body
	}

	bodyHeight := a.height - chromeLines
	toasts := a.toasts.View(a.width)
	if toasts != "" {
		bodyHeight -= strings.Count(toasts, "\n") + 1
	}
	body = strings.TrimRight(truncateToHeight(body, bodyHeight), "\n")
	if toasts != "" {
		body += "\n" + toasts
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, tabBar.String(), a.search.inputView(), body, help)
}
