package tui

import (
	"github.com/MKhiriev/dingus-admin/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) owns the toast shown for submission outcomes
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model
	toast   toastModel

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, toast toastModel) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
		toast:     toast,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toastMsg:
		var cmd tea.Cmd
		r.toast, cmd = r.toast.show(msg.outcome)
		return r, cmd
	case toastExpiredMsg:
		r.toast = r.toast.expire(msg)
		return r, nil
	case pageMsg:
		return r.deliver(msg.targetPage(), msg)
	}

	// Global hotkey for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.toast.visible && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter)) {
			r.toast = r.toast.dismiss()
			return r, nil
		}

		switch {
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// deliver hands msg to the named page whether or not it is active.
func (r RootModel) deliver(page string, msg tea.Msg) (tea.Model, tea.Cmd) {
	target, ok := r.pages[page]
	if !ok {
		return r, nil
	}

	updated, cmd := target.Update(msg)
	r.pages[page] = updated
	if target == r.current {
		r.current = updated
	}
	return r, cmd
}

func (r RootModel) View() string {
	var view string
	switch {
	case r.showBuildInfo:
		view = renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		view = renderPage("DINGUS ADMIN", "", "")
	default:
		view = r.current.View()
	}

	if toast := r.toast.View(); toast != "" {
		view += "\n\n" + toast
	}
	return appStyle.Render(view)
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
