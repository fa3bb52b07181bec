package tui

import (
	"github.com/MKhiriev/dingus-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page as its first message instead of calling Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// pageMsg is implemented by results of asynchronous page commands. RootModel
// delivers them to the page that issued the command even if the user has
// navigated elsewhere in the meantime.
type pageMsg interface {
	targetPage() string
}

type assignmentsSubmittedMsg struct {
	outcome models.Outcome
	err     error
}

func (assignmentsSubmittedMsg) targetPage() string { return pageDevices }

type configSubmittedMsg struct {
	outcome models.Outcome
	err     error
}

func (configSubmittedMsg) targetPage() string { return pageConfig }

type copiedMsg struct {
	page string
	what string
	err  error
}

func (m copiedMsg) targetPage() string { return m.page }

type clearStatusMsg struct {
	page string
}

func (m clearStatusMsg) targetPage() string { return m.page }

// toastMsg asks RootModel to show an outcome notification.
type toastMsg struct {
	outcome models.Outcome
}

// toastExpiredMsg hides the toast with the matching id. Ids keep a late tick
// of an earlier toast from hiding a newer one.
type toastExpiredMsg struct {
	id int
}
