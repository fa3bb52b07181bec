package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/dingus-admin/internal/service"
	"github.com/MKhiriev/dingus-admin/internal/validators"
	"github.com/MKhiriev/dingus-admin/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type configField struct {
	label       string
	placeholder string
	charLimit   int
}

var configFields = []configField{
	{label: "Certificate file", placeholder: "/etc/dingus/cert.pem", charLimit: 256},
	{label: "Key file", placeholder: "/etc/dingus/key.pem", charLimit: 256},
	{label: "Wild Apricot account ID", placeholder: "123456", charLimit: 10},
	{label: "Contact filter query", placeholder: "'Membership status' eq 'Active'", charLimit: 512},
	{label: "Tag ID field name", placeholder: "Tag ID", charLimit: 128},
	{label: "Training field name", placeholder: "Trainings", charLimit: 128},
	{label: "Loki hook URL", placeholder: "http://loki:3100", charLimit: 256},
}

const (
	fieldCertFile = iota
	fieldKeyFile
	fieldAccountID
	fieldContactFilter
	fieldTagID
	fieldTraining
	fieldLokiURL
)

// ConfigModel is the server configuration form. tab moves between inputs
// and enter submits.
type ConfigModel struct {
	ctx context.Context
	svc service.ClientConfigService

	inputs     []textinput.Model
	focus      int
	submitting bool
	invalid    bool
}

func NewConfigModel(ctx context.Context, svc service.ClientConfigService) *ConfigModel {
	inputs := make([]textinput.Model, len(configFields))
	for i, f := range configFields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = f.charLimit
		in.Width = 40
		inputs[i] = in
	}
	inputs[0].Focus()

	return &ConfigModel{ctx: ctx, svc: svc, inputs: inputs}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *ConfigModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(configSubmittedMsg); ok {
		if errors.Is(result.err, service.ErrSubmitInProgress) {
			return m, nil
		}
		m.submitting = false
		m.invalid = result.outcome.Kind == models.OutcomeValidationFailure
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdSubmit(m.form())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ConfigModel) View() string {
	labelWidth := 0
	for _, f := range configFields {
		labelWidth = max(labelWidth, len(f.label))
	}

	var b strings.Builder
	b.WriteString(padRight("Field", labelWidth))
	b.WriteString(" │ Value\n")
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")

	for i, f := range configFields {
		label := padRight(f.label, labelWidth)
		if i == fieldAccountID && m.invalid {
			label = invalidRowStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Save...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	return renderPage("SERVER CONFIGURATION", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

// form reads the inputs. An account id that does not parse is sent to the
// service as zero so the validator reports it.
func (m *ConfigModel) form() models.ConfigForm {
	accountID, err := validators.ParseAccountID(m.inputs[fieldAccountID].Value())
	if err != nil {
		accountID = 0
	}

	return models.ConfigForm{
		CertFile:             strings.TrimSpace(m.inputs[fieldCertFile].Value()),
		KeyFile:              strings.TrimSpace(m.inputs[fieldKeyFile].Value()),
		WildApricotAccountID: accountID,
		ContactFilterQuery:   strings.TrimSpace(m.inputs[fieldContactFilter].Value()),
		TagIDFieldName:       strings.TrimSpace(m.inputs[fieldTagID].Value()),
		TrainingFieldName:    strings.TrimSpace(m.inputs[fieldTraining].Value()),
		LokiHookURL:          strings.TrimSpace(m.inputs[fieldLokiURL].Value()),
	}
}

// SetForm pre-fills the inputs, e.g. from a previous submission.
func (m *ConfigModel) SetForm(form models.ConfigForm) {
	m.inputs[fieldCertFile].SetValue(form.CertFile)
	m.inputs[fieldKeyFile].SetValue(form.KeyFile)
	if form.WildApricotAccountID > 0 {
		m.inputs[fieldAccountID].SetValue(strconv.Itoa(form.WildApricotAccountID))
	}
	m.inputs[fieldContactFilter].SetValue(form.ContactFilterQuery)
	m.inputs[fieldTagID].SetValue(form.TagIDFieldName)
	m.inputs[fieldTraining].SetValue(form.TrainingFieldName)
	m.inputs[fieldLokiURL].SetValue(form.LokiHookURL)
}

func (m *ConfigModel) cmdSubmit(form models.ConfigForm) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		outcome, err := svc.Submit(ctx, form)
		return configSubmittedMsg{outcome: outcome, err: err}
	}
}

func (m *ConfigModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ConfigModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
