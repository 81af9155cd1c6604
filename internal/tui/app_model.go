package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/access"
	"github.com/MKhiriev/go-doc-vault/internal/branch"
	"github.com/MKhiriev/go-doc-vault/internal/validators"
	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenBranches
	screenBranchDetail
	screenFormDoc
	screenFormBranch
	screenFormGrant
)

type appModel struct {
	ctx       context.Context
	acl       access.AccessControl
	eng       branch.Engine
	sess      *access.Session
	validator validators.Validator

	currentScreen screen

	list         listModel
	detail       detailModel
	branchList   branchListModel
	branchDetail branchDetailModel
	formDoc      formDocModel
	formBranch   formBranchModel
	formGrant    formGrantModel

	err            error
	showError      bool
	errorOverlay   errorOverlayModel
	showConfirm    bool
	confirm        confirmModel
	pendingConfirm tea.Cmd
}

func newAppModel(ctx context.Context, acl access.AccessControl, eng branch.Engine, sess *access.Session) appModel {
	return appModel{
		ctx:           ctx,
		acl:           acl,
		eng:           eng,
		sess:          sess,
		validator:     validators.NewDocumentValidator(),
		currentScreen: screenList,
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadList()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				cmd := m.pendingConfirm
				m.pendingConfirm = nil
				return m, cmd
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingConfirm = nil
			}
			return m, nil
		}
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.entries = msg.entries
		if m.list.idx >= len(m.list.entries) {
			m.list.idx = len(m.list.entries) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case syncDoneMsg:
		m.list.syncing = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.added > 0 {
			m.list.status = fmt.Sprintf("Новых документов: %d", msg.added)
			return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
		}
		return m, m.cmdLoadList()
	case docLoadedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.detail = detailModel{entry: msg.entry, doc: msg.doc, title: msg.title, content: msg.content}
		m.currentScreen = screenDetail
		return m, nil
	case docSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		return m, m.cmdLoadList()
	case docDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		return m, m.cmdLoadList()
	case grantChangedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenDetail
		return m, m.cmdOpenDocument(m.detail.entry)
	case branchesLoadedMsg:
		m.branchList.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.branchList.branches = msg.branches
		if m.branchList.idx >= len(m.branchList.branches) {
			m.branchList.idx = len(m.branchList.branches) - 1
		}
		if m.branchList.idx < 0 {
			m.branchList.idx = 0
		}
		return m, nil
	case branchOpenedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.branchDetail = branchDetailModel{branch: msg.branch, content: msg.content, diff: msg.diff}
		m.currentScreen = screenBranchDetail
		return m, nil
	case branchSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.branchList.loading = true
		m.currentScreen = screenBranches
		return m, m.cmdLoadBranches()
	case branchActionMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, m.cmdOpenBranch(msg.branch)
	case mergeDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, m.cmdOpenDocument(m.detail.entry)
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Скопировано!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenBranches:
		return m.updateBranches(msg)
	case screenBranchDetail:
		return m.updateBranchDetail(msg)
	case screenFormDoc:
		return m.updateFormDoc(msg)
	case screenFormBranch:
		return m.updateFormBranch(msg)
	case screenFormGrant:
		return m.updateFormGrant(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenBranches:
		body = m.branchList.View()
	case screenBranchDetail:
		body = m.branchDetail.View()
	case screenFormDoc:
		body = m.formDoc.View()
	case screenFormBranch:
		body = m.formBranch.View()
	case screenFormGrant:
		body = m.formGrant.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.formDoc.submitting = v
	m.formBranch.submitting = v
	m.formGrant.submitting = v
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.entries)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			entry, ok := m.list.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdOpenDocument(entry)
		case key.Matches(msg, keys.newItem):
			m.formDoc = newFormDocModel()
			m.currentScreen = screenFormDoc
		case key.Matches(msg, keys.sync):
			if m.list.syncing {
				return m, nil
			}
			m.list.syncing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdSync())
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.syncing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		m.formBranch = newFormBranchModel(m.detail.content)
		m.currentScreen = screenFormBranch
		return m, nil
	case key.Matches(keyMsg, keys.branches):
		m.branchList = branchListModel{loading: true}
		m.currentScreen = screenBranches
		return m, m.cmdLoadBranches()
	case key.Matches(keyMsg, keys.grant):
		m.formGrant = newFormGrantModel(false)
		m.currentScreen = screenFormGrant
		return m, nil
	case key.Matches(keyMsg, keys.revoke):
		m.formGrant = newFormGrantModel(true)
		m.currentScreen = screenFormGrant
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = "Удалить \"" + m.detail.title + "\" из списка?"
		m.pendingConfirm = m.cmdDeleteDocument(m.detail.doc.ID)
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.content == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.content)
	}

	return m, nil
}

func (m appModel) updateBranches(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.up):
		if m.branchList.idx > 0 {
			m.branchList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.branchList.idx < len(m.branchList.branches)-1 {
			m.branchList.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		b, ok := m.branchList.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdOpenBranch(b)
	}

	return m, nil
}

func (m appModel) updateBranchDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	b := m.branchDetail.branch

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.branchList.loading = true
		m.currentScreen = screenBranches
		return m, m.cmdLoadBranches()
	case key.Matches(keyMsg, keys.edit):
		if b.Status != models.BranchCreated || b.AuthorID != m.sess.UserID() {
			return m, nil
		}
		m.formBranch = newFormBranchEditModel(b.ID, m.branchDetail.content)
		m.currentScreen = screenFormBranch
		return m, nil
	case key.Matches(keyMsg, keys.submit):
		if b.Status != models.BranchCreated {
			return m, nil
		}
		return m, m.cmdSubmitBranch(b)
	case key.Matches(keyMsg, keys.merge):
		if b.Status != models.BranchSubmitted {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = "Слить черновик в документ?"
		m.pendingConfirm = m.cmdMergeBranch(b)
		return m, nil
	case key.Matches(keyMsg, keys.reject):
		if b.Status.Terminal() {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = "Отклонить черновик?"
		m.pendingConfirm = m.cmdRejectBranch(b)
		return m, nil
	case key.Matches(keyMsg, keys.rebase):
		if b.Status.Terminal() {
			return m, nil
		}
		return m, m.cmdRebaseBranch(b)
	}

	return m, nil
}

func (m appModel) updateFormDoc(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formDoc.focus = cycleFocus(m.formDoc.inputs, m.formDoc.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formDoc.focus = cycleFocus(m.formDoc.inputs, m.formDoc.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			draft := m.formDoc.toDraft()
			if err := m.validator.Validate(m.ctx, draft); err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			m.formDoc.submitting = true
			return m, m.cmdCreateDocument(draft)
		}
	}

	var cmd tea.Cmd
	m.formDoc.inputs[m.formDoc.focus], cmd = m.formDoc.inputs[m.formDoc.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormBranch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.formBranch.editing {
				m.currentScreen = screenBranchDetail
			} else {
				m.currentScreen = screenDetail
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			if m.formBranch.editing {
				return m, nil
			}
			m.formBranch.focus = cycleFocus(m.formBranch.inputs, m.formBranch.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			if m.formBranch.editing {
				return m, nil
			}
			m.formBranch.focus = cycleFocus(m.formBranch.inputs, m.formBranch.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			content := m.formBranch.inputs[1].Value()
			m.formBranch.submitting = true
			if m.formBranch.editing {
				return m, m.cmdUpdateBranch(m.formBranch.branchID, content)
			}
			desc := strings.TrimSpace(m.formBranch.inputs[0].Value())
			return m, m.cmdCreateBranch(desc, content)
		}
	}

	var cmd tea.Cmd
	m.formBranch.inputs[m.formBranch.focus], cmd = m.formBranch.inputs[m.formBranch.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormGrant(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formGrant.focus = cycleFocus(m.formGrant.inputs, m.formGrant.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formGrant.focus = cycleFocus(m.formGrant.inputs, m.formGrant.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			granteeID := m.formGrant.granteeID()
			if m.formGrant.revoking {
				if granteeID == "" {
					m.showErrorf("Укажите пользователя")
					return m, nil
				}
				m.showConfirm = true
				m.confirm.message = "Отозвать доступ у \"" + granteeID + "\"? Ключ документа будет сменён."
				m.pendingConfirm = m.cmdRevokeAccess(granteeID)
				return m, nil
			}
			role, ok := m.formGrant.role()
			if !ok {
				m.showErrorf("Роль должна быть read или write")
				return m, nil
			}
			grant := models.AccessGrant{GranteeID: granteeID, Role: role}
			if err := m.validator.Validate(m.ctx, grant); err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			m.formGrant.submitting = true
			return m, m.cmdGrantAccess(granteeID, role)
		}
	}

	var cmd tea.Cmd
	m.formGrant.inputs[m.formGrant.focus], cmd = m.formGrant.inputs[m.formGrant.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx, acl, sess := m.ctx, m.acl, m.sess
	return func() tea.Msg {
		entries, err := acl.ListDocuments(ctx, sess)
		return listLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	ctx, acl, sess := m.ctx, m.acl, m.sess
	return func() tea.Msg {
		added, err := acl.SyncInbox(ctx, sess)
		return syncDoneMsg{added: len(added), err: err}
	}
}

func (m appModel) cmdOpenDocument(entry models.IndexEntry) tea.Cmd {
	ctx, acl, sess := m.ctx, m.acl, m.sess
	return func() tea.Msg {
		doc, err := acl.GetDocument(ctx, sess, entry.DocumentID)
		if err != nil {
			return docLoadedMsg{err: err}
		}
		title, err := acl.GetDocumentTitle(sess, doc)
		if err != nil {
			return docLoadedMsg{err: err}
		}
		content, err := acl.GetDocumentPlaintext(sess, doc)
		if err != nil {
			return docLoadedMsg{err: err}
		}
		return docLoadedMsg{entry: entry, doc: doc, title: title, content: content}
	}
}

func (m appModel) cmdCreateDocument(draft models.DocumentDraft) tea.Cmd {
	ctx, acl, sess := m.ctx, m.acl, m.sess
	return func() tea.Msg {
		_, err := acl.CreateDocument(ctx, sess, draft.Title, draft.Content)
		return docSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteDocument(docID string) tea.Cmd {
	ctx, acl, sess := m.ctx, m.acl, m.sess
	return func() tea.Msg {
		err := acl.DeleteDocument(ctx, sess, docID)
		return docDeletedMsg{err: err}
	}
}

func (m appModel) cmdGrantAccess(granteeID string, role models.Role) tea.Cmd {
	ctx, acl, sess := m.ctx, m.acl, m.sess
	docID := m.detail.doc.ID
	return func() tea.Msg {
		grantee, err := acl.LookupIdentity(ctx, granteeID)
		if err != nil {
			return grantChangedMsg{err: err}
		}
		doc, err := acl.GrantAccess(ctx, sess, docID, grantee.UserID, grantee.EncryptionPub, role)
		return grantChangedMsg{doc: doc, err: err}
	}
}

func (m appModel) cmdRevokeAccess(granteeID string) tea.Cmd {
	ctx, acl, sess := m.ctx, m.acl, m.sess
	docID := m.detail.doc.ID
	return func() tea.Msg {
		doc, err := acl.RevokeAccess(ctx, sess, docID, granteeID)
		return grantChangedMsg{doc: doc, err: err}
	}
}

func (m appModel) cmdLoadBranches() tea.Cmd {
	ctx, eng, sess := m.ctx, m.eng, m.sess
	docID := m.detail.doc.ID
	return func() tea.Msg {
		branches, err := eng.ListBranches(ctx, sess, docID)
		return branchesLoadedMsg{branches: branches, err: err}
	}
}

func (m appModel) cmdOpenBranch(b models.Branch) tea.Cmd {
	ctx, acl, eng, sess := m.ctx, m.acl, m.eng, m.sess
	return func() tea.Msg {
		doc, err := acl.GetDocument(ctx, sess, b.DocumentID)
		if err != nil {
			return branchOpenedMsg{err: err}
		}
		content, err := eng.GetBranchPlaintext(sess, doc, b)
		if err != nil {
			return branchOpenedMsg{err: err}
		}
		diff, err := eng.Diff(ctx, sess, b.DocumentID, b.ID)
		if err != nil {
			return branchOpenedMsg{err: err}
		}
		return branchOpenedMsg{branch: b, content: content, diff: diff}
	}
}

func (m appModel) cmdCreateBranch(description, content string) tea.Cmd {
	ctx, eng, sess := m.ctx, m.eng, m.sess
	docID := m.detail.doc.ID
	return func() tea.Msg {
		b, err := eng.CreateBranch(ctx, sess, docID, description)
		if err != nil {
			return branchSavedMsg{err: err}
		}
		if _, err = eng.UpdateBranch(ctx, sess, docID, b.ID, content); err != nil {
			return branchSavedMsg{err: err}
		}
		return branchSavedMsg{}
	}
}

func (m appModel) cmdUpdateBranch(branchID, content string) tea.Cmd {
	ctx, eng, sess := m.ctx, m.eng, m.sess
	docID := m.detail.doc.ID
	return func() tea.Msg {
		_, err := eng.UpdateBranch(ctx, sess, docID, branchID, content)
		return branchSavedMsg{err: err}
	}
}

func (m appModel) cmdSubmitBranch(b models.Branch) tea.Cmd {
	ctx, eng, sess := m.ctx, m.eng, m.sess
	return func() tea.Msg {
		updated, err := eng.Submit(ctx, sess, b.DocumentID, b.ID)
		return branchActionMsg{branch: updated, err: err}
	}
}

func (m appModel) cmdRejectBranch(b models.Branch) tea.Cmd {
	ctx, eng, sess := m.ctx, m.eng, m.sess
	return func() tea.Msg {
		updated, err := eng.Reject(ctx, sess, b.DocumentID, b.ID, "")
		return branchActionMsg{branch: updated, err: err}
	}
}

func (m appModel) cmdRebaseBranch(b models.Branch) tea.Cmd {
	ctx, eng, sess := m.ctx, m.eng, m.sess
	return func() tea.Msg {
		updated, err := eng.Rebase(ctx, sess, b.DocumentID, b.ID)
		return branchActionMsg{branch: updated, err: err}
	}
}

func (m appModel) cmdMergeBranch(b models.Branch) tea.Cmd {
	ctx, eng, sess := m.ctx, m.eng, m.sess
	return func() tea.Msg {
		_, _, err := eng.Merge(ctx, sess, b.DocumentID, b.ID)
		return mergeDoneMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return docLoadedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
