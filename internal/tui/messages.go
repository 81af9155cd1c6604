package tui

import (
	"github.com/MKhiriev/go-doc-vault/models"
)

type listLoadedMsg struct {
	entries []models.IndexEntry
	err     error
}

type syncDoneMsg struct {
	added int
	err   error
}

type docLoadedMsg struct {
	entry   models.IndexEntry
	doc     models.Document
	title   string
	content string
	err     error
}

type docSavedMsg struct {
	err error
}

type docDeletedMsg struct {
	err error
}

type grantChangedMsg struct {
	doc models.Document
	err error
}

type branchesLoadedMsg struct {
	branches []models.Branch
	err      error
}

type branchOpenedMsg struct {
	branch  models.Branch
	content string
	diff    models.Diff
	err     error
}

type branchSavedMsg struct {
	err error
}

type branchActionMsg struct {
	branch models.Branch
	err    error
}

type mergeDoneMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
