package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-doc-vault/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrNotFound:        http.StatusNotFound,
	store.ErrVersionConflict: http.StatusConflict,
	store.ErrEmptyPath:       http.StatusBadRequest,

	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
