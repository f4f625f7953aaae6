package workflow

import (
	"memoku_backend/internals/constants"
)

// Status dokumen (nilai persis seperti yang disimpan di DB).
const (
	StatusDraft               = "Draft"
	StatusOnProcess           = "On Process"
	StatusRevisionByAmoRegion = "Revision by AMO Region"
	StatusRevisionByMO        = "Revision by MO"
	StatusRevisionByCCH       = "Revision by CCH"
	StatusAcceptByAmoRegion   = "Accept by AMO Region"
	StatusAcceptByMO          = "Accept by MO"
	StatusAcceptByCCH         = "Accept by CCH"
)

// AllStatuses: himpunan lengkap status. Tidak ada string lain yang boleh
// dipersist ke kolom document_status.
var AllStatuses = []string{
	StatusDraft,
	StatusOnProcess,
	StatusRevisionByAmoRegion,
	StatusRevisionByMO,
	StatusRevisionByCCH,
	StatusAcceptByAmoRegion,
	StatusAcceptByMO,
	StatusAcceptByCCH,
}

type transitionKey struct {
	Role string
	From string
}

// transitions: SATU tabel {role, status sekarang} → status tujuan yang sah.
// Semua controller review memakai tabel ini, tidak ada daftar per-endpoint.
var transitions = map[transitionKey][]string{
	// AMO Area: submit draft & perbaiki revisi (loop kembali ke On Process)
	{constants.RoleAmoArea, StatusDraft}:               {StatusOnProcess},
	{constants.RoleAmoArea, StatusRevisionByAmoRegion}: {StatusDraft, StatusOnProcess},
	{constants.RoleAmoArea, StatusRevisionByMO}:        {StatusDraft, StatusOnProcess},
	{constants.RoleAmoArea, StatusRevisionByCCH}:       {StatusDraft, StatusOnProcess},

	// Rantai review berurutan
	{constants.RoleAmoRegion, StatusOnProcess}:  {StatusAcceptByAmoRegion, StatusRevisionByAmoRegion},
	{constants.RoleMO, StatusAcceptByAmoRegion}: {StatusAcceptByMO, StatusRevisionByMO},
	{constants.RoleCCH, StatusAcceptByMO}:       {StatusAcceptByCCH, StatusRevisionByCCH},
}

// IsValidStatus memeriksa keanggotaan pada himpunan status.
func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// AllowedNext: daftar status tujuan yang boleh diambil role dari status asal.
// Kosong berarti role tidak punya aksi pada status itu.
func AllowedNext(role, from string) []string {
	next := transitions[transitionKey{Role: role, From: from}]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// CanTransition: satu-satunya cek otorisasi transisi status.
func CanTransition(role, from, to string) bool {
	for _, n := range transitions[transitionKey{Role: role, From: from}] {
		if n == to {
			return true
		}
	}
	return false
}

// ActionableStatuses: status asal yang bisa dieksekusi oleh role
// (isi antrean "butuh keputusan").
func ActionableStatuses(role string) []string {
	var out []string
	for _, s := range AllStatuses {
		if len(transitions[transitionKey{Role: role, From: s}]) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// VisibleStatuses: status yang tampil di antrean list/preview per role.
// Reviewer melihat antrean aksinya plus status yang dia sendiri hasilkan;
// AMO Area melihat seluruh status (dibatasi kepemilikan di controller).
func VisibleStatuses(role string) []string {
	switch role {
	case constants.RoleAmoRegion:
		return []string{StatusOnProcess, StatusAcceptByAmoRegion, StatusRevisionByAmoRegion}
	case constants.RoleMO:
		return []string{StatusAcceptByAmoRegion, StatusAcceptByMO, StatusRevisionByMO}
	case constants.RoleCCH:
		return []string{StatusAcceptByMO, StatusAcceptByCCH, StatusRevisionByCCH}
	case constants.RoleAmoArea:
		out := make([]string, len(AllStatuses))
		copy(out, AllStatuses)
		return out
	default:
		return nil
	}
}

// IsVisibleTo: gate preview/list per role.
func IsVisibleTo(role, status string) bool {
	for _, s := range VisibleStatuses(role) {
		if s == status {
			return true
		}
	}
	return false
}

// EditableByUploader: dokumen boleh diedit ulang oleh pengunggah asalnya.
func EditableByUploader(status string) bool {
	switch status {
	case StatusDraft, StatusRevisionByAmoRegion, StatusRevisionByMO, StatusRevisionByCCH:
		return true
	default:
		return false
	}
}

// SignatureAllowed: penempatan tanda tangan hanya setelah Accept by CCH.
func SignatureAllowed(status string) bool {
	return status == StatusAcceptByCCH
}

// NormalizeRequestedStatus: status upload selain literal "On Process"
// di-collapse menjadi Draft.
func NormalizeRequestedStatus(requested string) string {
	if requested == StatusOnProcess {
		return StatusOnProcess
	}
	return StatusDraft
}
