package dto

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"memoku_backend/internals/features/documents/workflow"
)

func TestCreateDocumentRequestResolve(t *testing.T) {
	req := CreateDocumentRequest{
		Judul:           "  Laporan Operasional Q1  ",
		PeriodeMulai:    "2026-01-01",
		PeriodeSelesai:  "2026-03-31",
		RequestedStatus: "On Process",
	}
	req.Normalize()
	if errs := req.Resolve(); errs != nil {
		t.Fatalf("Resolve gagal: %v", errs)
	}
	if req.Judul != "Laporan Operasional Q1" {
		t.Errorf("judul tidak di-trim: %q", req.Judul)
	}
	if req.Status != workflow.StatusOnProcess {
		t.Errorf("status = %q, want On Process", req.Status)
	}
	if !req.PeriodStart.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("period start = %v", req.PeriodStart)
	}
}

func TestCreateDocumentRequestResolveCollapsesStatus(t *testing.T) {
	for _, in := range []string{"", "Draft", "Accept by CCH", "on process"} {
		req := CreateDocumentRequest{
			PeriodeMulai:    "2026-01-01",
			PeriodeSelesai:  "2026-01-31",
			RequestedStatus: in,
		}
		if errs := req.Resolve(); errs != nil {
			t.Fatalf("Resolve(%q) gagal: %v", in, errs)
		}
		if req.Status != workflow.StatusDraft {
			t.Errorf("status %q harus collapse ke Draft, dapat %q", in, req.Status)
		}
	}
}

func TestCreateDocumentRequestResolveBadDates(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		field string
	}{
		{"format salah", "01-01-2026", "2026-01-31", "periode_mulai"},
		{"selesai salah", "2026-01-01", "31/01/2026", "periode_selesai"},
		{"selesai sebelum mulai", "2026-02-01", "2026-01-01", "periode_selesai"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreateDocumentRequest{PeriodeMulai: tc.start, PeriodeSelesai: tc.end}
			errs := req.Resolve()
			if errs == nil {
				t.Fatal("Resolve harus gagal")
			}
			if len(errs[tc.field]) == 0 {
				t.Errorf("error harus di field %q, dapat %v", tc.field, errs)
			}
		})
	}
}

func storedDate(t *testing.T, s string) datatypes.Date {
	t.Helper()
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		t.Fatalf("tanggal uji %q tidak valid: %v", s, err)
	}
	return datatypes.Date(parsed)
}

func TestUpdateDocumentRequestUpdates(t *testing.T) {
	req := UpdateDocumentRequest{
		Judul:           "Revisi Laporan",
		PeriodeMulai:    "2026-02-01",
		PeriodeSelesai:  "2026-02-28",
		RequestedStatus: "On Process",
	}
	req.Normalize()
	updates, errs := req.Updates(storedDate(t, "2026-01-01"), storedDate(t, "2026-01-31"))
	if len(errs) > 0 {
		t.Fatalf("Updates gagal: %v", errs)
	}
	for _, col := range []string{"document_title", "document_period_start", "document_period_end", "document_status"} {
		if _, ok := updates[col]; !ok {
			t.Errorf("kolom %q hilang dari updates", col)
		}
	}
	if _, ok := updates["document_category_id"]; ok {
		t.Error("category tidak dikirim, tidak boleh ikut di-update")
	}
}

func TestUpdateDocumentRequestUpdatesRejectsBadInput(t *testing.T) {
	req := UpdateDocumentRequest{
		Judul:           "ab",
		CategoryID:      "bukan-uuid",
		RequestedStatus: "Pending",
	}
	_, errs := req.Updates(storedDate(t, "2026-01-01"), storedDate(t, "2026-01-31"))
	for _, field := range []string{"judul", "category_id", "status"} {
		if len(errs[field]) == 0 {
			t.Errorf("field %q harus ditolak, errs = %v", field, errs)
		}
	}
}

// Partial update yang hanya membawa satu tanggal tetap harus dibandingkan
// dengan sisi periode yang tersimpan di dokumen.
func TestUpdateDocumentRequestUpdatesChecksStoredPeriod(t *testing.T) {
	start := storedDate(t, "2026-01-04")
	end := storedDate(t, "2026-12-31")

	// selesai baru jatuh sebelum mulai tersimpan
	req := UpdateDocumentRequest{PeriodeSelesai: "2025-01-01"}
	updates, errs := req.Updates(start, end)
	if len(errs["periode_selesai"]) == 0 {
		t.Errorf("periode_selesai sebelum periode_mulai tersimpan harus ditolak, errs = %v", errs)
	}
	if _, ok := updates["document_period_end"]; len(errs) == 0 && ok {
		t.Error("kolom tidak boleh ditulis saat periode tidak valid")
	}

	// mulai baru melompati selesai tersimpan
	req = UpdateDocumentRequest{PeriodeMulai: "2027-06-01"}
	if _, errs := req.Updates(start, end); len(errs["periode_mulai"]) == 0 {
		t.Errorf("periode_mulai setelah periode_selesai tersimpan harus ditolak, errs = %v", errs)
	}

	// satu tanggal yang masih berada di dalam periode tersimpan sah
	req = UpdateDocumentRequest{PeriodeSelesai: "2026-06-30"}
	updates, errs = req.Updates(start, end)
	if len(errs) > 0 {
		t.Fatalf("tanggal valid ditolak: %v", errs)
	}
	if _, ok := updates["document_period_end"]; !ok {
		t.Error("document_period_end hilang dari updates")
	}
}

func TestSignatureRequestValidatePlacement(t *testing.T) {
	base := SignatureRequest{
		PageNumber:    1,
		X:             10,
		Y:             20,
		Width:         100,
		Height:        50,
		PreviewWidth:  800,
		PreviewHeight: 600,
	}
	if err := base.ValidatePlacement(); err != nil {
		t.Fatalf("penempatan valid ditolak: %v", err)
	}

	neg := base
	neg.X = -1
	if err := neg.ValidatePlacement(); err == nil {
		t.Error("x negatif harus ditolak")
	}

	out := base
	out.X = 750
	if err := out.ValidatePlacement(); err == nil {
		t.Error("kotak keluar preview harus ditolak")
	}

	tall := base
	tall.Y = 580
	if err := tall.ValidatePlacement(); err == nil {
		t.Error("kotak melewati tinggi preview harus ditolak")
	}
}
