package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"memoku_backend/internals/features/documents/document/dto"
	"memoku_backend/internals/features/documents/workflow"
)

// Reviewer yang bertindak di luar tahapnya harus ditolak sebagai
// masalah wewenang (403), bukan payload tidak valid (422).
func TestDenyTransitionMengembalikanForbidden(t *testing.T) {
	app := fiber.New()
	app.Post("/x", func(c *fiber.Ctx) error {
		return denyTransition(c, workflow.StatusDraft, workflow.StatusAcceptByMO)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("baca body: %v", err)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if !strings.Contains(body.Message, workflow.StatusDraft) ||
		!strings.Contains(body.Message, workflow.StatusAcceptByMO) {
		t.Errorf("pesan harus menyebut status asal dan tujuan: %q", body.Message)
	}
}

func TestApplyLatestNotes(t *testing.T) {
	withNote := uuid.New()
	withoutNote := uuid.New()
	resps := []dto.DocumentResponse{
		{DocumentID: withNote},
		{DocumentID: withoutNote},
	}
	notes := map[uuid.UUID]string{
		withNote: "Perbaiki lampiran halaman 2",
	}

	applyLatestNotes(resps, notes)

	if resps[0].LatestNote == nil || *resps[0].LatestNote != "Perbaiki lampiran halaman 2" {
		t.Errorf("dokumen dengan feedback harus membawa catatan terbaru: %+v", resps[0].LatestNote)
	}
	if resps[1].LatestNote != nil {
		t.Errorf("dokumen tanpa feedback tidak boleh punya catatan: %q", *resps[1].LatestNote)
	}
}
