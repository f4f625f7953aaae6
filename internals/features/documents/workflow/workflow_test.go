package workflow

import (
	"testing"

	"memoku_backend/internals/constants"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		role string
		from string
		to   string
		want bool
	}{
		// amo_area mengirim draft
		{"area kirim draft", constants.RoleAmoArea, StatusDraft, StatusOnProcess, true},
		{"area tidak bisa accept sendiri", constants.RoleAmoArea, StatusDraft, StatusAcceptByAmoRegion, false},
		{"area resubmit revisi region", constants.RoleAmoArea, StatusRevisionByAmoRegion, StatusOnProcess, true},
		{"area tarik revisi mo ke draft", constants.RoleAmoArea, StatusRevisionByMO, StatusDraft, true},
		{"area resubmit revisi cch", constants.RoleAmoArea, StatusRevisionByCCH, StatusOnProcess, true},
		{"area tidak bisa ubah on process", constants.RoleAmoArea, StatusOnProcess, StatusDraft, false},

		// amo_region memutuskan dari On Process
		{"region accept", constants.RoleAmoRegion, StatusOnProcess, StatusAcceptByAmoRegion, true},
		{"region minta revisi", constants.RoleAmoRegion, StatusOnProcess, StatusRevisionByAmoRegion, true},
		{"region tidak bisa lompat ke accept mo", constants.RoleAmoRegion, StatusOnProcess, StatusAcceptByMO, false},
		{"region tidak bisa proses draft", constants.RoleAmoRegion, StatusDraft, StatusAcceptByAmoRegion, false},
		{"region tidak bisa putuskan dua kali", constants.RoleAmoRegion, StatusAcceptByAmoRegion, StatusRevisionByAmoRegion, false},

		// mo memutuskan dari Accept by AMO Region
		{"mo accept", constants.RoleMO, StatusAcceptByAmoRegion, StatusAcceptByMO, true},
		{"mo minta revisi", constants.RoleMO, StatusAcceptByAmoRegion, StatusRevisionByMO, true},
		{"mo tidak bisa proses on process", constants.RoleMO, StatusOnProcess, StatusAcceptByMO, false},
		{"mo tidak bisa lompat ke cch", constants.RoleMO, StatusAcceptByAmoRegion, StatusAcceptByCCH, false},

		// cch memutuskan dari Accept by MO
		{"cch accept final", constants.RoleCCH, StatusAcceptByMO, StatusAcceptByCCH, true},
		{"cch minta revisi", constants.RoleCCH, StatusAcceptByMO, StatusRevisionByCCH, true},
		{"cch tidak bisa proses tahap region", constants.RoleCCH, StatusOnProcess, StatusAcceptByCCH, false},
		{"accept final tidak bisa mundur", constants.RoleCCH, StatusAcceptByCCH, StatusRevisionByCCH, false},

		// role / status asing
		{"role asing", "admin", StatusDraft, StatusOnProcess, false},
		{"status asing", constants.RoleAmoArea, "Pending", StatusOnProcess, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.role, tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%q, %q, %q) = %v, want %v", tc.role, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

// Semua entri tabel transisi harus merujuk role dan status yang dikenal.
func TestTransitionTableClosure(t *testing.T) {
	for key, nexts := range transitions {
		if !constants.IsValidRole(key.Role) {
			t.Errorf("role tidak dikenal di tabel transisi: %q", key.Role)
		}
		if !IsValidStatus(key.From) {
			t.Errorf("status asal tidak dikenal: %q", key.From)
		}
		if len(nexts) == 0 {
			t.Errorf("entri %v tanpa status tujuan", key)
		}
		for _, to := range nexts {
			if !IsValidStatus(to) {
				t.Errorf("status tujuan tidak dikenal: %q (dari %v)", to, key)
			}
		}
	}
}

func TestAllowedNextCopies(t *testing.T) {
	got := AllowedNext(constants.RoleAmoRegion, StatusOnProcess)
	if len(got) != 2 {
		t.Fatalf("AllowedNext region/on-process: %v", got)
	}
	got[0] = "korup"
	again := AllowedNext(constants.RoleAmoRegion, StatusOnProcess)
	if again[0] == "korup" {
		t.Error("AllowedNext mengembalikan slice internal, bukan salinan")
	}
}

func TestActionableStatuses(t *testing.T) {
	cases := []struct {
		role string
		want []string
	}{
		{constants.RoleAmoArea, []string{StatusDraft, StatusRevisionByAmoRegion, StatusRevisionByMO, StatusRevisionByCCH}},
		{constants.RoleAmoRegion, []string{StatusOnProcess}},
		{constants.RoleMO, []string{StatusAcceptByAmoRegion}},
		{constants.RoleCCH, []string{StatusAcceptByMO}},
	}
	for _, tc := range cases {
		got := ActionableStatuses(tc.role)
		if len(got) != len(tc.want) {
			t.Errorf("ActionableStatuses(%q) = %v, want %v", tc.role, got, tc.want)
			continue
		}
		seen := map[string]bool{}
		for _, s := range got {
			seen[s] = true
		}
		for _, s := range tc.want {
			if !seen[s] {
				t.Errorf("ActionableStatuses(%q) kehilangan %q", tc.role, s)
			}
		}
	}
}

func TestVisibility(t *testing.T) {
	if !IsVisibleTo(constants.RoleAmoRegion, StatusOnProcess) {
		t.Error("region harus melihat On Process")
	}
	if IsVisibleTo(constants.RoleAmoRegion, StatusDraft) {
		t.Error("region tidak boleh melihat Draft")
	}
	if IsVisibleTo(constants.RoleMO, StatusOnProcess) {
		t.Error("mo tidak boleh melihat On Process")
	}
	if !IsVisibleTo(constants.RoleMO, StatusAcceptByAmoRegion) {
		t.Error("mo harus melihat Accept by AMO Region")
	}
	if !IsVisibleTo(constants.RoleCCH, StatusAcceptByCCH) {
		t.Error("cch harus melihat hasil finalnya sendiri")
	}
	for _, s := range AllStatuses {
		if !IsVisibleTo(constants.RoleAmoArea, s) {
			t.Errorf("pengunggah harus melihat semua status, kehilangan %q", s)
		}
	}
}

func TestEditableByUploader(t *testing.T) {
	editable := []string{StatusDraft, StatusRevisionByAmoRegion, StatusRevisionByMO, StatusRevisionByCCH}
	for _, s := range editable {
		if !EditableByUploader(s) {
			t.Errorf("%q harus bisa diedit pengunggah", s)
		}
	}
	locked := []string{StatusOnProcess, StatusAcceptByAmoRegion, StatusAcceptByMO, StatusAcceptByCCH}
	for _, s := range locked {
		if EditableByUploader(s) {
			t.Errorf("%q tidak boleh bisa diedit pengunggah", s)
		}
	}
}

func TestSignatureAllowed(t *testing.T) {
	for _, s := range AllStatuses {
		want := s == StatusAcceptByCCH
		if got := SignatureAllowed(s); got != want {
			t.Errorf("SignatureAllowed(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestNormalizeRequestedStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{StatusOnProcess, StatusOnProcess},
		{StatusDraft, StatusDraft},
		{"", StatusDraft},
		{"on process", StatusDraft},    // huruf harus persis
		{"Accept by CCH", StatusDraft}, // tidak bisa menembak status akhir
		{"apapun", StatusDraft},
	}
	for _, tc := range cases {
		if got := NormalizeRequestedStatus(tc.in); got != tc.want {
			t.Errorf("NormalizeRequestedStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
