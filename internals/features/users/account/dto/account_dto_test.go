package dto

import (
	"testing"

	"github.com/google/uuid"

	"memoku_backend/internals/constants"
)

func ptrUUID(u uuid.UUID) *uuid.UUID { return &u }

func TestCreateAccountJurisdiction(t *testing.T) {
	areaA := uuid.New()
	areaB := uuid.New()

	cases := []struct {
		name    string
		role    string
		areaID  *uuid.UUID
		areaIDs []uuid.UUID
		wantErr bool
	}{
		{"amo_area dengan area", constants.RoleAmoArea, ptrUUID(areaA), nil, false},
		{"amo_area tanpa area", constants.RoleAmoArea, nil, nil, true},
		{"amo_area dengan area_ids", constants.RoleAmoArea, ptrUUID(areaA), []uuid.UUID{areaB}, true},

		{"amo_region dengan area_ids", constants.RoleAmoRegion, nil, []uuid.UUID{areaA, areaB}, false},
		{"amo_region tanpa area_ids", constants.RoleAmoRegion, nil, nil, false},
		{"amo_region dengan area_id", constants.RoleAmoRegion, ptrUUID(areaA), nil, true},
		{"amo_region area_ids duplikat", constants.RoleAmoRegion, nil, []uuid.UUID{areaA, areaA}, true},
		{"amo_region area_ids nil uuid", constants.RoleAmoRegion, nil, []uuid.UUID{uuid.Nil}, true},

		{"mo polos", constants.RoleMO, nil, nil, false},
		{"mo dengan area_id", constants.RoleMO, ptrUUID(areaA), nil, true},
		{"cch polos", constants.RoleCCH, nil, nil, false},
		{"cch dengan area_ids", constants.RoleCCH, nil, []uuid.UUID{areaA}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreateAccountRequest{
				UserName: "tester",
				FullName: "Tester",
				Email:    "tester@memoku.id",
				Password: "rahasia123",
				Role:     tc.role,
				AreaID:   tc.areaID,
				AreaIDs:  tc.areaIDs,
			}
			err := req.ValidateJurisdiction()
			if tc.wantErr && err == nil {
				t.Error("harus error, dapat nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("harus lolos, dapat: %v", err)
			}
		})
	}
}

func TestCreateAccountToModel(t *testing.T) {
	area := uuid.New()

	req := CreateAccountRequest{
		UserName: "  area.jaksel ",
		FullName: " AMO Area Jakarta Selatan ",
		Email:    " Area.Jaksel@Memoku.ID ",
		Password: "rahasia123",
		Role:     constants.RoleAmoArea,
		AreaID:   &area,
	}
	req.Normalize()

	m := req.ToModel()
	if m.UserName != "area.jaksel" {
		t.Errorf("user_name tidak di-trim: %q", m.UserName)
	}
	if m.UserEmail != "area.jaksel@memoku.id" {
		t.Errorf("email tidak dinormalkan: %q", m.UserEmail)
	}
	if m.UserAreaID == nil || *m.UserAreaID != area {
		t.Error("area_id hilang untuk amo_area")
	}
	if !m.UserIsActive {
		t.Error("akun baru harus aktif secara default")
	}
}

func TestCreateAccountToModelDropsAreaForReviewer(t *testing.T) {
	req := CreateAccountRequest{
		UserName: "mo.pusat",
		FullName: "Manajer Operasional",
		Email:    "mo@memoku.id",
		Password: "rahasia123",
		Role:     constants.RoleMO,
	}
	m := req.ToModel()
	if m.UserAreaID != nil {
		t.Error("role mo tidak boleh membawa area_id")
	}
}

func TestUpdateAccountJurisdictionUsesCurrentRole(t *testing.T) {
	area := uuid.New()

	// Role tidak dikirim → pakai role lama.
	req := UpdateAccountRequest{AreaID: ptrUUID(area)}
	if err := req.ValidateJurisdiction(constants.RoleAmoArea); err != nil {
		t.Errorf("amo_area boleh ganti area: %v", err)
	}
	if err := req.ValidateJurisdiction(constants.RoleMO); err == nil {
		t.Error("mo tidak boleh diberi area_id")
	}
}
