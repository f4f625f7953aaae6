package constants

import "testing"

func TestContentTypeFromExt(t *testing.T) {
	cases := []struct {
		file string
		want string
	}{
		{"laporan.pdf", "application/pdf"},
		{"LAPORAN.PDF", "application/pdf"},
		{"memo.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"memo.doc", "application/msword"},
		{"ttd.png", "image/png"},
		{"ttd.jpeg", "image/jpeg"},
		{"ttd.webp", "image/webp"},
		{"tanpa-ekstensi", "application/octet-stream"},
		{"aneh.xyz", "application/octet-stream"},
	}
	for _, tc := range cases {
		if got := ContentTypeFromExt(tc.file); got != tc.want {
			t.Errorf("ContentTypeFromExt(%q) = %q, want %q", tc.file, got, tc.want)
		}
	}
}

func TestIsPDFExt(t *testing.T) {
	if !IsPDFExt("memo.pdf") || !IsPDFExt("MEMO.Pdf") {
		t.Error("ekstensi pdf harus dikenali tanpa peduli kapital")
	}
	if IsPDFExt("memo.docx") || IsPDFExt("memo") {
		t.Error("selain pdf harus ditolak")
	}
}

func TestIsImageExt(t *testing.T) {
	for _, f := range []string{"a.png", "a.jpg", "a.JPEG", "a.webp"} {
		if !IsImageExt(f) {
			t.Errorf("%q harus dikenali sebagai gambar", f)
		}
	}
	for _, f := range []string{"a.pdf", "a.gif", "a"} {
		if IsImageExt(f) {
			t.Errorf("%q bukan format tanda tangan yang didukung", f)
		}
	}
}

func TestRoleHelpers(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Errorf("role %q harus valid", r)
		}
	}
	if IsValidRole("admin") {
		t.Error("role asing harus ditolak")
	}
	if !IsProtectedRole(RoleMO) || !IsProtectedRole(RoleCCH) {
		t.Error("mo dan cch harus terlindungi dari penghapusan")
	}
	if IsProtectedRole(RoleAmoArea) || IsProtectedRole(RoleAmoRegion) {
		t.Error("amo_area/amo_region tidak termasuk role terlindungi")
	}
}
