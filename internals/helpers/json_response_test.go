package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	if p.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("halaman tengah harus punya next dan prev: %+v", p)
	}

	last := BuildPaginationFromPage(45, 3, 20)
	if last.HasNext {
		t.Error("halaman terakhir tidak punya next")
	}

	empty := BuildPaginationFromPage(0, 1, 20)
	if empty.TotalPages != 1 || empty.HasNext || empty.HasPrev {
		t.Errorf("hasil kosong tetap satu halaman: %+v", empty)
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})

	cases := []struct {
		url     string
		page    int
		perPage int
		offset  int
	}{
		{"/x", 1, 20, 0},
		{"/x?page=3&per_page=10", 3, 10, 20},
		{"/x?page=2&limit=50", 2, 50, 50}, // limit sebagai alias
		{"/x?per_page=9999", 1, 100, 0},   // dibatasi maxPerPage
		{"/x?page=-4&per_page=0", 1, 20, 0},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", tc.url, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test(%q): %v", tc.url, err)
		}
		resp.Body.Close()
		if got.Page != tc.page || got.PerPage != tc.perPage || got.Offset != tc.offset {
			t.Errorf("%q → %+v, want page=%d perPage=%d offset=%d", tc.url, got, tc.page, tc.perPage, tc.offset)
		}
	}
}
