package models

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		total      int
		wantPage   int
		wantPages  int
		wantOffset int
	}{
		{name: "first page", page: 1, perPage: 20, total: 45, wantPage: 1, wantPages: 3, wantOffset: 0},
		{name: "middle page", page: 2, perPage: 20, total: 45, wantPage: 2, wantPages: 3, wantOffset: 20},
		{name: "page past the end clamps to last", page: 9, perPage: 20, total: 45, wantPage: 3, wantPages: 3, wantOffset: 40},
		{name: "zero page clamps to first", page: 0, perPage: 20, total: 45, wantPage: 1, wantPages: 3, wantOffset: 0},
		{name: "empty list still has one page", page: 1, perPage: 20, total: 0, wantPage: 1, wantPages: 1, wantOffset: 0},
		{name: "exact multiple has no partial page", page: 2, perPage: 20, total: 40, wantPage: 2, wantPages: 2, wantOffset: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.perPage, tt.total)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", p.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestPaginationNavigation(t *testing.T) {
	p := NewPagination(2, 20, 60)
	if !p.HasPrev() || !p.HasNext() {
		t.Error("middle page should have both neighbours")
	}
	if p.PrevPage() != 1 || p.NextPage() != 3 {
		t.Errorf("PrevPage/NextPage = %d/%d, want 1/3", p.PrevPage(), p.NextPage())
	}

	first := NewPagination(1, 20, 60)
	if first.HasPrev() {
		t.Error("first page should not have a previous page")
	}
	if first.PrevPage() != 1 {
		t.Errorf("PrevPage on first page = %d, want 1", first.PrevPage())
	}

	last := NewPagination(3, 20, 60)
	if last.HasNext() {
		t.Error("last page should not have a next page")
	}
	if last.NextPage() != 3 {
		t.Errorf("NextPage on last page = %d, want 3", last.NextPage())
	}
}
