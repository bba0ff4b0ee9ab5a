package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

type row struct {
	at time.Time
	id uuid.UUID
}

func rowKey(r row) Cursor {
	return Cursor{CreatedAt: r.at, ID: r.id}
}

func newestFirst(n int) []row {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{at: base.Add(-time.Duration(i) * time.Minute), id: uuid.New()}
	}
	return rows
}

func TestNormalizeLimit(t *testing.T) {
	cases := map[int]int{0: DefaultLimit, -3: DefaultLimit, 5: 5, MaxLimit + 1: MaxLimit}
	for in, want := range cases {
		if got := NormalizeLimit(in); got != want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestCursorRoundTrip(t *testing.T) {
	want := Cursor{CreatedAt: time.Date(2026, 5, 6, 7, 8, 9, 10, time.UTC), ID: uuid.New()}
	got, err := ParseCursor(EncodeCursor(want))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || got.ID != want.ID {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}

	if c, err := ParseCursor("  "); err != nil || c != nil {
		t.Fatalf("empty cursor should parse to nil, got %v %v", c, err)
	}
	if _, err := ParseCursor("%%%"); err == nil {
		t.Fatalf("expected error for malformed cursor")
	}
}

func TestSliceWalksAllPages(t *testing.T) {
	rows := newestFirst(7)

	var seen []row
	params := Params{Limit: 3}
	for pages := 0; ; pages++ {
		if pages > 5 {
			t.Fatalf("pagination did not terminate")
		}
		page, err := Slice(rows, params, rowKey)
		if err != nil {
			t.Fatalf("slice: %v", err)
		}
		seen = append(seen, page.Items...)
		if page.NextCursor == "" {
			break
		}
		params.Cursor = page.NextCursor
	}

	if len(seen) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(seen))
	}
	for i := range rows {
		if seen[i].id != rows[i].id {
			t.Fatalf("row %d out of order", i)
		}
	}
}

func TestSliceLastPageHasNoCursor(t *testing.T) {
	page, err := Slice(newestFirst(3), Params{Limit: 3}, rowKey)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if len(page.Items) != 3 || page.NextCursor != "" {
		t.Fatalf("unexpected page %+v", page)
	}
}
