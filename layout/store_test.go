package layout

import (
	"reflect"
	"testing"

	"venue-feedback-server/models"
)

func TestAddTableSequentialNumbers(t *testing.T) {
	s := NewStore(1, 1000, 800, nil)

	first := s.AddTable()
	second := s.AddTable()

	if first.TableNumber != 1 || second.TableNumber != 2 {
		t.Errorf("Table numbers = %d, %d, want 1, 2", first.TableNumber, second.TableNumber)
	}
	if !first.IsNew || first.TempID == "" {
		t.Errorf("New table should carry a temp id and the new marker: %+v", first)
	}
	if first.TempID == second.TempID {
		t.Error("Temp ids must be locally unique")
	}
}

func TestDragStopConvertsToPercent(t *testing.T) {
	s := NewStore(1, 1000, 800, nil)
	added := s.AddTable()

	if !s.DragStop(added.TempID, 250, 400) {
		t.Fatal("DragStop should find the table by temp id")
	}

	got := s.Tables()[0]
	if got.XPercent != 25 || got.YPercent != 50 {
		t.Errorf("Converted to %.1f%%, %.1f%%, want 25%%, 50%%", got.XPercent, got.YPercent)
	}
	if got.XPx != 250 || got.YPx != 400 {
		t.Errorf("Pixel coordinates should track the drop point, got %.0f, %.0f", got.XPx, got.YPx)
	}
}

func TestDragStopClampsOutOfBounds(t *testing.T) {
	s := NewStore(1, 1000, 800, nil)
	added := s.AddTable()

	s.DragStop(added.TempID, -50, 900)

	got := s.Tables()[0]
	if got.XPercent != 0 || got.YPercent != 100 {
		t.Errorf("Out-of-bounds drop should clamp to [0,100], got %.1f, %.1f", got.XPercent, got.YPercent)
	}
}

func TestStoreSeedsFromPersistedLayout(t *testing.T) {
	persisted := []models.TablePosition{
		{ID: 7, VenueID: 1, TableNumber: 1, Shape: models.ShapeCircle, XPercent: 10, YPercent: 20},
	}
	s := NewStore(1, 1000, 500, persisted)

	got := s.Tables()[0]
	if got.XPx != 100 || got.YPx != 100 {
		t.Errorf("Seeded pixels = %.0f, %.0f, want 100, 100", got.XPx, got.YPx)
	}

	// Persisted tables are addressed by their record key
	if !s.DragStop(RecordKey(7), 500, 250) {
		t.Error("DragStop should find a persisted table by record key")
	}
}

func TestSetShape(t *testing.T) {
	persisted := []models.TablePosition{
		{ID: 4, VenueID: 1, TableNumber: 1, Shape: models.ShapeSquare, XPercent: 10, YPercent: 10},
	}
	s := NewStore(1, 1000, 800, persisted)
	added := s.AddTable()

	if !s.SetShape(added.TempID, models.ShapeCircle) {
		t.Fatal("SetShape should find an unsaved table by temp id")
	}
	if !s.SetShape(RecordKey(4), models.ShapeLong) {
		t.Fatal("SetShape should find a persisted table by record key")
	}
	if s.SetShape("no-such-id", models.ShapeCircle) {
		t.Error("SetShape should report a miss for an unknown id")
	}

	snap := s.Snapshot()
	if snap[0].Shape != models.ShapeLong || snap[1].Shape != models.ShapeCircle {
		t.Errorf("Shapes after edit = %s, %s, want long, circle", snap[0].Shape, snap[1].Shape)
	}
}

func TestSnapshotStripsTransientFields(t *testing.T) {
	s := NewStore(3, 1000, 800, nil)
	added := s.AddTable()
	s.DragStop(added.TempID, 100, 80)

	snap := s.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("Expected 1 position, got %d", len(snap))
	}

	p := snap[0]
	if p.ID != 0 {
		t.Errorf("New table must not carry a persisted id, got %d", p.ID)
	}
	if p.VenueID != 3 || p.TableNumber != 1 {
		t.Errorf("Snapshot position = %+v", p)
	}
	if p.XPercent != 10 || p.YPercent != 10 {
		t.Errorf("Snapshot coordinates = %.1f, %.1f, want 10, 10", p.XPercent, p.YPercent)
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	persisted := []models.TablePosition{
		{ID: 1, VenueID: 1, TableNumber: 1, Shape: models.ShapeSquare, XPercent: 25, YPercent: 75},
		{ID: 2, VenueID: 1, TableNumber: 2, Shape: models.ShapeLong, XPercent: 60, YPercent: 40},
	}
	s := NewStore(1, 1200, 900, persisted)

	first := s.Snapshot()
	second := s.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Snapshots without intervening edits must match:\n%+v\n%+v", first, second)
	}
	if len(first) != 2 {
		t.Errorf("Snapshot must not duplicate or drop entries, got %d", len(first))
	}
}

func TestResizeRecomputesPixels(t *testing.T) {
	persisted := []models.TablePosition{
		{ID: 1, VenueID: 1, TableNumber: 1, XPercent: 50, YPercent: 50},
	}
	s := NewStore(1, 1000, 800, persisted)

	s.Resize(500, 400)

	got := s.Tables()[0]
	if got.XPx != 250 || got.YPx != 200 {
		t.Errorf("Resized pixels = %.0f, %.0f, want 250, 200", got.XPx, got.YPx)
	}
	// Percentages are authoritative and unchanged
	if got.XPercent != 50 || got.YPercent != 50 {
		t.Errorf("Resize must not change percentages, got %.1f, %.1f", got.XPercent, got.YPercent)
	}
}

func TestClear(t *testing.T) {
	s := NewStore(1, 1000, 800, []models.TablePosition{{ID: 1, VenueID: 1, TableNumber: 1}})
	s.Clear()

	if len(s.Tables()) != 0 || len(s.Snapshot()) != 0 {
		t.Error("Clear should drop every table locally")
	}
}
