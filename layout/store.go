package layout

import (
	"strconv"

	"github.com/google/uuid"

	"venue-feedback-server/models"
)

// Default placement for a freshly added table, centered-ish so it is
// visible before the operator drags it anywhere.
const (
	defaultXPercent = 50.0
	defaultYPercent = 50.0
)

// Table is one table position while the layout is being edited. Persisted
// tables carry their database id in RecordID; tables added during the edit
// carry a temporary uuid in TempID and IsNew until the layout is saved.
// Pixel coordinates are transient and derived from the measured container.
type Table struct {
	RecordID    uint              `json:"record_id,omitempty"`
	TempID      string            `json:"temp_id,omitempty"`
	TableNumber int               `json:"table_number"`
	Shape       models.TableShape `json:"shape"`
	XPercent    float64           `json:"x_percent"`
	YPercent    float64           `json:"y_percent"`
	XPx         float64           `json:"x_px"`
	YPx         float64           `json:"y_px"`
	IsNew       bool              `json:"is_new"`
}

// Store holds a venue's table layout while an operator edits it. Edits are
// purely in-memory; nothing touches persistence until Snapshot is handed to
// the save path. There is no undo, and concurrent editors are not
// reconciled: the last saved layout wins.
type Store struct {
	venueID uint
	width   float64
	height  float64
	tables  []Table
}

// NewStore seeds an edit store from the persisted layout, converting the
// stored percentages into pixels for the given container dimensions.
func NewStore(venueID uint, width, height float64, persisted []models.TablePosition) *Store {
	s := &Store{venueID: venueID, width: width, height: height}
	for _, p := range persisted {
		s.tables = append(s.tables, Table{
			RecordID:    p.ID,
			TableNumber: p.TableNumber,
			Shape:       p.Shape,
			XPercent:    p.XPercent,
			YPercent:    p.YPercent,
			XPx:         p.XPercent / 100 * width,
			YPx:         p.YPercent / 100 * height,
		})
	}
	return s
}

// Tables returns the current edit state.
func (s *Store) Tables() []Table {
	return s.tables
}

// AddTable appends a new table at the default position with the next
// sequential table number. The entry gets a temporary id and is only
// durable after Snapshot is saved.
func (s *Store) AddTable() Table {
	t := Table{
		TempID:      uuid.NewString(),
		TableNumber: len(s.tables) + 1,
		Shape:       models.ShapeSquare,
		XPercent:    defaultXPercent,
		YPercent:    defaultYPercent,
		XPx:         defaultXPercent / 100 * s.width,
		YPx:         defaultYPercent / 100 * s.height,
		IsNew:       true,
	}
	s.tables = append(s.tables, t)
	return t
}

// DragStop records where a drag ended, converting the pixel drop point to
// percentages against the container and clamping to [0,100]. Reports
// whether a table matched the id.
func (s *Store) DragStop(id string, px, py float64) bool {
	for i := range s.tables {
		if !s.tables[i].matches(id) {
			continue
		}
		s.tables[i].XPx = px
		s.tables[i].YPx = py
		s.tables[i].XPercent = clampPercent(pixelsToPercent(px, s.width))
		s.tables[i].YPercent = clampPercent(pixelsToPercent(py, s.height))
		return true
	}
	return false
}

// SetShape changes a table's shape in place.
func (s *Store) SetShape(id string, shape models.TableShape) bool {
	for i := range s.tables {
		if s.tables[i].matches(id) {
			s.tables[i].Shape = shape
			return true
		}
	}
	return false
}

// Clear drops every table locally. The persisted layout is untouched until
// the next save.
func (s *Store) Clear() {
	s.tables = nil
}

// Resize remeasures the container and recomputes pixel coordinates from the
// authoritative percentages.
func (s *Store) Resize(width, height float64) {
	s.width = width
	s.height = height
	for i := range s.tables {
		s.tables[i].XPx = s.tables[i].XPercent / 100 * width
		s.tables[i].YPx = s.tables[i].YPercent / 100 * height
	}
}

// Snapshot produces the persistable layout: transient pixel coordinates and
// temporary ids are stripped, percentages are the only coordinates kept.
// Calling Snapshot twice without edits yields an identical list, so saving
// it twice upserts the same rows.
func (s *Store) Snapshot() []models.TablePosition {
	out := make([]models.TablePosition, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, models.TablePosition{
			ID:          t.RecordID, // zero for new tables, assigned on upsert
			VenueID:     s.venueID,
			TableNumber: t.TableNumber,
			Shape:       t.Shape,
			XPercent:    t.XPercent,
			YPercent:    t.YPercent,
		})
	}
	return out
}

func (t *Table) matches(id string) bool {
	if t.TempID != "" && t.TempID == id {
		return true
	}
	return t.RecordID != 0 && id == recordKey(t.RecordID)
}

// recordKey is the edit-surface id for a persisted table: "t<id>".
func recordKey(id uint) string {
	return "t" + strconv.FormatUint(uint64(id), 10)
}

// RecordKey exposes the edit-surface id for a persisted table.
func RecordKey(id uint) string { return recordKey(id) }

func pixelsToPercent(px, dimension float64) float64 {
	if dimension <= 0 {
		return 0
	}
	return px / dimension * 100
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
