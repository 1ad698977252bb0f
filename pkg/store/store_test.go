package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/framechart/pkg/chart"
	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/figure"
	"github.com/matzehuels/framechart/pkg/geom"
)

func sampleLayout(t *testing.T) figure.Layout {
	t.Helper()
	f := figure.New(400, 300)
	line, err := chart.NewLine([]geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	f.AddPlot().Canvas.Add(line)
	l, err := f.Fit()
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	rec := NewRecord("dochash", sampleLayout(t), time.Hour)

	if _, err := s.Get(ctx, rec.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Fatalf("Get before Put error = %v, want NOT_FOUND", err)
	}
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DocumentHash != "dochash" || got.Layout.Width != 400 {
		t.Errorf("Get returned %+v", got)
	}
	if n := len(got.Layout.Plots[0].Canvas.Charts[0].Points); n != 3 {
		t.Errorf("stored chart has %d points, want 3", n)
	}

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get after Delete error = %v, want NOT_FOUND", err)
	}

	expired := NewRecord("old", sampleLayout(t), time.Hour)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	if err := s.Put(ctx, expired); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, expired.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("expired record error = %v, want NOT_FOUND", err)
	}
	if err := s.Cleanup(ctx); err != nil {
		t.Errorf("Cleanup: %v", err)
	}
	if err := s.Close(ctx); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	testStore(t, s)
	if s.Len() != 0 {
		t.Errorf("Cleanup should remove expired records, %d left", s.Len())
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	testStore(t, s)
}

func TestFileStoreRejectsPathIDs(t *testing.T) {
	s, _ := NewFileStore(t.TempDir())
	if _, err := s.Get(context.Background(), "../etc/passwd"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Get(path) error = %v, want INVALID_INPUT", err)
	}
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord("h", figure.Layout{}, 0)
	if _, err := uuid.Parse(rec.ID); err != nil {
		t.Errorf("ID %q is not a uuid", rec.ID)
	}
	if got := rec.ExpiresAt.Sub(rec.CreatedAt); got != DefaultTTL {
		t.Errorf("ttl = %v, want %v", got, DefaultTTL)
	}
	if rec.IsExpired() {
		t.Error("fresh record should not be expired")
	}
}

func TestRecordBSONRoundTrip(t *testing.T) {
	rec := NewRecord("h", sampleLayout(t), time.Hour)
	data, err := bson.Marshal(rec)
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}
	var back Record
	if err := bson.Unmarshal(data, &back); err != nil {
		t.Fatalf("bson.Unmarshal: %v", err)
	}
	if back.ID != rec.ID {
		t.Errorf("_id = %q, want %q", back.ID, rec.ID)
	}
	if back.Layout.Scale != rec.Layout.Scale || len(back.Layout.Plots) != 1 {
		t.Errorf("layout did not survive: %+v", back.Layout)
	}
	got := back.Layout.Plots[0].Canvas.XAxis.Marks
	want := rec.Layout.Plots[0].Canvas.XAxis.Marks
	if len(got) != len(want) || got[0].Label != want[0].Label {
		t.Errorf("marks = %v, want %v", got, want)
	}
}
