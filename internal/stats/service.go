package stats

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/event"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
)

// EventReader is the read side of the event store.
type EventReader interface {
	RoomBooked(ctx context.Context) ([]event.RoomBookedEvent, error)
	UserRegistered(ctx context.Context) ([]event.UserRegisteredEvent, error)
}

type Service struct {
	events  EventReader
	baseDir string
	metrics *metrics.Metrics
}

func NewService(events EventReader, cfg *config.Stats, m *metrics.Metrics) *Service {
	return &Service{
		events:  events,
		baseDir: cfg.BaseDir,
		metrics: m,
	}
}

// Dir resolves folder against the configured base directory.
// Absolute folders are used as given.
func (s *Service) Dir(folder string) string {
	folder = filepath.FromSlash(folder)
	if filepath.IsAbs(folder) {
		return filepath.Clean(folder)
	}
	return filepath.Join(s.baseDir, folder)
}

func (s *Service) within(dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(s.baseDir), dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Export writes both event collections as CSV files into folder and
// returns the directory it wrote to. Relative folders may not leave the
// base directory.
func (s *Service) Export(ctx context.Context, folder string) (dir string, err error) {
	defer func() { s.record(err) }()

	dir = s.Dir(folder)
	if !filepath.IsAbs(filepath.FromSlash(folder)) && !s.within(dir) {
		return "", fmt.Errorf("%w: %s", ErrOutsideBaseDir, folder)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrCreateDir, dir, err)
	}

	booked, err := s.events.RoomBooked(ctx)
	if err != nil {
		return "", fmt.Errorf("read room booked events: %w", err)
	}

	rows := make([][]string, 0, len(booked))
	for _, e := range booked {
		rows = append(rows, []string{strconv.FormatInt(e.UserID, 10), e.CheckInDate, e.CheckOutDate})
	}
	if err := writeCSV(filepath.Join(dir, RoomBookedFile), []string{"userId", "checkInDate", "checkOutDate"}, rows); err != nil {
		return "", err
	}

	registered, err := s.events.UserRegistered(ctx)
	if err != nil {
		return "", fmt.Errorf("read user registered events: %w", err)
	}

	rows = make([][]string, 0, len(registered))
	for _, e := range registered {
		rows = append(rows, []string{strconv.FormatInt(e.UserID, 10)})
	}
	if err := writeCSV(filepath.Join(dir, UserRegisteredFile), []string{"userId"}, rows); err != nil {
		return "", err
	}

	slog.Info("Statistics exported.", "dir", dir, "room_booked", len(booked), "user_registered", len(registered))
	return dir, nil
}

func (s *Service) record(err error) {
	if s.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.metrics.StatsExportsTotal.WithLabelValues(result).Inc()
}

func writeCSV(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows to %s: %w", path, err)
	}
	return nil
}
