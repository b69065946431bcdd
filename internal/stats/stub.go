package stats

import (
	"context"
	"errors"
)

type StubExporter struct {
	ExportFunc func(ctx context.Context, folder string) (string, error)
	DirFunc    func(folder string) string
}

var _ Exporter = (*StubExporter)(nil)

func (s *StubExporter) Export(ctx context.Context, folder string) (string, error) {
	if s.ExportFunc == nil {
		return "", errors.New("Export() not implemented by stub")
	}
	return s.ExportFunc(ctx, folder)
}

func (s *StubExporter) Dir(folder string) string {
	if s.DirFunc == nil {
		return folder
	}
	return s.DirFunc(folder)
}
