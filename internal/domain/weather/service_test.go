package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubClient struct {
	snapshot Snapshot
	err      error
}

func (s *stubClient) Current(context.Context, float64, float64) (Snapshot, error) {
	return s.snapshot, s.err
}

func TestServiceCurrentSuccess(t *testing.T) {
	want := Snapshot{Temperature: 28.4, Humidity: 72, Description: "scattered clouds"}
	svc := NewService(&stubClient{snapshot: want}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got := svc.Current(context.Background(), 1.35, 103.82)
	require.NotNil(t, got)
	require.Equal(t, want, *got)
}

func TestServiceCurrentRecoversToNil(t *testing.T) {
	svc := NewService(&stubClient{err: errors.New("timeout")}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Nil(t, svc.Current(context.Background(), 1.35, 103.82))
}

func TestDefaultSnapshot(t *testing.T) {
	snapshot := DefaultSnapshot()
	require.Equal(t, 25.0, snapshot.Temperature)
	require.Equal(t, 60, snapshot.Humidity)
	require.Equal(t, "moderate conditions", snapshot.Description)
}
