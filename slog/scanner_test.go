package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docserve"
	"github.com/fwojciec/docserve/mock"
	docslog "github.com/fwojciec/docserve/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("logs scan with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scanner{
			ScanFn: func(ctx context.Context) ([]*docserve.Document, error) {
				return []*docserve.Document{
					{RelPath: "a.md"},
					{RelPath: "b.md"},
				}, nil
			},
		}

		s := docslog.NewLoggingScanner(inner, logger)
		docs, err := s.Scan(context.Background())

		require.NoError(t, err)
		assert.Len(t, docs, 2)
		output := buf.String()
		assert.Contains(t, output, "document scan")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scanner{
			ScanFn: func(ctx context.Context) ([]*docserve.Document, error) {
				return nil, errors.New("permission denied")
			},
		}

		s := docslog.NewLoggingScanner(inner, logger)
		_, err := s.Scan(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "document scan")
		assert.Contains(t, output, "err=\"permission denied\"")
	})
}
