package inspect_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/plus3/tetrita/inspect"
	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*inspect.Server, *inspect.Publisher, *loop.Scheduler) {
	t.Helper()
	g := tetris.New(tetris.WithSeed(11), tetris.WithStartState(tetris.StartQuery))
	pub := inspect.NewPublisher(g)

	sched := loop.NewScheduler(g)
	sched.Register(&loop.TickSystem{Game: g})
	sched.Register(loop.SystemFunc(func(frame *loop.Frame) {
		if frame.Tick == 1 {
			frame.Commands.Release(tetris.ButtonAny)
		}
	}))
	sched.Register(pub)

	return inspect.New("127.0.0.1:0", pub, inspect.WithStats(sched.Stats)), pub, sched
}

func get(t *testing.T, h http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStateBeforeFirstTick(t *testing.T) {
	srv, _, _ := newServer(t)

	for _, path := range []string{"/state", "/board", "/summary"} {
		rec := get(t, srv.Handler(), path)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestState(t *testing.T) {
	srv, pub, sched := newServer(t)
	sched.Once(0)
	require.NotNil(t, pub.Latest())

	rec := get(t, srv.Handler(), "/state")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snap tetris.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, tetris.Play, snap.State)
	assert.Equal(t, *pub.Latest(), snap)
}

func TestBoard(t *testing.T) {
	srv, _, sched := newServer(t)
	sched.Once(0)

	rec := get(t, srv.Handler(), "/board")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, tetris.RowCount+1, strings.Count(rec.Body.String(), "\n"))
	assert.Contains(t, rec.Body.String(), "│")

	rec = get(t, srv.Handler(), "/board?style=ascii")
	assert.NotContains(t, rec.Body.String(), "│")
	assert.Contains(t, rec.Body.String(), "|")
}

func TestSummary(t *testing.T) {
	srv, _, sched := newServer(t)
	sched.Once(0)

	rec := get(t, srv.Handler(), "/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Play")
	assert.Contains(t, rec.Body.String(), "score")
}

func TestStats(t *testing.T) {
	srv, _, sched := newServer(t)
	sched.Once(0)
	sched.Once(0)

	rec := get(t, srv.Handler(), "/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats loop.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, uint64(2), stats.Ticks)
	assert.Equal(t, 3, stats.SystemCount)
	assert.Equal(t, "Publisher", stats.Systems[2].Name)

	bare := inspect.New(":0", inspect.NewPublisher(tetris.New()))
	assert.Equal(t, http.StatusNotFound, get(t, bare.Handler(), "/stats").Code)
}

func TestCompression(t *testing.T) {
	srv, _, sched := newServer(t)
	sched.Once(0)
	plain := get(t, srv.Handler(), "/board").Body.String()

	t.Run("gzip", func(t *testing.T) {
		rec := get(t, srv.Handler(), "/board", "Accept-Encoding", "gzip")
		require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

		zr, err := gzip.NewReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, plain, string(body))
	})

	t.Run("zstd preferred", func(t *testing.T) {
		rec := get(t, srv.Handler(), "/board", "Accept-Encoding", "gzip, zstd")
		require.Equal(t, "zstd", rec.Header().Get("Content-Encoding"))

		zr, err := zstd.NewReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		defer zr.Close()
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, plain, string(body))
	})

	t.Run("no body", func(t *testing.T) {
		rec := get(t, srv.Handler(), "/healthz", "Accept-Encoding", "gzip")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("identity", func(t *testing.T) {
		rec := get(t, srv.Handler(), "/board", "Accept-Encoding", "br")
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, plain, rec.Body.String())
	})
}
