//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/cmd"
	"github.com/jsphweid/tonal/midi"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/store"
)

var handler http.Handler

func TestMain(m *testing.M) {
	mediaDir, err := os.MkdirTemp("", "tonal-media")
	if err != nil {
		panic(err)
	}

	f, err := os.Create(filepath.Join(mediaDir, "song.mid"))
	if err != nil {
		panic(err)
	}
	prog := []chord.Chord{chord.MustParse("C"), chord.MustParse("F"), chord.MustParse("C")}
	if err := midi.WriteProgression(f, prog, midi.DefaultExportOptions()); err != nil {
		panic(err)
	}
	f.Close()

	st, err := store.Open(filepath.Join(mediaDir, "out", "tonal.db"))
	if err != nil {
		panic(err)
	}
	if _, err := cmd.Index(st, nil, mediaDir, 1); err != nil {
		panic(err)
	}
	handler = (&cmd.Server{Store: st}).Router()

	exitVal := m.Run()

	st.Close()
	os.RemoveAll(mediaDir)
	os.Exit(exitVal)
}

func createSearchReqBody(symbol string) io.Reader {
	data, err := json.Marshal(model.SearchRequestBody{Chord: symbol})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func search(t *testing.T, symbol string) model.SearchResponse {
	req := httptest.NewRequest(http.MethodPost, "/search", createSearchReqBody(symbol))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)

	var searchResponse model.SearchResponse
	if err := json.Unmarshal(respBody, &searchResponse); err != nil {
		panic(err.Error())
	}
	return searchResponse
}

func TestBasicCChordE2E(t *testing.T) {
	assert.Equal(t, model.SearchResponse{
		Symbol:     "C",
		NumMatches: 2,
		NumFiles:   1,
		Results: []model.SearchResult{{
			FileId:  1,
			Path:    "song.mid",
			Offsets: []uint32{0, 1000},
		}},
	}, search(t, "Cmaj"))
}

func TestBasicFChordE2E(t *testing.T) {
	assert.Equal(t, model.SearchResponse{
		Symbol:     "F",
		NumMatches: 1,
		NumFiles:   1,
		Results: []model.SearchResult{{
			FileId:  1,
			Path:    "song.mid",
			Offsets: []uint32{500},
		}},
	}, search(t, "F"))
}
