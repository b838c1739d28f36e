package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/db"
	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/logger"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/store"
	"github.com/jsphweid/tonal/util"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to $TONAL_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the theory and chord search API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer st.Close()

		meta, err := metadataClient()
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = constants.GetAddr()
		}
		srv := &Server{Store: st, Meta: meta, Log: logger.GetLogger().With("serve")}
		srv.Log.Infof("listening on %s", addr)
		return http.ListenAndServe(addr, srv.Router())
	},
}

// Server answers theory questions and chord searches. Store and Meta may be
// nil, in which case /search fails and results carry no metadata.
type Server struct {
	Store *store.Store
	Meta  *db.MetadataClient
	Log   *logger.Logger
}

func (s *Server) Router() http.Handler {
	if s.Log == nil {
		s.Log = logger.GetLogger()
	}
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.requestID)
	router.HandleFunc("/interval/{name}", s.handleInterval).Methods(http.MethodGet)
	router.HandleFunc("/chord/{symbol:.+}", s.handleChord).Methods(http.MethodGet)
	router.HandleFunc("/scale/{root}/{type}", s.handleScale).Methods(http.MethodGet)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	router.HandleFunc("/search", s.handleSearch).Methods(http.MethodPost)
	return cors.Default().Handler(router)
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		s.Log.Debugf("req=%s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Errorf("encoding response: %v", err)
	}
}

// writeError reports theory errors as the caller's fault and everything else
// as ours.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if _, ok := errs.KindOf(err); ok {
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.Log.Errorf("req=%s %s: %v", w.Header().Get("X-Request-Id"), r.URL.Path, err)
	}
	s.writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func (s *Server) handleInterval(w http.ResponseWriter, r *http.Request) {
	i, err := interval.Parse(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, intervalView(i))
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	c, err := chord.Parse(mux.Vars(r)["symbol"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := chordView(c)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sc, err := parseScale(vars["root"], vars["type"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := scaleView(sc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "could not decode request body: " + err.Error()})
		return
	}
	notes, err := parseTunings(input.Notes)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := chord.AnalyzeFrom(notes)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := chordView(c)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var input model.SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "could not decode request body: " + err.Error()})
		return
	}
	res, err := Search(s.Store, s.Meta, input.Chord, input.Limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// Search normalizes symbol by parsing and reprinting it, so "CM7" finds what
// was indexed as "Cmaj7".
func Search(st *store.Store, meta *db.MetadataClient, symbol string, limit int) (model.SearchResponse, error) {
	c, err := chord.Parse(symbol)
	if err != nil {
		return model.SearchResponse{}, err
	}
	normalized := c.String()
	matches, err := st.SearchSymbol(normalized, limit)
	if err != nil {
		return model.SearchResponse{}, err
	}

	metadata, err := lookupMetadata(meta, matches)
	if err != nil {
		return model.SearchResponse{}, err
	}

	res := model.SearchResponse{
		Symbol:   normalized,
		NumFiles: len(matches),
		Results:  make([]model.SearchResult, 0, len(matches)),
	}
	for _, m := range matches {
		res.NumMatches += len(m.Offsets)
		sr := model.SearchResult{FileId: m.FileID, Path: m.Path, Offsets: m.Offsets}
		if md, ok := metadata[m.Path]; ok {
			md := md
			sr.MidiMetadata = &md
		}
		res.Results = append(res.Results, sr)
	}
	return res, nil
}

func lookupMetadata(meta *db.MetadataClient, matches []store.Match) (map[string]model.MidiMetadata, error) {
	out := make(map[string]model.MidiMetadata)
	if meta == nil {
		return out, nil
	}
	var paths []string
	for _, m := range matches {
		if m.HasMetadata {
			paths = append(paths, m.Path)
		}
	}
	for start := 0; start < len(paths); start += db.MaxBatch {
		end := util.Min(start+db.MaxBatch, len(paths))
		batch, err := meta.GetMidiMetadatas(paths[start:end])
		if err != nil {
			return nil, errors.Wrap(err, "fetching metadata")
		}
		for k, v := range batch {
			out[k] = v
		}
	}
	return out, nil
}
