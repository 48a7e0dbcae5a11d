package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dgallion1/scholardoc/internal/engine"
)

// docPath pulls the required path query parameter. A false return means
// the error response was already written.
func docPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	path := r.URL.Query().Get("path")
	if path == "" {
		jsonError(w, "path query parameter is required", http.StatusBadRequest)
		return "", false
	}
	return path, true
}

// respond writes v as JSON, mapping analyzer errors onto status codes.
func respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, engine.ErrNotFound) {
			status = http.StatusNotFound
		}
		jsonError(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	meta, err := s.analyzer.Metadata(r.Context(), path)
	respond(w, meta, err)
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	text, err := s.analyzer.ExtractText(r.Context(), path)
	respond(w, text, err)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		jsonError(w, "page query parameter must be a non-negative integer", http.StatusBadRequest)
		return
	}
	processed, perr := s.analyzer.ExtractPage(r.Context(), path, page)
	respond(w, processed, perr)
}

func (s *Server) handleChunks(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	chunkSize := s.cfg.DefaultChunkSize
	if v := r.URL.Query().Get("chunk_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			jsonError(w, "chunk_size query parameter must be a positive integer", http.StatusBadRequest)
			return
		}
		chunkSize = n
	}
	chunks, err := s.analyzer.ChunkContent(r.Context(), path, chunkSize)
	respond(w, map[string]any{"chunks": chunks, "total_chunks": len(chunks)}, err)
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	res, err := s.analyzer.DetectSections(r.Context(), path)
	respond(w, res, err)
}

func (s *Server) handleKeySections(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	key, err := s.analyzer.ExtractKeySections(r.Context(), path)
	respond(w, map[string]any{"key_sections": key}, err)
}

func (s *Server) handleSectionSummary(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	sum, err := s.analyzer.SectionSummary(r.Context(), path)
	respond(w, sum, err)
}

func (s *Server) handleAbstract(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	abs, err := s.analyzer.ExtractAbstract(r.Context(), path)
	respond(w, abs, err)
}

func (s *Server) handleCitations(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	res, err := s.analyzer.ExtractCitations(r.Context(), path)
	respond(w, res, err)
}

func (s *Server) handleCitationSummary(w http.ResponseWriter, r *http.Request) {
	path, ok := docPath(w, r)
	if !ok {
		return
	}
	sum, err := s.analyzer.CitationSummary(r.Context(), path)
	respond(w, sum, err)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
