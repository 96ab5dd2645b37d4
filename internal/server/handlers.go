package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/orbital/pkg/errors"
)

const (
	contentJSON = "application/json"
	contentCBOR = "application/cbor"
	contentSVG  = "image/svg+xml"
)

type collectionResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Supply      uint64 `json:"max_supply"`
	Engine      string `json:"engine"`
	Fingerprint string `json:"fingerprint"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	info := s.runner.Info()
	writeJSON(w, http.StatusOK, collectionResponse{
		Name:        info.Name,
		Symbol:      info.Symbol,
		Supply:      info.Supply,
		Engine:      info.Engine,
		Fingerprint: s.runner.Collection.Generator().Fingerprint(),
	})
}

func (s *Server) handleAttributes(w http.ResponseWriter, r *http.Request) {
	index, ok := s.index(w, r)
	if !ok {
		return
	}
	data, hit, err := s.runner.Attributes(r.Context(), index)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeBody(w, contentJSON, data, hit)
}

func (s *Server) handleAttributesCBOR(w http.ResponseWriter, r *http.Request) {
	index, ok := s.index(w, r)
	if !ok {
		return
	}
	set, err := s.runner.Collection.Attributes(index)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := set.MarshalCBOR()
	if err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode attributes"))
		return
	}
	writeBody(w, contentCBOR, data, false)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	index, ok := s.index(w, r)
	if !ok {
		return
	}
	data, hit, err := s.runner.Image(r.Context(), index)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeBody(w, contentSVG, data, hit)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	index, err := errors.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		s.fail(w, r, err)
		return 0, false
	}
	return index, true
}

// fail maps an error to its HTTP status and writes the error body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
	}
	writeError(w, r, status, string(code), errors.UserMessage(err))
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeIndexOutOfRange, errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = msg
	body.RequestID = RequestID(r.Context())
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBody(w http.ResponseWriter, contentType string, data []byte, hit bool) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
