package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"geometry3d/internal/geometry/line"
	"geometry3d/internal/geometry/object"
	"geometry3d/internal/geometry/plane"
	"geometry3d/internal/geometry/tri"
	"geometry3d/internal/geometry/vector"
)

const maxBodyBytes = 1 << 20

type Server struct {
	log *zap.Logger
	mux *http.ServeMux
}

func NewServer(log *zap.Logger) *Server {
	s := &Server{log: log, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.logRequests(s.mux) }

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.health)

	s.mux.HandleFunc("/vector/", s.vectorOp)
	s.mux.HandleFunc("/vector/normalize", s.normalize)

	s.mux.HandleFunc("/line/from-points", s.lineFromPoints)

	s.mux.HandleFunc("/plane/tangent", s.tangentPlane)
	s.mux.HandleFunc("/plane/intersect", s.intersect)

	s.mux.HandleFunc("/tri/normal", s.triNormal)
	s.mux.HandleFunc("/object/normals", s.objectNormals)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

var vectorOps = map[string]func(a, b vector.Vec3) any{
	"add":   func(a, b vector.Vec3) any { return a.Add(b) },
	"sub":   func(a, b vector.Vec3) any { return a.Sub(b) },
	"dot":   func(a, b vector.Vec3) any { return a.Dot(b) },
	"cross": func(a, b vector.Vec3) any { return vector.Cross(a, b) },
}

func (s *Server) vectorOp(w http.ResponseWriter, r *http.Request) {
	op, ok := vectorOps[strings.TrimPrefix(r.URL.Path, "/vector/")]
	if !ok {
		http.Error(w, ErrUnknownOp.Error(), http.StatusNotFound)
		return
	}

	var body struct {
		A vector.Vec3 `json:"a"`
		B vector.Vec3 `json:"b"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	writeJSON(w, map[string]any{"result": op(body.A, body.B)})
}

func (s *Server) normalize(w http.ResponseWriter, r *http.Request) {
	var body struct {
		V vector.Vec3 `json:"v"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	writeJSON(w, map[string]any{"result": body.V.Normalized(), "norm": body.V.Norm()})
}

func (s *Server) lineFromPoints(w http.ResponseWriter, r *http.Request) {
	var body struct {
		P1 vector.Vec3 `json:"p1"`
		P2 vector.Vec3 `json:"p2"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	writeJSON(w, line.FromPoints(body.P1, body.P2))
}

func (s *Server) tangentPlane(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Line line.Line `json:"line"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	writeJSON(w, plane.Tangent(body.Line))
}

func (s *Server) intersect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Plane plane.Plane `json:"plane"`
		Line  line.Line   `json:"line"`
	}
	if !s.decode(w, r, &body) {
		return
	}

	// a parallel line is a valid answer, reported as ok=false with the zero point
	pt, err := body.Plane.Intersect(body.Line)
	writeJSON(w, map[string]any{"point": pt, "ok": err == nil})
}

func (s *Server) triNormal(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tri tri.Tri `json:"tri"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	writeJSON(w, map[string]any{"normal": body.Tri.Norm()})
}

func (s *Server) objectNormals(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string    `json:"name"`
		Tris []tri.Tri `json:"tris"`
	}
	if !s.decode(w, r, &body) {
		return
	}

	obj := object.New(body.Name, body.Tris...)
	normals := make([]vector.Vec3, 0, len(obj.Tris))
	for _, t := range obj.Tris {
		normals = append(normals, t.Norm())
	}
	writeJSON(w, map[string]any{"id": obj.ID, "name": obj.Name, "normals": normals})
}

// decode enforces POST and reads the JSON body into v, answering the request itself on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, ErrMethodNotAllowed.Error(), http.StatusMethodNotAllowed)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.log.Debug("bad request body", zap.String("path", r.URL.Path), zap.Error(err))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, ErrBodyTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)),
		)
	})
}

// writeJSON encodes v before touching the response so an encoding failure
// can still change the status. Overflowed results (Inf, NaN) get 422.
func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		var unsupported *json.UnsupportedValueError
		if errors.As(err, &unsupported) {
			http.Error(w, ErrNonFinite.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}
