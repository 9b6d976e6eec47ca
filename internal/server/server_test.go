package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testServer() *Server {
	return New(":0", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func post(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeFloats(t *testing.T, w *httptest.ResponseRecorder) map[string]float64 {
	t.Helper()
	out := map[string]float64{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
	}
	return out
}

func TestKineticTranslationalEndpoint(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/kinetic/translational", map[string]float64{"mass": 2, "velocity": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	out := decodeFloats(t, w)
	if math.Abs(out["energy_j"]-25.0) > 1e-9 {
		t.Errorf("expected 25 J, got %v", out["energy_j"])
	}
}

func TestKineticRotationalEndpoint(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/kinetic/rotational", map[string]any{
		"shape": "solid_cylinder", "mass": 2.0, "radius": 0.3, "angular_velocity": 3.0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	out := decodeFloats(t, w)
	if math.Abs(out["moment_of_inertia"]-0.09) > 1e-9 {
		t.Errorf("expected I=0.09, got %v", out["moment_of_inertia"])
	}
	if math.Abs(out["energy_j"]-0.405) > 1e-9 {
		t.Errorf("expected 0.405 J, got %v", out["energy_j"])
	}
}

func TestPotentialGravitationalEndpoint_DefaultG(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/potential/gravitational", map[string]float64{"mass": 2, "height": 5})
	out := decodeFloats(t, w)
	if math.Abs(out["energy_j"]-98.1) > 1e-9 {
		t.Errorf("expected 98.1 J with default g, got %v", out["energy_j"])
	}
}

func TestWorkConstantEndpoint(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/work/constant", map[string]float64{
		"force": 50, "displacement": 5, "angle_deg": 90,
	})
	out := decodeFloats(t, w)
	if math.Abs(out["work_j"]) > 1e-9 {
		t.Errorf("expected ~0 J at 90 degrees, got %v", out["work_j"])
	}
}

func TestWorkVariableEndpoint(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/work/variable", map[string][]float64{
		"forces":        {10, 10, 10},
		"displacements": {0, 2.5, 5},
	})
	out := decodeFloats(t, w)
	if math.Abs(out["work_j"]-50.0) > 1e-9 {
		t.Errorf("expected 50 J, got %v", out["work_j"])
	}
}

func TestWorkVariableEndpoint_LengthMismatch(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/work/variable", map[string][]float64{
		"forces":        {10, 10, 10},
		"displacements": {0, 5},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPowerEndpoint_ZeroTime(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/power", map[string]float64{"work_j": 100, "time_s": 0})
	out := decodeFloats(t, w)
	if out["power_w"] != 0 {
		t.Errorf("expected 0 W for zero time, got %v", out["power_w"])
	}
}

func TestInertiaEndpoint_MissingParameter(t *testing.T) {
	s := testServer()
	// Sphere with no radius resolves to radius 0, which is valid input;
	// a rod sent with only a radius is not representable here because
	// the decoder picks the shape's required parameter. Unknown shapes
	// are rejected.
	w := post(t, s, "/api/inertia", map[string]any{"shape": "klein_bottle", "mass": 1.0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown shape, got %d", w.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/analyze", map[string]any{
		"shape": "solid_cylinder", "mass": 2.0, "radius": 0.3,
		"velocity": 5.0, "angular_velocity": 3.0, "height": 5.0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var out struct {
		Total      float64 `json:"total_j"`
		Components []struct {
			Label  string  `json:"label"`
			Joules float64 `json:"energy_j"`
		} `json:"components"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if math.Abs(out.Total-123.505) > 1e-9 {
		t.Errorf("expected total 123.505, got %v", out.Total)
	}
	if len(out.Components) != 3 {
		t.Errorf("expected 3 components, got %d", len(out.Components))
	}
}

func TestAnalyzeEndpoint_InvalidMass(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/analyze", map[string]any{"shape": "disk", "mass": 0.0, "radius": 1.0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestShapesEndpoint(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/api/shapes", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var shapes []struct {
		Name      string `json:"name"`
		Parameter string `json:"required_parameter"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &shapes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(shapes) != 8 {
		t.Errorf("expected 8 shapes, got %d", len(shapes))
	}
}

func TestForceChartSVGEndpoint(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/chart/force.svg", map[string][]float64{
		"forces":        {10, 10},
		"displacements": {0, 5},
	})
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(w.Body.String(), "work = 50.00 J") {
		t.Error("svg missing work annotation")
	}
}

func TestReportPDFEndpoint(t *testing.T) {
	s := testServer()
	w := post(t, s, "/api/report.pdf", map[string]any{
		"shape": "solid_sphere", "mass": 5.0, "radius": 2.0,
		"angular_velocity": 1.0, "title": "Test Report",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected PDF output")
	}
}

func TestCORSPreflight(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodOptions, "/api/shapes", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}

func TestInvalidPayload(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/power", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
