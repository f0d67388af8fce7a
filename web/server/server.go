package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Built-in scene ID
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	MaxDepth int    `json:"maxDepth"` // Reflection/refraction recursion budget
}

// RenderResponse is the JSON body returned by /api/render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	ClampedPixels    int     `json:"clampedPixels"`
	AverageLuminance float64 `json:"averageLuminance"`
	MaxDepth         int     `json:"maxDepth"`
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders a scene and returns it as a base64 PNG with stats and
// the render log
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	consoleChan := make(chan ConsoleMessage, 16)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	logger := NewWebLogger(renderID, consoleChan)

	config := renderer.Config{Width: req.Width, Height: req.Height, MaxDepth: req.MaxDepth}
	raytracer, err := renderer.NewRaytracer(sceneObj, config, nil, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	startTime := time.Now()
	img, stats := raytracer.Render()

	imageData, err := s.imageToBase64PNG(img)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Scene:     req.Scene,
		ImageData: imageData,
		Stats: Stats{
			TotalPixels:      stats.TotalPixels,
			ClampedPixels:    stats.ClampedPixels,
			AverageLuminance: stats.AverageLuminance,
			MaxDepth:         stats.MaxDepth,
		},
		Console:   drainConsole(consoleChan),
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	query := r.URL.Query()

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 225, 1, 2000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", renderer.DefaultConfig().MaxDepth, 0, 50); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
