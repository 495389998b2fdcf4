package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"darkroom/internal/capture"
)

func main() {
	dir := flag.String("dir", capture.DefaultOutputDir, "Directory of captured screenshots")
	port := flag.Int("port", 8787, "Port to listen on")
	flag.Parse()

	if _, err := os.Stat(*dir); err != nil {
		log.Fatalf("shot directory: %v", err)
	}

	s := newServer(*dir)
	addr := fmt.Sprintf(":%d", *port)
	log.Printf("gallery listening on %s (serving %s)", addr, *dir)
	log.Fatal(http.ListenAndServe(addr, s.routes()))
}

type server struct {
	dir string
}

func newServer(dir string) *server {
	return &server{dir: dir}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.health)
	mux.HandleFunc("/v1/shots", s.handleShots)
	mux.Handle("/shots/", http.StripPrefix("/shots/", http.FileServer(http.Dir(s.dir))))
	mux.HandleFunc("/", s.index)
	return withCORS(mux)
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

type shotInfo struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
	URL     string    `json:"url"`
}

func (s *server) listShots() ([]shotInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	shots := []shotInfo{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		shots = append(shots, shotInfo{
			Name:    e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			URL:     "/shots/" + e.Name(),
		})
	}
	sort.Slice(shots, func(i, j int) bool { return shots[i].Name < shots[j].Name })
	return shots, nil
}

func (s *server) handleShots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "GET only"})
		return
	}
	shots, err := s.listShots()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, shots)
}

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	shots, err := s.listShots()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, shots); err != nil {
		log.Printf("render index: %v", err)
	}
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><title>Design preview shots</title></head>
<body>
<h1>Design preview shots</h1>
{{range .}}
<figure>
  <img src="{{.URL}}" alt="{{.Name}}" style="max-width: 100%">
  <figcaption>{{.Name}} ({{.Size}} bytes)</figcaption>
</figure>
{{else}}
<p>No screenshots captured yet.</p>
{{end}}
</body>
</html>
`))

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
