package web

import (
	"net/http"

	webembed "github.com/reepower84-png/rocket-call-realestate/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter() (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{Templates: templates}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.LandingPage)
	mux.HandleFunc("GET /admin", s.AdminPage)

	return mux, nil
}

// LandingPage handles GET /.
func (s *Server) LandingPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "index.html", &PageData{Title: "로켓콜 | 분양 전문 텔레마케팅"})
}

// AdminPage handles GET /admin.
func (s *Server) AdminPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "admin.html", &PageData{Title: "문의 관리 | 로켓콜"})
}
