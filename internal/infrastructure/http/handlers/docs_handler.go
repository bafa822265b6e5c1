package handlers

import "net/http"

// DocsHandler serves the static informational endpoints: the root
// confirmation payload and the pointers at interactive documentation.
type DocsHandler struct{}

func NewDocsHandler() *DocsHandler { return &DocsHandler{} }

func (h *DocsHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Firestore connected successfully"})
}

func (h *DocsHandler) Swagger(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Swagger is available at /docs"})
}

func (h *DocsHandler) ReDoc(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "ReDoc is available at /redoc"})
}
