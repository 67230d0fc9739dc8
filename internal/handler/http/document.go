package http

import (
	"net/http"

	"github.com/nexus-os/office-backend/internal/domain/document"
	"github.com/nexus-os/office-backend/internal/handler/http/response"
)

type DocumentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

func (h *documentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var category *document.Category
	if c := getStringQueryParam(r, "category"); c != nil {
		cat := document.Category(*c)
		category = &cat
	}

	docs, err := h.documentService.List(r.Context(), category)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, docs)
}
