package document

import (
	"context"
	"fmt"

	"github.com/nexus-os/office-backend/internal/domain/document"
)

type DocumentServiceImpl struct {
	document.DocumentRepository
}

func NewDocumentService(documentRepository document.DocumentRepository) document.DocumentService {
	return &DocumentServiceImpl{DocumentRepository: documentRepository}
}

// List implements document.DocumentService. A nil category lists everything.
func (d *DocumentServiceImpl) List(ctx context.Context, category *document.Category) ([]document.Document, error) {
	docs, err := d.DocumentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if category == nil {
		return docs, nil
	}

	filtered := []document.Document{}
	for _, doc := range docs {
		if doc.Category == *category {
			filtered = append(filtered, doc)
		}
	}
	return filtered, nil
}
