package kvstore

import (
	"context"

	"github.com/nexus-os/office-backend/internal/domain/document"
	"github.com/nexus-os/office-backend/internal/fixtures"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type documentRepositoryImpl struct {
	store *store.Store
}

func NewDocumentRepository(s *store.Store) document.DocumentRepository {
	return &documentRepositoryImpl{store: s}
}

func (r *documentRepositoryImpl) List(ctx context.Context) ([]document.Document, error) {
	return store.Read(ctx, r.store, KeyDocuments, fixtures.DefaultDocuments())
}
