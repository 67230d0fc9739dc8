package document

import "context"

type DocumentRepository interface {
	List(ctx context.Context) ([]Document, error)
}

type DocumentService interface {
	List(ctx context.Context, category *Category) ([]Document, error)
}
