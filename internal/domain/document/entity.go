package document

type DocumentType string

const (
	TypePDF DocumentType = "PDF"
	TypeDOC DocumentType = "DOC"
	TypeIMG DocumentType = "IMG"
)

type Category string

const (
	CategoryContract Category = "CONTRACT"
	CategoryPolicy   Category = "POLICY"
	CategoryTax      Category = "TAX"
)

// Document is metadata only. There is no upload path.
type Document struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Type     DocumentType `json:"type"`
	Date     string       `json:"date"`
	Category Category     `json:"category"`
}
