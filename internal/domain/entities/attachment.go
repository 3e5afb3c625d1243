package entities

// AttachmentCategory groups uploads on a valuation. Each category is uploaded
// with a single store call.
type AttachmentCategory string

const (
	AttachmentCategoryProperty  AttachmentCategory = "property"
	AttachmentCategoryLocation  AttachmentCategory = "location"
	AttachmentCategoryBank      AttachmentCategory = "bank"
	AttachmentCategoryDocuments AttachmentCategory = "documents"
	AttachmentCategoryArea      AttachmentCategory = "area"
)

// AttachmentCategories lists categories in upload order.
var AttachmentCategories = []AttachmentCategory{
	AttachmentCategoryProperty,
	AttachmentCategoryLocation,
	AttachmentCategoryBank,
	AttachmentCategoryDocuments,
	AttachmentCategoryArea,
}

// MaxBankImages is the size of the single bank image slot.
const MaxBankImages = 1

func (c AttachmentCategory) Valid() bool {
	for _, known := range AttachmentCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Attachment is either a LocalAttachment or a PersistedAttachment.
// The interface is sealed so a slot can never hold both representations.
type Attachment interface {
	isAttachment()
	FileName() string
}

// Blob is file content received from the client and not yet uploaded.
type Blob struct {
	Name        string
	ContentType string
	Data        []byte
}

// LocalAttachment is a pending upload.
type LocalAttachment struct {
	Blob Blob
}

// PersistedAttachment references a file already held by the attachment store.
type PersistedAttachment struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

func (LocalAttachment) isAttachment()     {}
func (PersistedAttachment) isAttachment() {}

func (a LocalAttachment) FileName() string     { return a.Blob.Name }
func (a PersistedAttachment) FileName() string { return a.Name }

// HasLocalAttachments reports whether any slot still waits for upload.
func (r ValuationRecord) HasLocalAttachments() bool {
	for _, items := range r.Attachments {
		for _, it := range items {
			if _, ok := it.(LocalAttachment); ok {
				return true
			}
		}
	}
	return false
}

// PersistedAttachments returns the persisted entries of a category.
func (r ValuationRecord) PersistedAttachments(category AttachmentCategory) []PersistedAttachment {
	var out []PersistedAttachment
	for _, it := range r.Attachments[category] {
		if p, ok := it.(PersistedAttachment); ok {
			out = append(out, p)
		}
	}
	return out
}
