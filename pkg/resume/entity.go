package resume

import (
	"github.com/google/uuid"
)

// Document — загруженный файл резюме и извлечённый из него текст.
type Document struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	Ext      string    `json:"ext"`
	Size     int64     `json:"sizeB"`
	Text     string    `json:"-"`
}
