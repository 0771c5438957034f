package domain

// FileFormat represents the file formats the extractor understands.
type FileFormat string

const (
	FormatPDF  FileFormat = "pdf"
	FormatPNG  FileFormat = "png"
	FormatJPG  FileFormat = "jpg"
	FormatJPEG FileFormat = "jpeg"
	FormatDOCX FileFormat = "docx"
)

// AllowedFileFormats maps FileFormat to its MIME content type.
var AllowedFileFormats = map[FileFormat]string{
	FormatPDF:  "application/pdf",
	FormatPNG:  "image/png",
	FormatJPG:  "image/jpeg",
	FormatJPEG: "image/jpeg",
	FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// AllowedExtensions maps file extensions (without dot) to FileFormat.
var AllowedExtensions = map[string]FileFormat{
	"pdf":  FormatPDF,
	"png":  FormatPNG,
	"jpg":  FormatJPG,
	"jpeg": FormatJPEG,
	"docx": FormatDOCX,
}

// ImageFormats marks the formats that go through the OCR path.
var ImageFormats = map[FileFormat]bool{
	FormatPNG:  true,
	FormatJPG:  true,
	FormatJPEG: true,
}
