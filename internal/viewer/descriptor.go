package viewer

import (
	"fmt"
	"strings"
)

// FileType is the declared classification of a record file.
type FileType string

const (
	FileTypePDF   FileType = "PDF"
	FileTypeDICOM FileType = "DICOM"
	FileTypeLab   FileType = "LAB"
)

// ParseFileType accepts PDF, DICOM or LAB in any letter case.
func ParseFileType(s string) (FileType, error) {
	switch FileType(strings.ToUpper(strings.TrimSpace(s))) {
	case FileTypePDF:
		return FileTypePDF, nil
	case FileTypeDICOM:
		return FileTypeDICOM, nil
	case FileTypeLab:
		return FileTypeLab, nil
	}
	return "", fmt.Errorf("unknown file type %q (want PDF, DICOM or LAB)", s)
}

// Descriptor is the metadata the modal previews. It is owned by the caller and
// never mutated by the viewer.
type Descriptor struct {
	FileName     string   `json:"fileName" binding:"required"`
	FileType     FileType `json:"fileType" binding:"required,oneof=PDF DICOM LAB"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	BillFileName string   `json:"billFileName,omitempty"`
	InlineData   string   `json:"inlineData,omitempty"`
}

// HasBill reports whether an associated bill is attached.
func (d Descriptor) HasBill() bool {
	return d.BillFileName != ""
}

// PayloadKind is the content kind an inline payload declares through its
// data URI prefix.
type PayloadKind int

const (
	PayloadNone PayloadKind = iota
	PayloadImage
	PayloadPDF
	PayloadOther
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadImage:
		return "image"
	case PayloadPDF:
		return "pdf"
	case PayloadOther:
		return "other"
	default:
		return "none"
	}
}

// KindOfPayload reads the declared kind off an inline payload. The file name is
// never consulted.
func KindOfPayload(inline string) PayloadKind {
	switch {
	case inline == "":
		return PayloadNone
	case strings.HasPrefix(inline, "data:image/"):
		return PayloadImage
	case strings.HasPrefix(inline, "data:application/pdf"):
		return PayloadPDF
	default:
		return PayloadOther
	}
}

// Extension returns the lower-cased text after the last dot of name, or "" when
// name has no dot.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
