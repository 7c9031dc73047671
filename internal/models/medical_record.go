package models

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"healthcare-file-viewer/internal/viewer"
)

// AttachmentRole tells the record's own file apart from its bill.
type AttachmentRole string

const (
	AttachmentRoleFile AttachmentRole = "file"
	AttachmentRoleBill AttachmentRole = "bill"
)

// MedicalRecord is the stored descriptor of a previewable record file.
type MedicalRecord struct {
	BaseModel
	PatientID    string          `gorm:"size:36;index" json:"patientId"`
	FileName     string          `gorm:"size:255;not null" json:"fileName"`
	FileType     viewer.FileType `gorm:"size:10;not null" json:"fileType"`
	Title        string          `gorm:"size:255;not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	BillFileName string          `gorm:"size:255" json:"billFileName,omitempty"`

	Attachments []MedicalRecordAttachment `gorm:"foreignKey:MedicalRecordID" json:"attachments,omitempty"`
}

// MedicalRecordAttachment represents a file attached to a medical record
type MedicalRecordAttachment struct {
	BaseModel
	MedicalRecordID string         `json:"medicalRecordId" gorm:"not null;type:varchar(36);index"`
	Role            AttachmentRole `json:"role" gorm:"size:10;not null;default:'file'"`
	FileName        string         `json:"fileName" gorm:"not null"` // Original name of the file
	FileType        string         `json:"fileType" gorm:"not null"` // MIME type of the file
	FileData        []byte         `json:"-" gorm:"type:longblob;not null"`
}

// DataURI encodes the attachment as a data URI. The MIME type is sniffed from
// the bytes; the stored Content-Type is only used when sniffing gives up.
func (a *MedicalRecordAttachment) DataURI() string {
	return EncodeDataURI(a.FileData, a.FileType)
}

// EncodeDataURI builds a base64 data URI for data.
func EncodeDataURI(data []byte, fallbackMIME string) string {
	mime := mimetype.Detect(data)
	contentType := mime.String()
	if mime.Is("application/octet-stream") || mime.Is("text/plain") {
		if fallbackMIME != "" {
			contentType = fallbackMIME
		}
	}
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Descriptor builds the viewer descriptor for the record. A stored primary file,
// when given, becomes the inline payload.
func (r *MedicalRecord) Descriptor(primary *MedicalRecordAttachment) viewer.Descriptor {
	d := viewer.Descriptor{
		FileName:     r.FileName,
		FileType:     r.FileType,
		Title:        r.Title,
		Description:  r.Description,
		BillFileName: r.BillFileName,
	}
	if primary != nil && len(primary.FileData) > 0 {
		d.InlineData = primary.DataURI()
	}
	return d
}
