package viewer

import (
	"bytes"
	"html/template"
)

// PreviewKind is the branch the selector picked for a descriptor.
type PreviewKind int

const (
	PreviewGeneric PreviewKind = iota
	PreviewInlineImage
	PreviewInlinePDF
	PreviewInlineBlob
	PreviewPDFPlaceholder
	PreviewImagingPlaceholder
	PreviewLabReport
)

var previewKindNames = map[PreviewKind]string{
	PreviewGeneric:            "generic",
	PreviewInlineImage:        "inline_image",
	PreviewInlinePDF:          "inline_pdf",
	PreviewInlineBlob:         "inline_blob",
	PreviewPDFPlaceholder:     "pdf_placeholder",
	PreviewImagingPlaceholder: "imaging_placeholder",
	PreviewLabReport:          "lab_report",
}

func (k PreviewKind) String() string {
	if name, ok := previewKindNames[k]; ok {
		return name
	}
	return "generic"
}

// MarshalText lets the kind travel as its name in JSON responses.
func (k PreviewKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Template returns the name of the template block that renders the kind.
func (k PreviewKind) Template() string {
	return "preview-" + k.String()
}

var imagingExtensions = map[string]bool{
	"dcm":  true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// Classify picks the preview branch. The inline payload kind wins over the file
// extension, which wins over the declared file type. Only LAB is routed on the
// declared type: a PDF or DICOM record whose name carries no pdf or imaging
// extension gets the generic placeholder rather than the PDF or imaging one.
func Classify(d Descriptor) PreviewKind {
	switch KindOfPayload(d.InlineData) {
	case PayloadImage:
		return PreviewInlineImage
	case PayloadPDF:
		return PreviewInlinePDF
	case PayloadOther:
		return PreviewInlineBlob
	}

	ext := Extension(d.FileName)
	if ext == "pdf" {
		return PreviewPDFPlaceholder
	}
	if imagingExtensions[ext] {
		return PreviewImagingPlaceholder
	}

	if d.FileType == FileTypeLab {
		return PreviewLabReport
	}
	return PreviewGeneric
}

// Preview is the renderable chosen for a descriptor.
type Preview struct {
	Kind        PreviewKind `json:"kind"`
	FileName    string      `json:"fileName"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	// Source is only set for inline image and PDF previews, whose prefix was
	// checked by Classify.
	Source template.URL `json:"-"`
}

// SelectPreview classifies d and gathers what the chosen branch displays.
func SelectPreview(d Descriptor) Preview {
	p := Preview{
		Kind:        Classify(d),
		FileName:    d.FileName,
		Title:       d.Title,
		Description: d.Description,
	}
	if p.Kind == PreviewInlineImage || p.Kind == PreviewInlinePDF {
		p.Source = template.URL(d.InlineData)
	}
	return p
}

// HTML renders the preview body on its own.
func (p Preview) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, p.Kind.Template(), p); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
