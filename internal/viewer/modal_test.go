package viewer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func labDescriptor() Descriptor {
	return Descriptor{
		FileName:    "lipid-panel.txt",
		FileType:    FileTypeLab,
		Title:       "Lipid Panel",
		Description: "LDL 98 mg/dL",
	}
}

func TestModalActions(t *testing.T) {
	m := Open(labDescriptor(), nil)
	actions := m.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, ActionDownload, actions[0].Name)

	withBill := labDescriptor()
	withBill.BillFileName = "invoice-42.pdf"
	actions = Open(withBill, nil).Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, ActionDownload, actions[0].Name)
	assert.Equal(t, ActionDownloadBill, actions[1].Name)
	assert.NotEqual(t, actions[0].Label, actions[1].Label)
}

func TestModalCloseCallsCallbackOncePerCall(t *testing.T) {
	calls := 0
	n := &recordingNotifier{}
	m := Open(labDescriptor(), func() { calls++ }, WithNotifier(n))

	m.Close()
	assert.Equal(t, 1, calls)
	assert.Empty(t, n.messages)

	m.Close()
	assert.Equal(t, 2, calls)
	assert.Empty(t, n.messages)
}

func TestModalCloseWithoutCallback(t *testing.T) {
	assert.NotPanics(t, func() { Open(labDescriptor(), nil).Close() })
}

func TestModalDownloads(t *testing.T) {
	n := &recordingNotifier{}
	desc := labDescriptor()
	desc.BillFileName = "invoice-42.pdf"
	m := Open(desc, nil, WithNotifier(n))

	assert.Equal(t, DownloadNotice, m.Download())
	msg, ok := m.DownloadBill()
	require.True(t, ok)
	assert.Equal(t, "Downloading bill: invoice-42.pdf", msg)
	assert.Equal(t, []string{DownloadNotice, "Downloading bill: invoice-42.pdf"}, n.messages)
}

func TestModalDownloadBillWithoutBill(t *testing.T) {
	n := &recordingNotifier{}
	m := Open(labDescriptor(), nil, WithNotifier(n))

	_, ok := m.DownloadBill()
	assert.False(t, ok)
	assert.Empty(t, n.messages)
}

func TestNotifierFunc(t *testing.T) {
	var got string
	m := Open(labDescriptor(), nil, WithNotifier(NotifierFunc(func(s string) { got = s })))
	m.Download()
	assert.Equal(t, DownloadNotice, got)
}

func TestModalRender(t *testing.T) {
	desc := labDescriptor()
	desc.BillFileName = "invoice-42.pdf"
	m := Open(desc, nil, WithActionURLs("/dl", "/dl-bill", "/close"))

	var buf bytes.Buffer
	require.NoError(t, m.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, `data-preview-kind="lab_report"`)
	assert.Contains(t, out, "LAB Document")
	assert.Contains(t, out, "Bill: invoice-42.pdf")
	assert.Contains(t, out, `aria-label="Close"`)
	assert.Contains(t, out, `action="/close"`)
	assert.Contains(t, out, `action="/dl"`)
	assert.Contains(t, out, `action="/dl-bill"`)
	assert.Contains(t, out, "Laboratory Report")
	assert.Contains(t, out, "lipid-panel.txt")
	assert.Equal(t, 1, strings.Count(out, `data-action="download"`))
	assert.Equal(t, 1, strings.Count(out, `data-action="download-bill"`))
}

func TestModalRenderWithoutBill(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Open(labDescriptor(), nil).Render(&buf))
	out := buf.String()

	assert.NotContains(t, out, "Bill:")
	assert.NotContains(t, out, `data-action="download-bill"`)
	assert.Equal(t, 1, strings.Count(out, `data-action="download"`))
}

func TestModalRenderInlineImage(t *testing.T) {
	desc := Descriptor{FileName: "report.pdf", FileType: FileTypePDF, Title: "Scan", InlineData: pngDataURI}
	var buf bytes.Buffer
	require.NoError(t, Open(desc, nil).Render(&buf))

	assert.Contains(t, buf.String(), `data-preview-kind="inline_image"`)
	assert.Contains(t, buf.String(), pngDataURI)
	assert.Contains(t, buf.String(), "PDF Document", "header label follows the declared type")
	assert.NotContains(t, buf.String(), "preview-pdf-placeholder")
	assert.NotContains(t, buf.String(), "Document Preview:")
}

func TestModalRenderWithoutActionURLs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Open(labDescriptor(), nil).Render(&buf))

	assert.NotContains(t, buf.String(), "<form")
	assert.Contains(t, buf.String(), `type="button" data-action="close"`)
}
