package viewer

import (
	"fmt"
	"html/template"
	"io"
)

const (
	ActionDownload     = "download"
	ActionDownloadBill = "download-bill"

	// DownloadNotice stands in for a real file transfer.
	DownloadNotice = "Download functionality would be implemented here with actual file storage."
)

// BillDownloadNotice is the notification shown for the bill download action.
func BillDownloadNotice(billFileName string) string {
	return "Downloading bill: " + billFileName
}

// Notifier surfaces a user-visible message in place of a real download.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

type discardNotifier struct{}

func (discardNotifier) Notify(string) {}

// Action is one footer button.
type Action struct {
	Name  string
	Label string
	URL   string
	Class string
}

// Option configures a Modal.
type Option func(*Modal)

// WithNotifier sets the notifier used by the download actions.
func WithNotifier(n Notifier) Option {
	return func(m *Modal) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithActionURLs sets where the rendered close and download controls post to.
func WithActionURLs(download, bill, close string) Option {
	return func(m *Modal) {
		m.downloadURL = download
		m.billURL = bill
		m.closeURL = close
	}
}

// Modal is one mounted preview overlay. It holds no mutable state; closing it is
// the caller's business through onClose.
type Modal struct {
	desc     Descriptor
	preview  Preview
	onClose  func()
	notifier Notifier

	downloadURL string
	billURL     string
	closeURL    string
}

// Open mounts a modal for desc. onClose may be nil.
func Open(desc Descriptor, onClose func(), opts ...Option) *Modal {
	m := &Modal{
		desc:     desc,
		preview:  SelectPreview(desc),
		onClose:  onClose,
		notifier: discardNotifier{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Descriptor returns the descriptor the modal was opened with.
func (m *Modal) Descriptor() Descriptor { return m.desc }

// Preview returns the selected preview.
func (m *Modal) Preview() Preview { return m.preview }

// Close invokes the close callback once per call.
func (m *Modal) Close() {
	if m.onClose != nil {
		m.onClose()
	}
}

// Download triggers the primary download notice.
func (m *Modal) Download() string {
	m.notifier.Notify(DownloadNotice)
	return DownloadNotice
}

// DownloadBill triggers the bill download notice. It reports false, without
// notifying, when the record has no associated bill.
func (m *Modal) DownloadBill() (string, bool) {
	if !m.desc.HasBill() {
		return "", false
	}
	msg := BillDownloadNotice(m.desc.BillFileName)
	m.notifier.Notify(msg)
	return msg, true
}

// Actions lists the footer actions: always Download, plus Download Bill when a
// bill is attached.
func (m *Modal) Actions() []Action {
	actions := []Action{{
		Name:  ActionDownload,
		Label: "Download",
		URL:   m.downloadURL,
		Class: "bg-primary hover:bg-sky-600",
	}}
	if m.desc.HasBill() {
		actions = append(actions, Action{
			Name:  ActionDownloadBill,
			Label: "Download Bill",
			URL:   m.billURL,
			Class: "bg-emerald-600 hover:bg-emerald-700",
		})
	}
	return actions
}

type modalView struct {
	Kind         PreviewKind
	FileType     FileType
	FileName     string
	BillFileName string
	CloseURL     string
	Body         template.HTML
	Actions      []Action
}

// Render writes the full overlay to w.
func (m *Modal) Render(w io.Writer) error {
	body, err := m.preview.HTML()
	if err != nil {
		return fmt.Errorf("render %s preview: %w", m.preview.Kind, err)
	}
	view := modalView{
		Kind:         m.preview.Kind,
		FileType:     m.desc.FileType,
		FileName:     m.desc.FileName,
		BillFileName: m.desc.BillFileName,
		CloseURL:     m.closeURL,
		Body:         body,
		Actions:      m.Actions(),
	}
	if err := templates.ExecuteTemplate(w, "modal", view); err != nil {
		return fmt.Errorf("render modal: %w", err)
	}
	return nil
}
