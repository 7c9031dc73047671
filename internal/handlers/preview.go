package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"healthcare-file-viewer/internal/models"
	"healthcare-file-viewer/internal/observability"
	"healthcare-file-viewer/internal/utils"
	"healthcare-file-viewer/internal/viewer"

	"github.com/gin-gonic/gin"
)

// PreviewHandler serves the file preview modal and its stubbed actions.
type PreviewHandler struct {
	Store   models.RecordStore
	Log     *observability.Logger
	Metrics *observability.Metrics
	// BasePath prefixes the action URLs embedded in rendered modals.
	BasePath string
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(store models.RecordStore, log *observability.Logger, metrics *observability.Metrics, basePath string) *PreviewHandler {
	return &PreviewHandler{Store: store, Log: log, Metrics: metrics, BasePath: basePath}
}

// PreviewRequest is a descriptor posted by a client that keeps its own records.
type PreviewRequest struct {
	FileName     string `json:"fileName" binding:"required"`
	FileType     string `json:"fileType" binding:"required"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	BillFileName string `json:"billFileName"`
	InlineData   string `json:"inlineData"`
}

// PreviewSummary is the JSON form of a selected preview.
type PreviewSummary struct {
	viewer.Preview
	FileType viewer.FileType `json:"fileType"`
	Actions  []string        `json:"actions"`
}

// RenderPreview renders the modal for a posted descriptor. With ?format=json it
// returns the selected preview instead of HTML.
func (h *PreviewHandler) RenderPreview(c *gin.Context) {
	var req PreviewRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	fileType, err := viewer.ParseFileType(req.FileType)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	desc := viewer.Descriptor{
		FileName:     req.FileName,
		FileType:     fileType,
		Title:        req.Title,
		Description:  req.Description,
		BillFileName: req.BillFileName,
		InlineData:   req.InlineData,
	}
	modal := viewer.Open(desc, nil)

	if c.Query("format") == "json" {
		utils.Success(c, "Preview selected", summarize(modal))
		return
	}
	h.writeModal(c, h.Log, modal)
}

// PreviewRecord renders the modal for a stored record. The newest stored file,
// if any, is inlined as the payload.
func (h *PreviewHandler) PreviewRecord(c *gin.Context) {
	record, ok := loadRecord(c, h.Store)
	if !ok {
		return
	}
	log := h.Log.WithRecord(record.ID)

	primary, err := h.Store.PrimaryAttachment(c.Request.Context(), record.ID)
	if err != nil && !errors.Is(err, models.ErrRecordNotFound) {
		log.Error(err, "load primary attachment")
		utils.InternalServerError(c, "Failed to load record file: "+err.Error())
		return
	}

	base := h.BasePath + "/medical-records/" + record.ID
	modal := viewer.Open(record.Descriptor(primary), nil,
		viewer.WithActionURLs(base+"/download", base+"/download-bill", base+"/preview/close"))

	if c.Query("format") == "json" {
		utils.Success(c, "Preview selected", summarize(modal))
		return
	}
	h.writeModal(c, log, modal)
}

// Download answers the primary download action with its notice.
func (h *PreviewHandler) Download(c *gin.Context) {
	record, ok := loadRecord(c, h.Store)
	if !ok {
		return
	}
	modal := viewer.Open(record.Descriptor(nil), nil,
		viewer.WithNotifier(h.downloadNotifier(record, viewer.ActionDownload)))

	msg := modal.Download()
	utils.Success(c, msg, gin.H{"action": viewer.ActionDownload, "fileName": record.FileName})
}

// DownloadBill answers the bill download action. Records without a bill have
// no such action.
func (h *PreviewHandler) DownloadBill(c *gin.Context) {
	record, ok := loadRecord(c, h.Store)
	if !ok {
		return
	}
	modal := viewer.Open(record.Descriptor(nil), nil,
		viewer.WithNotifier(h.downloadNotifier(record, viewer.ActionDownloadBill)))

	msg, ok := modal.DownloadBill()
	if !ok {
		utils.NotFound(c, "Medical record has no associated bill")
		return
	}
	utils.Success(c, msg, gin.H{"action": viewer.ActionDownloadBill, "fileName": record.BillFileName})
}

// ClosePreview fires the close callback of the record's modal.
func (h *PreviewHandler) ClosePreview(c *gin.Context) {
	record, ok := loadRecord(c, h.Store)
	if !ok {
		return
	}
	log := h.Log.WithRecord(record.ID)
	modal := viewer.Open(record.Descriptor(nil), func() {
		h.Metrics.ModalCloses.Inc()
		log.ModalClosed(record.FileName)
	})

	modal.Close()
	c.Status(http.StatusNoContent)
}

func (h *PreviewHandler) downloadNotifier(record *models.MedicalRecord, action string) viewer.Notifier {
	log := h.Log.WithRecord(record.ID)
	return viewer.NotifierFunc(func(msg string) {
		h.Metrics.DownloadRequests.WithLabelValues(action).Inc()
		log.DownloadRequested(action, record.FileName, msg)
	})
}

func (h *PreviewHandler) writeModal(c *gin.Context, log *observability.Logger, modal *viewer.Modal) {
	var buf bytes.Buffer
	if err := modal.Render(&buf); err != nil {
		h.Metrics.RenderFailures.Inc()
		log.Error(err, "render preview modal")
		utils.InternalServerError(c, "Failed to render preview")
		return
	}

	desc, preview := modal.Descriptor(), modal.Preview()
	h.Metrics.PreviewsRendered.WithLabelValues(preview.Kind.String()).Inc()
	log.PreviewRendered(desc.FileName, string(desc.FileType), preview.Kind.String(), desc.HasBill())
	utils.HTML(c, buf.Bytes())
}

func summarize(modal *viewer.Modal) PreviewSummary {
	summary := PreviewSummary{
		Preview:  modal.Preview(),
		FileType: modal.Descriptor().FileType,
	}
	for _, a := range modal.Actions() {
		summary.Actions = append(summary.Actions, a.Name)
	}
	return summary
}
