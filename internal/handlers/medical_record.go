package handlers

import (
	"errors"
	"io"
	"net/http"

	"healthcare-file-viewer/internal/models"
	"healthcare-file-viewer/internal/observability"
	"healthcare-file-viewer/internal/utils"
	"healthcare-file-viewer/internal/viewer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MedicalRecordHandler handles medical record related requests.
type MedicalRecordHandler struct {
	Store models.RecordStore
	Log   *observability.Logger
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(store models.RecordStore, log *observability.Logger) *MedicalRecordHandler {
	return &MedicalRecordHandler{Store: store, Log: log}
}

// CreateMedicalRecordRequest represents the request body for creating a medical record.
type CreateMedicalRecordRequest struct {
	PatientID    string `json:"patientId" binding:"required,uuid"`
	FileName     string `json:"fileName" binding:"required"`
	FileType     string `json:"fileType" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	BillFileName string `json:"billFileName"`
}

// CreateMedicalRecord handles creating a new medical record descriptor.
func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	var req CreateMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	fileType, err := viewer.ParseFileType(req.FileType)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	record := models.MedicalRecord{
		PatientID:    req.PatientID,
		FileName:     req.FileName,
		FileType:     fileType,
		Title:        req.Title,
		Description:  req.Description,
		BillFileName: req.BillFileName,
	}

	if err := h.Store.Create(c.Request.Context(), &record); err != nil {
		h.Log.Error(err, "create medical record")
		utils.InternalServerError(c, "Failed to create medical record: "+err.Error())
		return
	}

	utils.Created(c, "Medical record created successfully", record)
}

// GetMedicalRecordByID handles fetching a single medical record by its ID.
func (h *MedicalRecordHandler) GetMedicalRecordByID(c *gin.Context) {
	record, ok := loadRecord(c, h.Store)
	if !ok {
		return
	}
	utils.Success(c, "Medical record fetched successfully", record)
}

// GetMedicalRecordsForPatient handles fetching medical records for a specific patient.
func (h *MedicalRecordHandler) GetMedicalRecordsForPatient(c *gin.Context) {
	patientIDStr := c.Param("patientId")
	if _, err := uuid.Parse(patientIDStr); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format from URL param: "+patientIDStr)
		return
	}

	records, err := h.Store.ListForPatient(c.Request.Context(), patientIDStr)
	if err != nil {
		h.Log.Error(err, "list medical records")
		utils.InternalServerError(c, "Failed to fetch medical records: "+err.Error())
		return
	}

	utils.Success(c, "Medical records fetched successfully", records)
}

// UploadMedicalRecordAttachment stores the record's file or, with ?role=bill,
// its associated bill.
func (h *MedicalRecordHandler) UploadMedicalRecordAttachment(c *gin.Context) {
	medicalRecordIDStr := c.Param("id")
	if _, err := uuid.Parse(medicalRecordIDStr); err != nil {
		utils.BadRequest(c, "Invalid Medical Record ID format from URL param: "+medicalRecordIDStr)
		return
	}

	role := models.AttachmentRole(c.DefaultQuery("role", string(models.AttachmentRoleFile)))
	if role != models.AttachmentRoleFile && role != models.AttachmentRoleBill {
		utils.BadRequest(c, "role must be file or bill")
		return
	}

	file, header, err := c.Request.FormFile("file") // "file" is the name of the form field
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RequestEntityTooLarge(c, "File exceeds the upload limit")
			return
		}
		utils.BadRequest(c, "Error retrieving file from form: "+err.Error())
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Error reading file content: "+err.Error())
		return
	}

	attachment := models.MedicalRecordAttachment{
		MedicalRecordID: medicalRecordIDStr,
		Role:            role,
		FileName:        header.Filename,
		FileType:        header.Header.Get("Content-Type"),
		FileData:        fileData,
	}

	if err := h.Store.AddAttachment(c.Request.Context(), &attachment); err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			utils.NotFound(c, "Medical record not found")
			return
		}
		h.Log.Error(err, "store attachment")
		utils.InternalServerError(c, "Failed to create medical record attachment entry: "+err.Error())
		return
	}

	utils.Created(c, "File uploaded and linked to medical record successfully", attachment)
}

// loadRecord resolves the :id param and writes the error response itself when
// the record cannot be returned.
func loadRecord(c *gin.Context, store models.RecordStore) (*models.MedicalRecord, bool) {
	recordIDStr := c.Param("id")
	if _, err := uuid.Parse(recordIDStr); err != nil {
		utils.BadRequest(c, "Invalid Medical Record ID format")
		return nil, false
	}

	record, err := store.Get(c.Request.Context(), recordIDStr)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			utils.NotFound(c, "Medical record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return nil, false
	}
	return record, true
}
