package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrRecordNotFound is returned when a record or attachment does not exist.
var ErrRecordNotFound = errors.New("record not found")

// RecordStore is the catalog the preview handlers read descriptors from.
type RecordStore interface {
	Create(ctx context.Context, record *MedicalRecord) error
	Get(ctx context.Context, id string) (*MedicalRecord, error)
	ListForPatient(ctx context.Context, patientID string) ([]MedicalRecord, error)
	AddAttachment(ctx context.Context, attachment *MedicalRecordAttachment) error
	// PrimaryAttachment returns the newest attachment with the file role, or
	// ErrRecordNotFound when the record has none.
	PrimaryAttachment(ctx context.Context, recordID string) (*MedicalRecordAttachment, error)
}

// GormRecordStore keeps records in the SQL database.
type GormRecordStore struct {
	DB *gorm.DB
}

// NewGormRecordStore creates a new GormRecordStore.
func NewGormRecordStore(db *gorm.DB) *GormRecordStore {
	return &GormRecordStore{DB: db}
}

func (s *GormRecordStore) Create(ctx context.Context, record *MedicalRecord) error {
	if err := s.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create medical record: %w", err)
	}
	return nil
}

func (s *GormRecordStore) Get(ctx context.Context, id string) (*MedicalRecord, error) {
	var record MedicalRecord
	err := s.DB.WithContext(ctx).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Omit("file_data")
		}).
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "get medical record %s", id)
	}
	return &record, nil
}

func (s *GormRecordStore) ListForPatient(ctx context.Context, patientID string) ([]MedicalRecord, error) {
	var records []MedicalRecord
	err := s.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list medical records for patient %s: %w", patientID, err)
	}
	return records, nil
}

// AddAttachment stores the attachment and, for bills, records the bill file
// name on the parent record.
func (s *GormRecordStore) AddAttachment(ctx context.Context, attachment *MedicalRecordAttachment) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record MedicalRecord
		if err := tx.Select("id").First(&record, "id = ?", attachment.MedicalRecordID).Error; err != nil {
			return notFound(err, "verify medical record %s", attachment.MedicalRecordID)
		}
		if err := tx.Create(attachment).Error; err != nil {
			return fmt.Errorf("create attachment: %w", err)
		}
		if attachment.Role == AttachmentRoleBill {
			err := tx.Model(&MedicalRecord{}).
				Where("id = ?", attachment.MedicalRecordID).
				Update("bill_file_name", attachment.FileName).Error
			if err != nil {
				return fmt.Errorf("link bill to medical record: %w", err)
			}
		}
		return nil
	})
}

func (s *GormRecordStore) PrimaryAttachment(ctx context.Context, recordID string) (*MedicalRecordAttachment, error) {
	var attachment MedicalRecordAttachment
	err := s.DB.WithContext(ctx).
		Where("medical_record_id = ? AND role = ?", recordID, AttachmentRoleFile).
		Order("created_at desc").
		First(&attachment).Error
	if err != nil {
		return nil, notFound(err, "primary attachment for %s", recordID)
	}
	return &attachment, nil
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
