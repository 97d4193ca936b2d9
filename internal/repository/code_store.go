package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultInsertChunkSize is the number of code rows sent per INSERT statement.
const DefaultInsertChunkSize = 500

// BatchRow is one generated batch.
type BatchRow struct {
	ID               string          `gorm:"type:uuid;primaryKey"`
	OrderNumber      string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	TotalBaseUnits   int             `gorm:"not null"`
	TotalUniqueCodes int             `gorm:"not null"`
	TotalMasterCodes int             `gorm:"not null"`
	EmittedCodes     int             `gorm:"not null"`
	BufferPercent    decimal.Decimal `gorm:"type:numeric(9,4);not null"`
	UnitsPerCase     int             `gorm:"not null"`
	RoundingPolicy   string          `gorm:"type:varchar(16);not null"`
	Digest           string          `gorm:"type:char(64);not null"`
	CreatedBy        string          `gorm:"type:varchar(255)"`
	CreatedAt        time.Time
}

// TableName implements gorm's Tabler.
func (BatchRow) TableName() string { return "qr_batches" }

// MasterCodeRow is one case-level code.
type MasterCodeRow struct {
	ID                uint   `gorm:"primaryKey"`
	BatchID           string `gorm:"type:uuid;index;not null"`
	Code              string `gorm:"type:varchar(64);uniqueIndex;not null"`
	CaseNumber        int    `gorm:"not null"`
	ExpectedUnitCount int    `gorm:"not null"`
	Status            string `gorm:"type:varchar(20);not null;default:'generated'"`
	CreatedAt         time.Time
}

// TableName implements gorm's Tabler.
func (MasterCodeRow) TableName() string { return "qr_master_codes" }

// IndividualCodeRow is one unit-level code.
type IndividualCodeRow struct {
	ID             uint   `gorm:"primaryKey"`
	BatchID        string `gorm:"type:uuid;index;not null"`
	Code           string `gorm:"type:varchar(160);uniqueIndex;not null"`
	SequenceNumber int    `gorm:"not null"`
	CaseNumber     int    `gorm:"not null"`
	ProductID      string `gorm:"type:varchar(64)"`
	VariantID      string `gorm:"type:varchar(64)"`
	ProductCode    string `gorm:"type:varchar(64);not null"`
	VariantCode    string `gorm:"type:varchar(64);not null"`
	ProductName    string `gorm:"type:varchar(255)"`
	VariantName    string `gorm:"type:varchar(255)"`
	Status         string `gorm:"type:varchar(20);not null;default:'generated'"`
	CreatedAt      time.Time
}

// TableName implements gorm's Tabler.
func (IndividualCodeRow) TableName() string { return "qr_individual_codes" }

// PostgresCodeStore is the CodeStore backed by Postgres through gorm.
type PostgresCodeStore struct {
	db        *gorm.DB
	chunkSize int
}

// NewPostgresCodeStore creates a code store writing chunkSize rows per INSERT.
// A non-positive chunkSize uses DefaultInsertChunkSize.
func NewPostgresCodeStore(db *gorm.DB, chunkSize int) *PostgresCodeStore {
	if chunkSize <= 0 {
		chunkSize = DefaultInsertChunkSize
	}
	return &PostgresCodeStore{db: db, chunkSize: chunkSize}
}

// SaveBatch writes the batch row, then master and individual codes in chunks, in one transaction.
func (s *PostgresCodeStore) SaveBatch(ctx context.Context, batch *model.StoredBatch) error {
	batchRow, masters, individuals := toRows(batch)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&batchRow).Error; err != nil {
			return err
		}
		if len(masters) > 0 {
			if err := tx.CreateInBatches(masters, s.chunkSize).Error; err != nil {
				return fmt.Errorf("insert master codes: %w", err)
			}
		}
		if len(individuals) > 0 {
			if err := tx.CreateInBatches(individuals, s.chunkSize).Error; err != nil {
				return fmt.Errorf("insert individual codes: %w", err)
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ErrDuplicateBatch, batch.Result.OrderNumber)
	}
	return err
}

// BatchExists reports whether orderNumber already has a stored batch.
func (s *PostgresCodeStore) BatchExists(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&BatchRow{}).Where("order_number = ?", orderNumber).Count(&count).Error
	return count > 0, err
}

// GetBatch loads a stored batch. It returns ErrNotFound when the order has none.
func (s *PostgresCodeStore) GetBatch(ctx context.Context, orderNumber string) (*model.StoredBatch, error) {
	db := s.db.WithContext(ctx)

	var batchRow BatchRow
	if err := db.Where("order_number = ?", orderNumber).First(&batchRow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var masters []MasterCodeRow
	if err := db.Where("batch_id = ?", batchRow.ID).Order("case_number").Find(&masters).Error; err != nil {
		return nil, err
	}
	var individuals []IndividualCodeRow
	if err := db.Where("batch_id = ?", batchRow.ID).Order("sequence_number").Find(&individuals).Error; err != nil {
		return nil, err
	}

	batch := fromRows(batchRow, masters, individuals)
	return &batch, nil
}

// FindCode loads one stored code. It returns ErrNotFound when the code was never generated.
func (s *PostgresCodeStore) FindCode(ctx context.Context, kind model.CodeKind, code string) (*model.CodeRecord, error) {
	db := s.db.WithContext(ctx)

	var record model.CodeRecord
	var batchID string
	switch kind {
	case model.KindMaster:
		var row MasterCodeRow
		if err := db.Where("code = ?", code).First(&row).Error; err != nil {
			return nil, notFound(err)
		}
		batchID = row.BatchID
		record = model.CodeRecord{
			Code:              row.Code,
			Kind:              model.KindMaster,
			CaseNumber:        row.CaseNumber,
			ExpectedUnitCount: row.ExpectedUnitCount,
			Status:            model.CodeStatus(row.Status),
			CreatedAt:         row.CreatedAt,
		}
	case model.KindIndividual:
		var row IndividualCodeRow
		if err := db.Where("code = ?", code).First(&row).Error; err != nil {
			return nil, notFound(err)
		}
		batchID = row.BatchID
		record = model.CodeRecord{
			Code:           row.Code,
			Kind:           model.KindIndividual,
			CaseNumber:     row.CaseNumber,
			SequenceNumber: row.SequenceNumber,
			ProductID:      row.ProductID,
			VariantID:      row.VariantID,
			ProductCode:    row.ProductCode,
			VariantCode:    row.VariantCode,
			ProductName:    row.ProductName,
			VariantName:    row.VariantName,
			Status:         model.CodeStatus(row.Status),
			CreatedAt:      row.CreatedAt,
		}
	default:
		return nil, ErrNotFound
	}

	var batchRow BatchRow
	if err := db.Select("order_number").Where("id = ?", batchID).First(&batchRow).Error; err != nil {
		return nil, notFound(err)
	}
	record.OrderNumber = batchRow.OrderNumber
	return &record, nil
}

// HealthCheck pings the database.
func (s *PostgresCodeStore) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func toRows(batch *model.StoredBatch) (BatchRow, []MasterCodeRow, []IndividualCodeRow) {
	r := batch.Result
	status := string(model.StatusGenerated)

	batchRow := BatchRow{
		ID:               batch.ID,
		OrderNumber:      r.OrderNumber,
		TotalBaseUnits:   r.TotalBaseUnits,
		TotalUniqueCodes: r.TotalUniqueCodes,
		TotalMasterCodes: r.TotalMasterCodes,
		EmittedCodes:     r.EmittedCodes(),
		BufferPercent:    r.BufferPercent,
		UnitsPerCase:     r.UnitsPerCase,
		RoundingPolicy:   string(r.RoundingPolicy),
		Digest:           r.Digest,
		CreatedBy:        batch.CreatedBy,
		CreatedAt:        batch.CreatedAt,
	}

	masters := make([]MasterCodeRow, len(r.MasterCodes))
	for i, m := range r.MasterCodes {
		masters[i] = MasterCodeRow{
			BatchID:           batch.ID,
			Code:              m.Code,
			CaseNumber:        m.CaseNumber,
			ExpectedUnitCount: m.ExpectedUnitCount,
			Status:            status,
			CreatedAt:         batch.CreatedAt,
		}
	}

	individuals := make([]IndividualCodeRow, len(r.IndividualCodes))
	for i, c := range r.IndividualCodes {
		individuals[i] = IndividualCodeRow{
			BatchID:        batch.ID,
			Code:           c.Code,
			SequenceNumber: c.SequenceNumber,
			CaseNumber:     c.CaseNumber,
			ProductID:      c.ProductID,
			VariantID:      c.VariantID,
			ProductCode:    c.ProductCode,
			VariantCode:    c.VariantCode,
			ProductName:    c.ProductName,
			VariantName:    c.VariantName,
			Status:         status,
			CreatedAt:      batch.CreatedAt,
		}
	}

	return batchRow, masters, individuals
}

func fromRows(b BatchRow, masters []MasterCodeRow, individuals []IndividualCodeRow) model.StoredBatch {
	result := model.QRBatchResult{
		OrderNumber:      b.OrderNumber,
		MasterCodes:      make([]model.MasterCode, len(masters)),
		IndividualCodes:  make([]model.IndividualCode, len(individuals)),
		TotalMasterCodes: b.TotalMasterCodes,
		TotalUniqueCodes: b.TotalUniqueCodes,
		TotalBaseUnits:   b.TotalBaseUnits,
		BufferPercent:    b.BufferPercent,
		UnitsPerCase:     b.UnitsPerCase,
		RoundingPolicy:   model.RoundingPolicy(b.RoundingPolicy),
		Digest:           b.Digest,
	}
	for i, m := range masters {
		result.MasterCodes[i] = model.MasterCode{
			Code:              m.Code,
			CaseNumber:        m.CaseNumber,
			ExpectedUnitCount: m.ExpectedUnitCount,
		}
	}
	for i, c := range individuals {
		result.IndividualCodes[i] = model.IndividualCode{
			Code:           c.Code,
			SequenceNumber: c.SequenceNumber,
			ProductID:      c.ProductID,
			VariantID:      c.VariantID,
			ProductCode:    c.ProductCode,
			VariantCode:    c.VariantCode,
			ProductName:    c.ProductName,
			VariantName:    c.VariantName,
			CaseNumber:     c.CaseNumber,
		}
	}
	return model.StoredBatch{
		ID:        b.ID,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		Result:    result,
	}
}
