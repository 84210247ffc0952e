// Package store persists analysis history in a local SQLite database.
package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jhouston2019/auditintel/internal/cache"
	"github.com/jhouston2019/auditintel/internal/model"
)

//go:embed schema.sql
var schema string

// Store handles database operations
type Store struct {
	db *sql.DB
}

// Record is one persisted analysis. DaysRemaining is the value at analysis
// time, not recomputed on read.
type Record struct {
	ID                 string
	NoticeHash         string
	AuditType          string
	RiskLevel          string
	Rejected           bool
	EscalationRequired bool
	DaysRemaining      *int
	AnalyzedAt         time.Time
	Result             *model.AnalysisResult
}

// ValidationRecord is one persisted draft-validation run
type ValidationRecord struct {
	ID         string
	AnalysisID string
	AuditType  string
	Valid      bool
	Errors     []string
	CheckedAt  time.Time
}

// New creates a new Store with the given database path
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAnalysis persists one analysis result and returns its record
func (s *Store) SaveAnalysis(noticeText string, result *model.AnalysisResult) (*Record, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	record := &Record{
		ID:         uuid.New().String(),
		NoticeHash: cache.Key(noticeText),
		Rejected:   result.Rejected,
		AnalyzedAt: result.AnalyzedAt,
		Result:     result,
	}

	if result.Rejected {
		record.AuditType = result.RejectedType
	} else if result.Classification != nil {
		record.AuditType = string(result.Classification.Type)
		record.RiskLevel = string(result.Classification.RiskLevel)
	}
	if result.Risk != nil {
		record.EscalationRequired = result.Risk.EscalationRequired
	}
	if result.Deadline != nil {
		record.DaysRemaining = result.Deadline.DaysRemaining
	}

	_, err = s.db.Exec(
		`INSERT INTO analyses (id, notice_hash, audit_type, risk_level, rejected, escalation_required, days_remaining, result_json, analyzed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.NoticeHash, record.AuditType, record.RiskLevel,
		record.Rejected, record.EscalationRequired, record.DaysRemaining,
		string(data), record.AnalyzedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert analysis: %w", err)
	}

	return record, nil
}

// GetAnalysis retrieves an analysis by ID
func (s *Store) GetAnalysis(id string) (*Record, error) {
	var (
		record     Record
		resultJSON string
	)
	err := s.db.QueryRow(
		`SELECT id, notice_hash, audit_type, risk_level, rejected, escalation_required, days_remaining, result_json, analyzed_at
		 FROM analyses WHERE id = ?`,
		id,
	).Scan(&record.ID, &record.NoticeHash, &record.AuditType, &record.RiskLevel,
		&record.Rejected, &record.EscalationRequired, &record.DaysRemaining,
		&resultJSON, &record.AnalyzedAt)
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	record.Result = &result

	return &record, nil
}

// ListAnalyses returns recent analyses with pagination. Full results are
// not loaded; use GetAnalysis for the complete record.
func (s *Store) ListAnalyses(limit, offset int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, notice_hash, audit_type, risk_level, rejected, escalation_required, days_remaining, analyzed_at
		 FROM analyses ORDER BY analyzed_at DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.NoticeHash, &r.AuditType, &r.RiskLevel,
			&r.Rejected, &r.EscalationRequired, &r.DaysRemaining, &r.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// SaveValidation persists one draft-validation run. AnalysisID may be empty
// when the draft was checked without a stored analysis.
func (s *Store) SaveValidation(analysisID string, auditType model.AuditType, result *model.ValidationResult) (*ValidationRecord, error) {
	errorsJSON, err := json.Marshal(result.Errors)
	if err != nil {
		return nil, fmt.Errorf("marshal errors: %w", err)
	}

	record := &ValidationRecord{
		ID:         uuid.New().String(),
		AnalysisID: analysisID,
		AuditType:  string(auditType),
		Valid:      result.Valid,
		Errors:     result.Errors,
		CheckedAt:  time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO validation_runs (id, analysis_id, audit_type, valid, errors_json, checked_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.AnalysisID, record.AuditType, record.Valid,
		string(errorsJSON), record.CheckedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert validation run: %w", err)
	}

	return record, nil
}

// ListValidations returns the validation runs for an analysis
func (s *Store) ListValidations(analysisID string) ([]ValidationRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, analysis_id, audit_type, valid, errors_json, checked_at
		 FROM validation_runs WHERE analysis_id = ? ORDER BY checked_at DESC`,
		analysisID,
	)
	if err != nil {
		return nil, fmt.Errorf("list validation runs: %w", err)
	}
	defer rows.Close()

	var records []ValidationRecord
	for rows.Next() {
		var (
			r          ValidationRecord
			errorsJSON string
		)
		if err := rows.Scan(&r.ID, &r.AnalysisID, &r.AuditType, &r.Valid, &errorsJSON, &r.CheckedAt); err != nil {
			return nil, fmt.Errorf("scan validation run: %w", err)
		}
		if err := json.Unmarshal([]byte(errorsJSON), &r.Errors); err != nil {
			return nil, fmt.Errorf("unmarshal errors: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
