// Package models contains the GORM persistence models.
package models

import (
	"time"

	"github.com/healthshare/backend/internal/domain/emotion"
)

// TextRecordModel is the persistence model for the TextRecord domain entity.
// The eight score columns are written by the ingestion pipeline and only
// read here.
type TextRecordModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	DataSource   string    `gorm:"column:data_source;type:varchar(100);not null;index"`
	Text         string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null;index"`
	Anger        float64   `gorm:"not null;default:0"`
	Anticipation float64   `gorm:"not null;default:0"`
	Disgust      float64   `gorm:"not null;default:0"`
	Fear         float64   `gorm:"not null;default:0"`
	Joy          float64   `gorm:"not null;default:0"`
	Sadness      float64   `gorm:"not null;default:0"`
	Surprise     float64   `gorm:"not null;default:0"`
	Trust        float64   `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (TextRecordModel) TableName() string {
	return "text_records"
}

// ToDomain converts the persistence model to a domain TextRecord.
func (m *TextRecordModel) ToDomain() *emotion.TextRecord {
	return &emotion.TextRecord{
		ID:         m.ID,
		DataSource: m.DataSource,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
		Scores: emotion.Scores{
			Anger:        m.Anger,
			Anticipation: m.Anticipation,
			Disgust:      m.Disgust,
			Fear:         m.Fear,
			Joy:          m.Joy,
			Sadness:      m.Sadness,
			Surprise:     m.Surprise,
			Trust:        m.Trust,
		},
	}
}

// FromDomain populates the persistence model from a domain TextRecord.
func (m *TextRecordModel) FromDomain(r *emotion.TextRecord) {
	m.ID = r.ID
	m.DataSource = r.DataSource
	m.Text = r.Text
	m.CreatedAt = r.CreatedAt
	m.Anger = r.Scores.Anger
	m.Anticipation = r.Scores.Anticipation
	m.Disgust = r.Scores.Disgust
	m.Fear = r.Scores.Fear
	m.Joy = r.Scores.Joy
	m.Sadness = r.Scores.Sadness
	m.Surprise = r.Scores.Surprise
	m.Trust = r.Scores.Trust
}
