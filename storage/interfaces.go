package storage

import "covid-analyzer/models"

// RecordWriter is the interface any cleaned-record sink must satisfy.
type RecordWriter interface {
	Write(records []*models.Record) error
	Close() error
}
