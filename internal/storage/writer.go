package storage

import (
	"encoding/json"
	"os"

	"github.com/qepting91/reddit-wiper/internal/domain"
)

// Journal appends one NDJSON line per delete attempt.
type Journal struct {
	f   *os.File
	enc *json.Encoder
}

func OpenJournal(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &Journal{f: f, enc: json.NewEncoder(f)}, nil
}

func (j *Journal) Record(rec domain.DeleteRecord) error {
	return j.enc.Encode(rec)
}

func (j *Journal) Close() error {
	return j.f.Close()
}
