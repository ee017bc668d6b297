package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/honeycarbs/vacancy-search/internal/domain"
	vacancydomain "github.com/honeycarbs/vacancy-search/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
)

// Ensure VacancyRepository implements vacancy.Repository
var _ vacancydomain.Repository = (*VacancyRepository)(nil)

// VacancyRepository implements vacancy.Repository on top of a single JSON file
// holding an array of vacancy dictionaries.
type VacancyRepository struct {
	path   string
	logger *logging.Logger

	mu sync.Mutex
}

// NewVacancyRepository creates a repository backed by the file at path
func NewVacancyRepository(path string, logger *logging.Logger) (*VacancyRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("jsonfile: path is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &VacancyRepository{
		path:   path,
		logger: logger.With("store", path),
	}, nil
}

// Path returns the backing file location
func (r *VacancyRepository) Path() string {
	return r.path
}

// Add appends vacancies whose canonical form is not present yet
func (r *VacancyRepository) Add(ctx context.Context, vacancies []domain.Vacancy) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.load()
	seen := make(map[string]struct{}, len(entries)+len(vacancies))
	for _, e := range entries {
		if key, ok := canonical(e); ok {
			seen[key] = struct{}{}
		}
	}

	added := 0
	for _, v := range vacancies {
		raw, err := json.Marshal(v)
		if err != nil {
			return 0, fmt.Errorf("%w: encode vacancy: %v", domain.ErrStorage, err)
		}
		key, ok := canonical(raw)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, raw)
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := r.save(entries); err != nil {
		return 0, err
	}

	r.logger.Debug("vacancies added", "added", added, "total", len(entries))
	return added, nil
}

// Query returns stored vacancies matching criteria in file order
func (r *VacancyRepository) Query(ctx context.Context, criteria domain.Criteria) ([]domain.Vacancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	entries := r.load()
	r.mu.Unlock()

	out := make([]domain.Vacancy, 0, len(entries))
	for i, e := range entries {
		if !isObject(e) {
			r.logger.Warn("skipping non-object entry", "index", i)
			continue
		}
		var v domain.Vacancy
		if err := json.Unmarshal(e, &v); err != nil {
			r.logger.Warn("skipping unreadable entry", "index", i, "err", err)
			continue
		}
		if criteria.Match(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Delete is not supported by the file store and leaves data untouched
func (r *VacancyRepository) Delete(_ context.Context, _ domain.Criteria) error {
	return fmt.Errorf("jsonfile: delete: %w", domain.ErrNotImplemented)
}

// Clear replaces the file contents with an empty array
func (r *VacancyRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save([]json.RawMessage{})
}

// load reads the file. A missing, empty or malformed file is an empty collection.
func (r *VacancyRepository) load() []json.RawMessage {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("failed to read store, treating as empty", "err", err)
		}
		return []json.RawMessage{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []json.RawMessage{}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		r.logger.Warn("store is not a JSON array, treating as empty", "err", err)
		return []json.RawMessage{}
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}
	return entries
}

// save writes entries to a temp file next to the target and renames it into place.
func (r *VacancyRepository) save(entries []json.RawMessage) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("%w: encode store: %v", domain.ErrStorage, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir: %v", domain.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", domain.ErrStorage, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write temp file: %v", domain.ErrStorage, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: sync temp file: %v", domain.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %v", domain.ErrStorage, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("%w: replace store: %v", domain.ErrStorage, err)
	}
	return nil
}

// canonical renders a dictionary with sorted keys so equal records compare equal.
func canonical(raw json.RawMessage) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
