package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/lyapfrac/internal/analysis"
)

const (
	metadataFile = "metadata.json"
	profileFile  = "profile.csv"
)

// ErrRunID indicates a run id that does not name a directory directly
// under the data directory.
var ErrRunID = errors.New("storage: invalid run id")

// Run kinds.
const (
	KindRender = "render"
	KindProbe  = "probe"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Kind       string             `json:"kind"`
	Timestamp  time.Time          `json:"timestamp"`
	Sequence   string             `json:"sequence"`
	Iterations int                `json:"iterations"`
	Width      int                `json:"width,omitempty"`
	Height     int                `json:"height,omitempty"`
	Frames     int                `json:"frames,omitempty"`
	Axis       string             `json:"axis,omitempty"`
	Min        float64            `json:"min,omitempty"`
	Max        float64            `json:"max,omitempty"`
	Steps      int                `json:"steps,omitempty"`
	A          float64            `json:"a"`
	B          float64            `json:"b"`
	C          float64            `json:"c"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

// Save writes meta and, when points is non-empty, the profile under a fresh
// run directory. ID and Timestamp are filled in when empty.
func (s *Store) Save(meta RunMetadata, points []analysis.Point) (string, error) {
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%s", meta.Kind, uuid.NewString())
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.Metrics = finiteMetrics(meta.Metrics)

	runDir, err := s.runDir(meta.ID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if len(points) == 0 {
		return meta.ID, nil
	}

	csvFile, err := os.Create(filepath.Join(runDir, profileFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"param", "lambda"}); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Param, 'g', -1, 64),
			strconv.FormatFloat(p.Lambda, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// runDir resolves runID inside the data directory. Ids with path separators
// or dot components are rejected.
func (s *Store) runDir(runID string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || strings.ContainsAny(runID, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrRunID, runID)
	}
	return filepath.Join(s.baseDir, runID), nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadProfile reads the profile stored with a probe run.
func (s *Store) LoadProfile(runID string) ([]analysis.Point, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(dir, profileFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", runID, err)
	}
	if len(records) < 2 {
		return []analysis.Point{}, nil
	}

	points := make([]analysis.Point, 0, len(records)-1)
	for i, record := range records[1:] {
		param, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: %s row %d: %w", runID, i+1, err)
		}
		lambda, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: %s row %d: %w", runID, i+1, err)
		}
		points = append(points, analysis.Point{Param: param, Lambda: lambda})
	}
	return points, nil
}
