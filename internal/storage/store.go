package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/horizon/internal/horizon"
	"github.com/san-kum/horizon/internal/ode"
)

// Store persists solve runs under a base directory, one subdirectory per run
// with metadata.json and trajectory.csv.
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
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Sources    []float64 `json:"sources"`
	Scheme     string    `json:"scheme"`
	GridPoints int       `json:"grid_points"`
	H0         float64   `json:"h0"`
	Residual   float64   `json:"residual"`
	Iterations int       `json:"iterations"`
}

// Save writes a converged run. The trajectory CSV has one row per grid point:
// theta, h, dh.
func (s *Store) Save(meta RunMetadata, grid *ode.Grid, traj horizon.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Scheme, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"theta", "h", "dh"}); err != nil {
		return "", err
	}
	for i, x := range traj {
		row := []string{
			strconv.FormatFloat(grid.Points[i], 'g', 17, 64),
			strconv.FormatFloat(x[0], 'g', 17, 64),
			strconv.FormatFloat(x[1], 'g', 17, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads back the stored curve as parallel theta/h/dh slices.
func (s *Store) LoadTrajectory(runID string) (thetas, radii, slopes []float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, []float64{}, []float64{}, nil
	}

	for _, record := range records[1:] {
		if len(record) != 3 {
			continue
		}
		theta, err1 := strconv.ParseFloat(record[0], 64)
		h, err2 := strconv.ParseFloat(record[1], 64)
		dh, err3 := strconv.ParseFloat(record[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		thetas = append(thetas, theta)
		radii = append(radii, h)
		slopes = append(slopes, dh)
	}
	return thetas, radii, slopes, nil
}

// ExportCSV copies a stored trajectory to an arbitrary destination path.
func (s *Store) ExportCSV(runID, dest string) error {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}
