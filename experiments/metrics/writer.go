package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// PruningRecord compares both algorithms on one board.
type PruningRecord struct {
	Board     int
	Size      int
	Mover     string
	Minimax   SearchMetric
	AlphaBeta SearchMetric
	Value     int
	SameValue bool
	SameMove  bool
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the files of one run.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteSetup stores the parameters of a run as indented JSON.
func (w *Writer) WriteSetup(setup any) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "starting_player", "winner", "final_score", "total_moves", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.ID),
			record.StartingPlayer,
			record.Winner,
			strconv.Itoa(record.FinalScore),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "value", "algorithm", "depth_limit", "duration", "nodes", "leaves", "stakes", "raids", "cutoffs"}
	return w.writeCSV("move_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return append([]string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.Itoa(record.Value),
		}, searchColumns(record.SearchMetric)...)
	})
}

func (w *Writer) WritePruningRecords(records []PruningRecord) error {
	header := []string{
		"board", "size", "mover", "value", "same_value", "same_move", "depth_limit",
		"minimax_duration", "minimax_nodes", "minimax_leaves",
		"alphabeta_duration", "alphabeta_nodes", "alphabeta_leaves", "alphabeta_cutoffs",
	}
	return w.writeCSV("pruning_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.Board),
			strconv.Itoa(record.Size),
			record.Mover,
			strconv.Itoa(record.Value),
			strconv.FormatBool(record.SameValue),
			strconv.FormatBool(record.SameMove),
			strconv.Itoa(record.Minimax.DepthLimit),
			record.Minimax.Duration.String(),
			strconv.Itoa(record.Minimax.Nodes),
			strconv.Itoa(record.Minimax.Leaves),
			record.AlphaBeta.Duration.String(),
			strconv.Itoa(record.AlphaBeta.Nodes),
			strconv.Itoa(record.AlphaBeta.Leaves),
			strconv.Itoa(record.AlphaBeta.Cutoffs),
		}
	})
}

func searchColumns(m SearchMetric) []string {
	return []string{
		m.Algorithm,
		strconv.Itoa(m.DepthLimit),
		m.Duration.String(),
		strconv.Itoa(m.Nodes),
		strconv.Itoa(m.Leaves),
		strconv.Itoa(m.Stakes),
		strconv.Itoa(m.Raids),
		strconv.Itoa(m.Cutoffs),
	}
}

func (w *Writer) writeCSV(name string, header []string, n int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
