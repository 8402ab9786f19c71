// ABOUTME: Loader extracts markdown cell texts from Jupyter notebook files
// ABOUTME: Produces the ordered fragment sequence consumed by the chunker
package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// cell mirrors the subset of the ipynb format we need. The source field is
// either a single string or a list of lines, depending on the producer.
type cell struct {
	CellType string          `json:"cell_type"`
	Source   json.RawMessage `json:"source"`
}

type notebookFile struct {
	Cells []cell `json:"cells"`
}

// LoadMarkdownCells reads a notebook and returns its non-empty markdown cell
// texts in document order. Whitespace-only cells are dropped.
func LoadMarkdownCells(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading notebook: %w", err)
	}

	var nb notebookFile
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("parsing notebook %s: %w", path, err)
	}

	var fragments []string
	for _, c := range nb.Cells {
		if c.CellType != "markdown" {
			continue
		}
		text, err := cellText(c.Source)
		if err != nil {
			return nil, fmt.Errorf("parsing cell source in %s: %w", path, err)
		}
		if strings.TrimSpace(text) != "" {
			fragments = append(fragments, text)
		}
	}
	return fragments, nil
}

// cellText joins a cell's source, which may be a string or a line array.
func cellText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return strings.Join(lines, ""), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}
