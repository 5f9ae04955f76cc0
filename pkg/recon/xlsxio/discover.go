package xlsxio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/steelneuf/DWH---Test/pkg/recon/models"
)

// conflictSuffix disambiguates an InputColumns source whose label collides
// with a primary source.
const conflictSuffix = "_InputColumns"

// DiscoverSources finds input sources in a directory, in stable order:
// loose .xlsx and .csv files sorted by name (label = file stem), then
// subdirectories (sorted) bundled into one "<name>_combined.xlsx" workbook
// each. A bundle that cannot be combined is skipped with a warning.
func DiscoverSources(dir string, log *zap.Logger) []models.Source {
	var sources []models.Source

	for _, path := range globSorted(dir, "*.xlsx", "*.csv") {
		sources = append(sources, models.Source{Label: stem(path), Path: path})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return sources
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		folder := filepath.Join(dir, e.Name())
		combined := filepath.Join(folder, e.Name()+"_combined.xlsx")
		if err := CombineFolder(folder, combined); err != nil {
			log.Warn("failed to combine folder bundle",
				zap.String("folder", e.Name()), zap.Error(err))
			continue
		}
		sources = append(sources, models.Source{Label: e.Name(), Path: combined})
	}
	return sources
}

// DiscoverAll discovers primary sources plus the alternative InputColumns
// sources, suffixing labels that conflict with a primary source.
func DiscoverAll(inputDir, inputColumnsDir string, log *zap.Logger) []models.Source {
	sources := DiscoverSources(inputDir, log)

	if _, err := os.Stat(inputColumnsDir); err != nil {
		return sources
	}

	labels := make(map[string]bool, len(sources))
	for _, s := range sources {
		labels[s.Label] = true
	}
	for _, s := range DiscoverSources(inputColumnsDir, log) {
		if labels[s.Label] {
			s.Label += conflictSuffix
		}
		labels[s.Label] = true
		sources = append(sources, s)
	}
	return sources
}

func globSorted(dir string, patterns ...string) []string {
	var paths []string
	for _, p := range patterns {
		matches, _ := filepath.Glob(filepath.Join(dir, p))
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
