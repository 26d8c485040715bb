package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/hafiz/internal/hifz"
)

// Export is the YAML document written by the export command
type Export struct {
	ExportedAt string            `yaml:"exported_at"`
	Timezone   string            `yaml:"timezone"`
	Settings   hifz.Settings     `yaml:"settings"`
	Pages      []hifz.PageRecord `yaml:"pages"`
	Logs       []hifz.DailyLog   `yaml:"logs"`
}

// NewExport snapshots store with pages in page order
func NewExport(store *hifz.Store) Export {
	pages := store.Pages()
	records := make([]hifz.PageRecord, 0, len(pages))
	for _, page := range slices.Sorted(maps.Keys(pages)) {
		records = append(records, pages[page])
	}
	return Export{
		ExportedAt: store.Now().In(store.Location()).Format(dateTimeLayout),
		Timezone:   store.Location().String(),
		Settings:   store.Settings(),
		Pages:      records,
		Logs:       store.Logs(),
	}
}

// WriteExport writes the store as YAML.
func WriteExport(w io.Writer, store *hifz.Store) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewExport(store)); err != nil {
		return fmt.Errorf("encoder.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	return nil
}
