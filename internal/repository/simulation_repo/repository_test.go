package simulation_repo

import (
	"strings"
	"testing"
)

func TestSchemaCoversRunColumns(t *testing.T) {
	for _, col := range runColumns {
		if !strings.Contains(schema, "\n\t"+col+" ") {
			t.Errorf("column %q missing from schema", col)
		}
	}
	for _, col := range []string{colRunID, colReel1, colReel2, colReel3, colCategory, colPayout, colCount} {
		if !strings.Contains(schema, "\n\t"+col+" ") {
			t.Errorf("outcome column %q missing from schema", col)
		}
	}
}
