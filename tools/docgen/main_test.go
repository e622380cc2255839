package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/searchit/cmd/searchit/cmd"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		format   string
		wantFile string
		wantErr  bool
	}{
		{format: "markdown", wantFile: "searchit_search.md"},
		{format: "man", wantFile: "searchit-wishlist-add.1"},
		{format: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()

			err := generate(cmd.Root(), tt.format, dir)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			_, err = os.Stat(filepath.Join(dir, tt.wantFile))
			assert.NoError(t, err)
		})
	}
}
