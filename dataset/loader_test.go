package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/inflecta/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "english-train-low")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_SkipsMalformedAndStarred(t *testing.T) {
	path := writeTempFile(t, "walk\twalking\tV;PRS\n"+
		"bad line with no tabs\n"+
		"cat*\tcats\tN;PL\n"+
		"talk\ttalking\tV;PRS\n")

	records, err := dataset.Load(path, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "walk", records[0].Source)
	assert.Equal(t, "walking", records[0].Target)
	assert.Equal(t, []string{"V", "PRS"}, records[0].Tags)
	assert.Equal(t, "talk", records[1].Source)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMalformedPath)
}

func TestTrainPathAndDevPath(t *testing.T) {
	assert.Equal(t, "data/english-train-high", dataset.TrainPath("data", "english", "high"))
	assert.Equal(t, "data/english-dev", dataset.DevPath("data", "english"))
	assert.Equal(t, "english-train-low", dataset.TrainPath("", "english", "low"))
}
