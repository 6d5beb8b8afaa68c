package media

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id, folder int64, folderName string) Record {
	return Record{
		ID:         id,
		FolderID:   folder,
		FolderName: folderName,
		URI:        fmt.Sprintf("media://image/%d", id),
		Kind:       KindImage,
	}
}

func TestAggregate_TwoFolders(t *testing.T) {
	// Newest first: three in A, two in B, interleaved.
	records := []Record{
		rec(5, 1, "A"),
		rec(4, 2, "B"),
		rec(3, 1, "A"),
		rec(2, 1, "A"),
		rec(1, 2, "B"),
	}

	folders := Aggregate(records)

	require.Len(t, folders, 2)
	assert.Equal(t, Folder{ID: 1, Name: "A", ThumbnailURI: "media://image/5", Count: 3}, folders[0])
	assert.Equal(t, Folder{ID: 2, Name: "B", ThumbnailURI: "media://image/4", Count: 2}, folders[1])
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Equal(t, 0, Total(Aggregate(nil)))
}

func TestAggregate_NameFromFirstSighting(t *testing.T) {
	records := []Record{rec(2, 7, "Camera"), rec(1, 7, "renamed")}

	folders := Aggregate(records)

	require.Len(t, folders, 1)
	assert.Equal(t, "Camera", folders[0].Name)
}

func TestAggregate_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for run := range 50 {
		n := r.IntN(200)
		records := make([]Record, n)
		for i := range records {
			folder := int64(r.IntN(6))
			records[i] = rec(int64(i), folder, fmt.Sprintf("f%d", folder))
		}

		folders := Aggregate(records)

		assert.Equal(t, n, Total(folders), "run %d: counts must sum to input length", run)

		firstURI := make(map[int64]string)
		for _, rc := range records {
			if _, ok := firstURI[rc.FolderID]; !ok {
				firstURI[rc.FolderID] = rc.URI
			}
		}
		assert.Len(t, folders, len(firstURI), "run %d", run)
		for _, f := range folders {
			assert.Equal(t, firstURI[f.ID], f.ThumbnailURI, "run %d folder %d", run, f.ID)
		}
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	records := []Record{rec(3, 2, "B"), rec(2, 1, "A"), rec(1, 2, "B")}

	assert.Equal(t, Aggregate(records), Aggregate(records))
}
