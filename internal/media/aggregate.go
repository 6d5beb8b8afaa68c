package media

// Aggregate groups records into folders in a single pass.
//
// Folders appear in the order their id is first seen. Name and thumbnail come
// from that first record, so for date-descending input the thumbnail is the
// newest item of each folder.
func Aggregate(records []Record) []Folder {
	if len(records) == 0 {
		return nil
	}

	folders := make([]Folder, 0, 8)
	index := make(map[int64]int)
	for _, r := range records {
		if i, ok := index[r.FolderID]; ok {
			folders[i].Count++
			continue
		}
		index[r.FolderID] = len(folders)
		folders = append(folders, Folder{
			ID:           r.FolderID,
			Name:         r.FolderName,
			ThumbnailURI: r.URI,
			Count:        1,
		})
	}
	return folders
}

// Total returns the number of records covered by folders.
func Total(folders []Folder) int {
	n := 0
	for _, f := range folders {
		n += f.Count
	}
	return n
}
