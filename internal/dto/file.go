package dto

// FileURL maps a storage-relative path to its public /files/ URL.
func FileURL(relPath string) string {
	return "/files/" + relPath
}
