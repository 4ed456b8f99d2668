package completion

// Build converts scanned entries into proposals for one resolved scan.
// Navigation shortcuts come first, then directories, then files; the
// host's prefix matcher filters and ranks afterwards, so no ranking
// happens here.
func Build(h Host, echo string, dirs, files []Candidate, cons Constraints, searchFolders, searchFiles bool) []Proposal {
	var proposals []Proposal

	if searchFolders {
		proposals = append(proposals,
			Proposal{Insert: echo + "./", Display: ".", Icon: FolderIcon, Behavior: PlainInsert},
			Proposal{Insert: echo + "../", Display: "..", Icon: FolderIcon, Behavior: PlainInsert},
		)
		for _, dir := range dirs {
			proposals = append(proposals, Proposal{
				Insert:   echo + dir.Name + "/",
				Display:  dir.Name,
				Icon:     FolderIcon,
				Behavior: PlainInsert,
			})
		}
	}

	if searchFiles {
		for _, file := range files {
			// Extension mismatch is filtering, not failure.
			if !cons.AllowsExtension(file.Ext) {
				continue
			}
			proposals = append(proposals, Proposal{
				Insert:   echo + file.Name,
				Display:  file.Name,
				Icon:     h.IconForExtension(file.Ext),
				Behavior: FileReferenceInsert,
			})
		}
	}

	return proposals
}
