package models

// ExportResult reports one export attempt. Filename is the path the sync or
// backup file was written to. Err carries the underlying error for logging;
// Message is safe to show to the user as is.
type ExportResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename,omitempty"`
	Err      error  `json:"-"`
}

// ImportResult reports one import attempt. Stats is nil when the import did
// not reach the merge stage. Conflicts is the number of conflicts detected,
// whether or not the user proceeded.
type ImportResult struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Stats     *MergeStats `json:"stats,omitempty"`
	Conflicts int         `json:"conflicts"`
	Err       error       `json:"-"`
}

// RestoreResult reports one full-backup restore attempt with the number of
// records loaded per collection.
type RestoreResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Transactions int    `json:"transactions"`
	Categories   int    `json:"categories"`
	Accounts     int    `json:"accounts"`
	Err          error  `json:"-"`
}
