package stats

const (
	ParamFolder        = "pathToFolder"
	MsgFmtCreateDirErr = "Failed to create directory: %s"
	MsgFmtOutsideBase  = "Relative folder must stay inside the export directory: %s"
)
