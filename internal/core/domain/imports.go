package domain

// FileImports is what the import extractor found in one file.
type FileImports struct {
	Modules  StringSet
	Language Language
	// Kernel is the kernelspec name of a notebook, empty otherwise.
	Kernel string
}

// NoImports is the result for unreadable or unsupported files.
func NoImports() FileImports {
	return FileImports{Modules: make(StringSet)}
}
