package config

// NewStyleForTest creates a Style config for testing purposes
func NewStyleForTest(path string) *Style {
	return &Style{path: path}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, projectID, databaseID string) *Repository {
	return &Repository{backend: backend, projectID: projectID, databaseID: databaseID}
}

// NewImageGenForTest creates an ImageGen config for testing purposes
func NewImageGenForTest(apiKeys []string, endpoint, model string) *ImageGen {
	return &ImageGen{apiKeys: apiKeys, endpoint: endpoint, model: model}
}
