package handler

// Public paths. Keep a single source of truth to avoid path drift across handlers and tests.
const (
	MaterialsPath = "/datos"
	LivePath      = "/live"
	ReadyPath     = "/ready"
	OpenAPIPath   = "/openapi.yaml"
	DocsPath      = "/docs"
)
