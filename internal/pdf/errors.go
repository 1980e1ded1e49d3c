// Package pdf rasterizes normalized documents to paginated A4 PDFs.
// The document is rendered to styled HTML, screenshotted in a headless
// browser, and the resulting image is split across pages by shifting
// its vertical offset.
package pdf

import "fmt"

// TemplateError represents an error building the HTML document.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a rasterization or pagination failure. It is
// retryable: no partial file is ever produced alongside it.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
